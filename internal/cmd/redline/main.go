// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// redline prints the redline of two versions of a text.
//
// Usage:
//
//	redline diff [--style marked|plain] [--html [--minify]] SOURCE TEST
//	redline watch [--style marked|plain] [--html [--minify]] -o OUT SOURCE TEST
//
// The diff command prints the redline to stdout. The watch command writes it to OUT and rewrites
// it whenever SOURCE or TEST changes. With --html, the redline is converted from markdown with
// inline markup to an HTML fragment.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "redline [command]",
		Short:        "Word by word comparison of two versions of a text",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}
