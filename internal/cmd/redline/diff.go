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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/redline"
)

func newDiffCmd() *cobra.Command {
	var f formatFlags
	cmd := &cobra.Command{
		Use:   "diff SOURCE TEST",
		Short: "Print the redline of two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := f.check()
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading source: %v", err)
			}
			test, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading test: %v", err)
			}

			out, err := redline.RedlineBytes(source, test, redline.Markup(style))
			if err != nil {
				return err
			}
			b, err := f.format(string(out))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	f.register(cmd)
	return cmd
}
