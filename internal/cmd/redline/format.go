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
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	"znkr.io/redline"
)

// formatFlags are the flags shared by all commands that produce a redline.
type formatFlags struct {
	style  string
	html   bool
	minify bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", redline.Marked.String(), "markup for changes: marked or plain")
	cmd.Flags().BoolVar(&f.html, "html", false, "convert the redline to an HTML fragment")
	cmd.Flags().BoolVar(&f.minify, "minify", false, "minify the HTML fragment, requires --html")
}

// check validates the flags and returns the selected style.
func (f *formatFlags) check() (redline.Style, error) {
	style, err := redline.ParseStyle(f.style)
	if err != nil {
		return 0, fmt.Errorf("--style: %w", err)
	}
	if f.minify && !f.html {
		return 0, fmt.Errorf("--minify requires --html")
	}
	return style, nil
}

// format converts a rendered redline to the requested output format.
func (f *formatFlags) format(out string) ([]byte, error) {
	if !f.html {
		return []byte(out), nil
	}

	// The markup is inline HTML, it's only preserved with unsafe rendering.
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert([]byte(out), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %v", err)
	}
	if !f.minify {
		return buf.Bytes(), nil
	}

	minifier := minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc("text/html", mhtml.Minify)
	b, err := minifier.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minifying html: %v", err)
	}
	return b, nil
}
