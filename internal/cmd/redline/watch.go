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
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/redline"
)

func newWatchCmd() *cobra.Command {
	var f formatFlags
	var output string
	cmd := &cobra.Command{
		Use:   "watch SOURCE TEST",
		Short: "Write the redline of two files and update it whenever one of them changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("missing output file, use -o")
			}
			style, err := f.check()
			if err != nil {
				return err
			}

			w, err := newWatch(args[0], args[1], output, style, &f)
			if err != nil {
				return err
			}
			log.Printf("Redline written to %s", output)

			// Watch the directories instead of the files, many editors replace files on save and
			// the watch on a replaced file is lost.
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %v", err)
			}
			defer watcher.Close()
			for _, dir := range w.dirs() {
				if err := watcher.Add(dir); err != nil {
					return fmt.Errorf("starting watch: %v", err)
				}
			}
			log.Printf("Watching %s and %s, press Ctrl-C to shut down", args[0], args[1])

			// Setup signals to react to Ctrl-C.
			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt)

			for {
				select {
				case event := <-watcher.Events:
					// Absolutely no need to react to chmod.
					if event.Has(fsnotify.Chmod) {
						continue
					}
					start := time.Now()
					updated, err := w.update(event.Name)
					if err != nil {
						log.Printf("failed to update redline: %v", err)
						continue
					}
					if updated {
						log.Printf("Redline updated (%v)", time.Since(start))
					}
				case err := <-watcher.Errors:
					return fmt.Errorf("watching: %v", err)
				case <-sigint:
					fmt.Print("\r") // remove Ctrl-C output characters
					log.Printf("Received Ctrl-C, shutting down")
					return nil
				}
			}
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the redline to")
	return cmd
}

// watch keeps the redline of two files up to date.
type watch struct {
	source, test, output string // absolute paths
	flags                *formatFlags
	session              *redline.Session
}

func newWatch(source, test, output string, style redline.Style, f *formatFlags) (*watch, error) {
	w := &watch{flags: f}
	for _, p := range []struct {
		dst *string
		src string
	}{
		{&w.source, source},
		{&w.test, test},
		{&w.output, output},
	} {
		abs, err := filepath.Abs(p.src)
		if err != nil {
			return nil, fmt.Errorf("resolving path: %v", err)
		}
		*p.dst = abs
	}

	sourceText, err := os.ReadFile(w.source)
	if err != nil {
		return nil, fmt.Errorf("reading source: %v", err)
	}
	testText, err := os.ReadFile(w.test)
	if err != nil {
		return nil, fmt.Errorf("reading test: %v", err)
	}
	w.session = redline.NewSession(string(sourceText), redline.Against(string(testText)), redline.Markup(style))
	if err := w.write(); err != nil {
		return nil, err
	}
	return w, nil
}

// dirs returns the directories that contain the watched files.
func (w *watch) dirs() []string {
	src, test := filepath.Dir(w.source), filepath.Dir(w.test)
	if src == test {
		return []string{src}
	}
	return []string{src, test}
}

// update reloads the file name if it's one of the watched files and rewrites the redline. Only
// the text that changed is tokenized again. It returns false if name isn't watched.
func (w *watch) update(name string) (bool, error) {
	name, err := filepath.Abs(name)
	if err != nil {
		return false, fmt.Errorf("resolving path: %v", err)
	}
	if name != w.source && name != w.test {
		return false, nil
	}

	text, err := os.ReadFile(name)
	if err != nil {
		return false, fmt.Errorf("reading %s: %v", name, err)
	}
	if name == w.source {
		w.session.SetSource(string(text))
	}
	if name == w.test {
		w.session.SetTest(string(text))
	}
	return true, w.write()
}

func (w *watch) write() error {
	out, err := w.session.Compare()
	if err != nil {
		return err
	}
	b, err := w.flags.format(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.output, b, 0o644); err != nil {
		return fmt.Errorf("writing redline: %v", err)
	}
	return nil
}
