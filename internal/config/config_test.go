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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/redline"
	"znkr.io/redline/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "markup",
			opts: []config.Option{
				redline.Markup(redline.Plain),
			},
			want: config.Config{
				Style: config.StylePlain,
			},
		},
		{
			name: "against",
			opts: []config.Option{
				redline.Against("the dog sat."),
			},
			want: config.Config{
				Style:   config.Default.Style,
				Test:    "the dog sat.",
				HasTest: true,
			},
		},
		{
			name: "against-empty",
			opts: []config.Option{
				redline.Against(""),
			},
			want: config.Config{
				Style:   config.Default.Style,
				HasTest: true,
			},
		},
		{
			name: "override",
			opts: []config.Option{
				redline.Markup(redline.Plain),
				redline.Against("first"),
				redline.Markup(redline.Marked),
				redline.Against("second"),
			},
			want: config.Config{
				Style:   config.StyleMarked,
				Test:    "second",
				HasTest: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Markup|config.Against)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	base := config.Config{Style: config.StylePlain, Test: "old", HasTest: true}
	got := config.Apply(base, []config.Option{redline.Against("new")}, config.Against)
	want := config.Config{Style: config.StylePlain, Test: "new", HasTest: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply(...) result are different [-want,+got]:\n%s", diff)
	}
	if base.Test != "old" {
		t.Errorf("Apply(...) modified base")
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("FromOptions(...) did not panic")
		}
		if want := "Option redline.Against not allowed here"; r != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", r, want)
		}
	}()
	config.FromOptions([]config.Option{redline.Against("x")}, config.Markup)
}

func TestStyle(t *testing.T) {
	tests := []struct {
		style     config.Style
		wantValid bool
		wantName  string
	}{
		{config.StyleMarked, true, "marked"},
		{config.StylePlain, true, "plain"},
		{config.Style(2), false, "Style(2)"},
		{config.Style(-1), false, "Style(-1)"},
	}
	for _, tt := range tests {
		if got := tt.style.Valid(); got != tt.wantValid {
			t.Errorf("%v.Valid() = %v, want %v", tt.style, got, tt.wantValid)
		}
		if got := tt.style.String(); got != tt.wantName {
			t.Errorf("String() = %q, want %q", got, tt.wantName)
		}
	}
}
