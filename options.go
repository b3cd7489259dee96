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

package redline

import (
	"fmt"

	"znkr.io/redline/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Style selects how changed spans are marked up in rendered output.
type Style = config.Style

const (
	// Marked wraps deleted spans in red, bold, struck-through HTML spans and inserted spans in
	// red, bold HTML spans. This is the default.
	Marked Style = config.StyleMarked

	// Plain renders changed spans without any markup.
	Plain Style = config.StylePlain
)

// ParseStyle returns the style with the given name, either "marked" or "plain".
func ParseStyle(name string) (Style, error) {
	switch name {
	case "marked":
		return Marked, nil
	case "plain":
		return Plain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, name)
	}
}

// Markup selects the style used to render changes. The default is [Marked].
func Markup(s Style) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Style = s
		return config.Markup
	}
}

// Against sets the text to compare against in [NewSession] and [Session.Compare].
func Against(text string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Test = text
		cfg.HasTest = true
		return config.Against
	}
}
