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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// redline.Option.
package config

import "fmt"

// Style selects how changed spans are wrapped in rendered output.
type Style int

const (
	// Wrap deletions in red strike-through markup and insertions in red bold markup.
	StyleMarked Style = iota

	// Render changed spans without any markup.
	StylePlain

	numStyles
)

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool { return s >= 0 && s < numStyles }

func (s Style) String() string {
	switch s {
	case StyleMarked:
		return "marked"
	case StylePlain:
		return "plain"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Markup style used for rendering.
	Style Style

	// Text to compare against. Only meaningful if HasTest is set, an empty Test is a valid
	// comparison text.
	Test    string
	HasTest bool
}

// Default is the default configuration.
var Default = Config{
	Style:   StyleMarked,
	Test:    "",
	HasTest: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	Markup Flag = 1 << iota
	Against
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	return Apply(Default, opts, allowed)
}

// Apply applies opts on top of base and returns the result.
func Apply(base Config, opts []Option, allowed Flag) Config {
	cfg := base
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Markup:
		return "redline.Markup"
	case Against:
		return "redline.Against"
	default:
		panic("never reached")
	}
}
