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
	"slices"

	"znkr.io/redline/internal/byteview"
	"znkr.io/redline/internal/config"
	"znkr.io/redline/internal/markup"
	"znkr.io/redline/internal/match"
	"znkr.io/redline/internal/tokenize"
)

// Session compares a source text against a comparison text and caches the intermediate results.
//
// A session always has a source text and at most one comparison text. It keeps the tokens of
// both texts, the regions of the last alignment and the last rendered redline. The caches are
// invalidated as follows:
//
//   - [Session.SetSource] retokenizes the source and drops the regions and the redline.
//   - [Session.SetTest] retokenizes the comparison text, drops the redline and aligns both texts
//     again.
//   - [Session.SetStyle] drops the redline if the style changes. The regions are kept.
//
// A Session is not safe for concurrent use.
type Session struct {
	source  string
	xtokens []Token

	test    string
	hasTest bool
	ytokens []Token

	style Style

	regions []Region
	aligned bool // regions are valid

	out      string
	rendered bool // out is valid

	naligns int // number of alignments computed
}

// NewSession creates a session for the source text.
//
// The following options are supported: [Against], [Markup]
//
// If a comparison text is provided with [Against], both texts are aligned right away.
func NewSession(source string, opts ...Option) *Session {
	cfg := config.FromOptions(opts, config.Markup|config.Against)
	s := &Session{style: cfg.Style}
	s.SetSource(source)
	if cfg.HasTest {
		s.SetTest(cfg.Test)
	}
	return s
}

// Source returns the source text.
func (s *Session) Source() string { return s.source }

// Test returns the comparison text and whether it was set.
func (s *Session) Test() (string, bool) { return s.test, s.hasTest }

// Style returns the style used to render the redline.
func (s *Session) Style() Style { return s.style }

// SourceTokens returns the tokens of the source text.
func (s *Session) SourceTokens() []Token { return slices.Clone(s.xtokens) }

// TestTokens returns the tokens of the comparison text.
func (s *Session) TestTokens() []Token { return slices.Clone(s.ytokens) }

// SetSource replaces the source text. The comparison text is kept.
func (s *Session) SetSource(text string) {
	s.source = text
	s.xtokens = tokenize.Tokenize(byteview.From(text))
	s.invalidate()
}

// SetTest replaces the comparison text and aligns it with the source text.
func (s *Session) SetTest(text string) {
	s.test, s.hasTest = text, true
	s.ytokens = tokenize.Tokenize(byteview.From(text))
	s.invalidate()
	s.align()
}

// SetStyle changes the style used to render the redline.
func (s *Session) SetStyle(style Style) {
	if style != s.style {
		s.style = style
		s.out, s.rendered = "", false
	}
}

func (s *Session) invalidate() {
	s.regions, s.aligned = nil, false
	s.out, s.rendered = "", false
}

func (s *Session) align() []Region {
	if !s.aligned {
		s.regions = match.Align(s.xtokens, s.ytokens)
		s.aligned = true
		s.naligns++
	}
	return s.regions
}

// Regions returns the alignment of the source and the comparison text. It returns
// [ErrMissingComparisonText] if no comparison text was set.
func (s *Session) Regions() ([]Region, error) {
	if !s.hasTest {
		return nil, ErrMissingComparisonText
	}
	return slices.Clone(s.align()), nil
}

// Compare returns the redline of the source and the comparison text.
//
// The following options are supported: [Against], [Markup]
//
// Options override the comparison text and the style of the session, as if [Session.SetTest] and
// [Session.SetStyle] were called. If the overrides match the current state of the session, the
// cached redline is returned without any recomputation.
//
// Compare returns [ErrMissingComparisonText] if there is no comparison text and
// [ErrInvalidStyle] if the style is invalid. In both cases the session is unchanged.
func (s *Session) Compare(opts ...Option) (string, error) {
	cfg := config.Apply(config.Config{
		Style:   s.style,
		Test:    s.test,
		HasTest: s.hasTest,
	}, opts, config.Markup|config.Against)
	if !cfg.HasTest {
		return "", ErrMissingComparisonText
	}
	if !cfg.Style.Valid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidStyle, cfg.Style)
	}

	if !s.hasTest || cfg.Test != s.test {
		s.SetTest(cfg.Test)
	}
	s.SetStyle(cfg.Style)
	if s.rendered {
		return s.out, nil
	}

	out, err := markup.Render[string](s.xtokens, s.ytokens, s.align(), s.style)
	if err != nil {
		return "", err
	}
	s.out, s.rendered = out, true
	return out, nil
}
