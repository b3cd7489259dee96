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
	"errors"

	"znkr.io/redline/internal/byteview"
	"znkr.io/redline/internal/config"
	"znkr.io/redline/internal/markup"
	"znkr.io/redline/internal/match"
	"znkr.io/redline/internal/tokenize"
)

// Token is a word or a single punctuation character together with the whitespace that follows
// it. See [Tokenize].
type Token = tokenize.Token

// Tag describes how a region of the source relates to a region of the comparison text.
type Tag = match.Tag

const (
	Equal   = match.Equal   // Both ranges contain the same tokens.
	Insert  = match.Insert  // Tokens from the comparison text are inserted.
	Delete  = match.Delete  // Tokens from the source are deleted.
	Replace = match.Replace // Tokens from the source are replaced by tokens of the comparison text.
)

// Region describes how x[PosX:EndX] aligns with y[PosY:EndY].
//
//   - For Equal, both ranges have the same length and contain equal elements.
//   - For Insert, the range in x is empty.
//   - For Delete, the range in y is empty.
//   - For Replace, neither range is empty.
type Region = match.Region

var (
	// ErrMissingComparisonText is returned if a comparison is requested before a text to compare
	// against was provided.
	ErrMissingComparisonText = errors.New("missing comparison text")

	// ErrInvalidStyle is returned for unknown style names or values.
	ErrInvalidStyle = markup.ErrInvalidStyle

	// ErrInvalidRegions is returned by [Render] if the regions don't cover both token sequences.
	ErrInvalidRegions = markup.ErrInvalidRegions
)

// Tokenize splits text into tokens.
//
// A token is either a maximal run of characters that are neither whitespace nor one of
// ( ) . ? ! -, or a single one of these punctuation characters. Either is followed by the adjacent
// whitespace. If text starts with whitespace, the first token has an empty word and holds that
// whitespace. Concatenating the text of all tokens reproduces text exactly.
func Tokenize(text string) []Token {
	return tokenize.Tokenize(byteview.From(text))
}

// Align compares the contents of x and y and returns the regions necessary to convert from one to
// the other.
//
// The regions are ordered, contiguous and cover both x and y completely. No two consecutive
// regions have the same tag. If x and y are both empty, the result is empty.
//
// The alignment is found by matching the longest block of elements common to x and y and
// repeating that for the unmatched elements before and after the block. If there are multiple
// longest blocks, the one that starts earliest in x is used, and of those the one that starts
// earliest in y.
func Align[T comparable](x, y []T) []Region {
	return match.Align(x, y)
}

// AlignFunc compares the contents of x and y using the provided equality comparison and returns
// the regions necessary to convert from one to the other. eq must be an equivalence relation.
//
// Note that this function has worse performance than [Align].
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) []Region {
	return match.AlignFunc(x, y, eq)
}

// Render renders the redline of the token sequences x and y described by regions.
//
// Equal regions are copied verbatim. Deleted tokens of x and inserted tokens of y are wrapped in
// the markup of the selected [Style]. A replace region is rendered as the deleted tokens followed
// by the inserted tokens.
//
// The following option is supported: [Markup]
func Render(x, y []Token, regions []Region, opts ...Option) (string, error) {
	cfg := config.FromOptions(opts, config.Markup)
	return markup.Render[string](x, y, regions, cfg.Style)
}

// Redline compares x and y word by word and returns the redline of the changes necessary to
// convert from one to the other.
//
// The following option is supported: [Markup]
func Redline(x, y string, opts ...Option) (string, error) {
	return redline[string](byteview.From(x), byteview.From(y), opts)
}

// RedlineBytes compares x and y word by word and returns the redline of the changes necessary to
// convert from one to the other.
//
// The following option is supported: [Markup]
func RedlineBytes(x, y []byte, opts ...Option) ([]byte, error) {
	return redline[[]byte](byteview.From(x), byteview.From(y), opts)
}

func redline[T string | []byte](x, y byteview.ByteView, opts []Option) (T, error) {
	cfg := config.FromOptions(opts, config.Markup)
	xtokens, ytokens := tokenize.Tokenize(x), tokenize.Tokenize(y)
	return markup.Render[T](xtokens, ytokens, match.Align(xtokens, ytokens), cfg.Style)
}
