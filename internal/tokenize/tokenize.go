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

// Package tokenize splits text into the word and punctuation tokens used for word-by-word
// comparison.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/redline/internal/byteview"
)

// Token is a word or a single punctuation character together with the whitespace that follows
// it.
//
// Tokens are comparable, two tokens are equal only if both their words and their trailing
// whitespace are equal.
type Token struct {
	Word  string // A word or a single punctuation character.
	Space string // Whitespace following Word, possibly empty.
}

func (t Token) String() string { return t.Word + t.Space }

// Len returns the length of the token text in bytes.
func (t Token) Len() int { return len(t.Word) + len(t.Space) }

// Punctuation lists the characters that always form a token on their own.
const Punctuation = "().?!-"

// Tokenize splits v into tokens. Concatenating the text of all tokens reproduces v exactly.
//
// A token is either a maximal run of characters that are neither whitespace nor in
// [Punctuation], or a single character from [Punctuation]. Either is followed by the adjacent
// whitespace run. If v starts with whitespace, the first token has an empty word and holds that
// whitespace.
//
// For views created from a []byte, the returned tokens share memory with the slice.
func Tokenize(v byteview.ByteView) []Token {
	s := v.String()
	if len(s) == 0 {
		return nil
	}

	out := make([]Token, 0, estimate(s))
	i := 0
	if n := spaces(s); n > 0 {
		out = append(out, Token{Space: s[:n]})
		i = n
	}
	for i < len(s) {
		j := i + word(s[i:])
		k := j + spaces(s[j:])
		out = append(out, Token{Word: s[i:j], Space: s[j:k]})
		i = k
	}
	return out
}

// word returns the length of the word at the start of s. s must not be empty and must not start
// with whitespace.
func word(s string) int {
	if strings.IndexByte(Punctuation, s[0]) >= 0 {
		return 1
	}
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) || r < utf8.RuneSelf && strings.IndexByte(Punctuation, byte(r)) >= 0 {
			break
		}
		i += size
	}
	return i
}

// spaces returns the length of the whitespace run at the start of s.
func spaces(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// estimate returns a rough estimate of the number of tokens in s to preallocate the output.
func estimate(s string) int {
	n := 1
	for i := range len(s) {
		switch c := s[i]; {
		case c == ' ' || c == '\n' || c == '\t':
			n++
		case strings.IndexByte(Punctuation, c) >= 0:
			n += 2
		}
	}
	return n
}
