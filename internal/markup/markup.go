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

// Package markup renders aligned token sequences as a redline: the text of the comparison with
// deletions and insertions wrapped in markup.
package markup

import (
	"errors"
	"fmt"

	"znkr.io/redline/internal/byteview"
	"znkr.io/redline/internal/config"
	"znkr.io/redline/internal/match"
	"znkr.io/redline/internal/tokenize"
)

var (
	ErrInvalidStyle   = errors.New("invalid style")
	ErrInvalidRegions = errors.New("regions don't cover the token sequences")
)

// wrapper is a pair of markers placed around a changed span.
type wrapper struct {
	open, close string
}

// scheme holds the wrappers of one style.
type scheme struct {
	del, ins wrapper
}

var schemes = [...]scheme{
	config.StyleMarked: {
		del: wrapper{`<span style="color:red;font-weight:700;text-decoration:line-through;">`, `</span>`},
		ins: wrapper{`<span style="color:red;font-weight:700;">`, `</span>`},
	},
	config.StylePlain: {},
}

// Render renders the redline of x and y described by regions.
//
// Equal regions are copied verbatim, deleted tokens of x and inserted tokens of y are wrapped using
// the markers of style. A replace region is rendered as the deleted tokens followed by the
// inserted tokens.
func Render[T string | []byte](x, y []tokenize.Token, regions []match.Region, style config.Style) (T, error) {
	var zero T
	if !style.Valid() {
		return zero, fmt.Errorf("%w: %v", ErrInvalidStyle, style)
	}
	if err := check(regions, len(x), len(y)); err != nil {
		return zero, err
	}

	var b byteview.Builder[T]
	sc := &schemes[style]
	b.Grow(size(x, y, regions, sc))
	for _, r := range regions {
		switch r.Tag {
		case match.Equal:
			write(&b, x[r.PosX:r.EndX])
		case match.Delete:
			wrap(&b, x[r.PosX:r.EndX], sc.del)
		case match.Insert:
			wrap(&b, y[r.PosY:r.EndY], sc.ins)
		case match.Replace:
			wrap(&b, x[r.PosX:r.EndX], sc.del)
			wrap(&b, y[r.PosY:r.EndY], sc.ins)
		default:
			panic("never reached")
		}
	}
	return b.Build(), nil
}

func write[T string | []byte](b *byteview.Builder[T], tokens []tokenize.Token) {
	for _, tok := range tokens {
		b.WriteString(tok.Word)
		b.WriteString(tok.Space)
	}
}

func wrap[T string | []byte](b *byteview.Builder[T], tokens []tokenize.Token, w wrapper) {
	b.WriteString(w.open)
	write(b, tokens)
	b.WriteString(w.close)
}

// size computes the exact length of the output.
func size(x, y []tokenize.Token, regions []match.Region, sc *scheme) int {
	n := 0
	for _, r := range regions {
		if r.Tag != match.Insert {
			for _, tok := range x[r.PosX:r.EndX] {
				n += tok.Len()
			}
		}
		if r.Tag == match.Insert || r.Tag == match.Replace {
			for _, tok := range y[r.PosY:r.EndY] {
				n += tok.Len()
			}
		}
		if r.Tag == match.Delete || r.Tag == match.Replace {
			n += len(sc.del.open) + len(sc.del.close)
		}
		if r.Tag == match.Insert || r.Tag == match.Replace {
			n += len(sc.ins.open) + len(sc.ins.close)
		}
	}
	return n
}

// check verifies that regions are well formed and cover x[:n] and y[:m] contiguously.
func check(regions []match.Region, n, m int) error {
	s, t := 0, 0
	for i, r := range regions {
		if r.PosX != s || r.PosY != t || r.EndX < r.PosX || r.EndY < r.PosY {
			return fmt.Errorf("%w: region %d [%d:%d, %d:%d] doesn't start at [%d, %d]", ErrInvalidRegions, i, r.PosX, r.EndX, r.PosY, r.EndY, s, t)
		}
		nx, ny := r.EndX-r.PosX, r.EndY-r.PosY
		var ok bool
		switch r.Tag {
		case match.Equal:
			ok = nx == ny
		case match.Insert:
			ok = nx == 0
		case match.Delete:
			ok = ny == 0
		case match.Replace:
			ok = nx > 0 && ny > 0
		}
		if !ok {
			return fmt.Errorf("%w: region %d has invalid ranges for tag %v", ErrInvalidRegions, i, r.Tag)
		}
		s, t = r.EndX, r.EndY
	}
	if s != n || t != m {
		return fmt.Errorf("%w: regions end at [%d, %d], want [%d, %d]", ErrInvalidRegions, s, t, n, m)
	}
	return nil
}
