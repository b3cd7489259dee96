// Package benchmarks compares the word alignment of redlines with other diff libraries.
package benchmarks

import (
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/redline"
)

// Edit is a single token of a word diff. Op is ' ' for tokens in both texts, '-' for deleted
// and '+' for inserted tokens.
type Edit struct {
	Op   byte
	Text string
}

type Impl struct {
	Name string
	Diff func(x, y []string) []Edit
}

var Impls = []Impl{
	{
		Name: "redline",
		Diff: func(x, y []string) []Edit {
			var edits []Edit
			for _, r := range redline.Align(x, y) {
				switch r.Tag {
				case redline.Equal:
					edits = appendEdits(edits, ' ', x[r.PosX:r.EndX])
				default:
					edits = appendEdits(edits, '-', x[r.PosX:r.EndX])
					edits = appendEdits(edits, '+', y[r.PosY:r.EndY])
				}
			}
			return edits
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []string) []Edit {
			// Same trick as DiffLinesToRunes, but with tokens instead of lines.
			var tokens []string
			index := make(map[string]rune)
			encode := func(s []string) []rune {
				rs := make([]rune, len(s))
				for i, t := range s {
					r, ok := index[t]
					if !ok {
						r = tokenRune(len(tokens))
						index[t] = r
						tokens = append(tokens, t)
					}
					rs[i] = r
				}
				return rs
			}
			rx, ry := encode(x), encode(y)

			dmp := diffmatchpatch.New()
			var edits []Edit
			for _, d := range dmp.DiffMainRunes(rx, ry, false) {
				var op byte
				switch d.Type {
				case diffmatchpatch.DiffEqual:
					op = ' '
				case diffmatchpatch.DiffDelete:
					op = '-'
				case diffmatchpatch.DiffInsert:
					op = '+'
				}
				for _, r := range d.Text {
					edits = append(edits, Edit{op, tokens[runeToken(r)]})
				}
			}
			return edits
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []string) []Edit {
			var edits []Edit
			for _, c := range godebug.DiffChunks(x, y) {
				edits = appendEdits(edits, '-', c.Deleted)
				edits = appendEdits(edits, '+', c.Added)
				edits = appendEdits(edits, ' ', c.Equal)
			}
			return edits
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []string) []Edit {
			var edits []Edit
			a := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0tokens{x, y}) {
				edits = appendEdits(edits, ' ', x[a:ch.A])
				edits = appendEdits(edits, '-', x[ch.A:ch.A+ch.Del])
				edits = appendEdits(edits, '+', y[ch.B:ch.B+ch.Ins])
				a = ch.A + ch.Del
			}
			return appendEdits(edits, ' ', x[a:])
		},
	},
}

func appendEdits(edits []Edit, op byte, tokens []string) []Edit {
	for _, t := range tokens {
		edits = append(edits, Edit{op, t})
	}
	return edits
}

// tokenRune maps a token index to a rune, skipping the surrogate range so that the runes survive
// a round trip through a string.
func tokenRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func runeToken(r rune) int {
	if r >= 0xd800 {
		r -= 0x800
	}
	return int(r) - 1
}

type mb0tokens struct {
	x, y []string
}

func (d mb0tokens) Equal(i, j int) bool { return d.x[i] == d.y[j] }

// Words splits text into the tokens used by all implementations.
func Words(text []byte) []string {
	tokens := redline.Tokenize(string(text))
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.String()
	}
	return words
}
