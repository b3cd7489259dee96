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

// Package match aligns two sequences by recursively matching their longest common blocks.
//
// The algorithm is the one known as Ratcliff/Obershelp or "gestalt pattern matching": find the
// longest contiguous block that both sequences have in common, then apply the same idea to the
// unmatched parts left and right of that block. The result is not necessarily a minimal edit
// script, but it tends to look right to people, because long runs of unchanged words stay
// together.
//
// Performance: Finding the longest block in a range is O(N*M) in the worst case, and is repeated
// for every block found, with N = len(x) and M = len(y). Inputs without any common structure are
// therefore quadratic. This is a known scaling limit, the package is meant for short texts like
// single clauses and not for large documents.
package match

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Tag -linecomment

// Tag describes how a region of x relates to a region of y.
type Tag int

const (
	Equal   Tag = iota // equal
	Insert             // insert
	Delete             // delete
	Replace            // replace
)

// Region describes how x[PosX:EndX] aligns with y[PosY:EndY].
//
//   - For Equal, both ranges have the same length and contain equal elements.
//   - For Insert, the range in x is empty.
//   - For Delete, the range in y is empty.
//   - For Replace, neither range is empty.
type Region struct {
	Tag        Tag
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Align compares x and y and returns the regions that transform x into y.
//
// The regions are ordered, contiguous and cover both x and y completely. No two consecutive
// regions have the same tag. If there are multiple longest common blocks, the one that starts
// earliest in x is used, and of those the one that starts earliest in y.
func Align[T comparable](x, y []T) []Region {
	x0, y0, n := preprocess(x, y)
	return align(x0, y0, n)
}

// AlignFunc is like [Align] but uses eq to compare elements. eq must be an equivalence relation.
//
// Note that this function has worse performance than [Align], every element is compared with all
// distinct elements of y.
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) []Region {
	x0, y0, n := preprocessFunc(x, y, eq)
	return align(x0, y0, n)
}

// preprocess assigns a dense ID to every distinct element of y and translates x and y to these
// IDs. Elements of x that don't appear in y are assigned -1, they can never be part of a match.
func preprocess[T comparable](x, y []T) (x0, y0 []int, n int) {
	idx := make(map[T]int, len(y))
	buf := make([]int, len(x)+len(y))
	x0, y0 = buf[:len(x):len(x)], buf[len(x):]
	for t, e := range y {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		y0[t] = id
	}
	for s, e := range x {
		id, ok := idx[e]
		if !ok {
			id = -1
		}
		x0[s] = id
	}
	return x0, y0, len(idx)
}

func preprocessFunc[T any](x, y []T, eq func(a, b T) bool) (x0, y0 []int, n int) {
	var reps []T // one representative per ID
	find := func(e T) int {
		for id, r := range reps {
			if eq(r, e) {
				return id
			}
		}
		return -1
	}
	buf := make([]int, len(x)+len(y))
	x0, y0 = buf[:len(x):len(x)], buf[len(x):]
	for t, e := range y {
		id := find(e)
		if id < 0 {
			id = len(reps)
			reps = append(reps, e)
		}
		y0[t] = id
	}
	for s, e := range x {
		x0[s] = find(e)
	}
	return x0, y0, len(reps)
}

// block describes a common block x[s:s+n] == y[t:t+n].
type block struct {
	s, t, n int
}

func align(x, y []int, nids int) []Region {
	var m matcher
	m.init(x, y, nids)
	return regions(m.blocks(), len(x), len(y))
}

type matcher struct {
	x, y []int
	yidx [][]int // yidx[id] lists the positions of id in y in increasing order

	// Scratch space for longest. prev[t+1] is the length of the common block that ends in y[t]
	// and the previous element of x.
	prev, next []int
}

func (m *matcher) init(x, y []int, nids int) {
	m.x, m.y = x, y
	m.yidx = make([][]int, nids)
	for t, id := range y {
		m.yidx[id] = append(m.yidx[id], t)
	}
	buf := make([]int, 2*(len(y)+1))
	m.prev, m.next = buf[:len(y)+1:len(y)+1], buf[len(y)+1:]
}

// task is a unit of work for blocks. It's either a pair of ranges x[s0:s1] and y[t0:t1] that
// still need to be matched or, if done is set, a block that was found in a previous step.
type task struct {
	s0, s1, t0, t1 int
	done           bool
}

// blocks returns all common blocks in increasing order.
//
// Conceptually, this is a recursion over the ranges before and after the longest block. The
// recursion is replaced by an explicit stack so that pathological inputs can't exhaust the call
// stack. Ranges are pushed in reverse order, to pop them in the order they appear in the input.
func (m *matcher) blocks() []block {
	var out []block
	stack := []task{{0, len(m.x), 0, len(m.y), false}}
	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tk.done {
			out = append(out, block{tk.s0, tk.t0, tk.s1 - tk.s0})
			continue
		}

		s, t, n := m.longest(tk.s0, tk.s1, tk.t0, tk.t1)
		if n == 0 {
			continue
		}
		if s+n < tk.s1 && t+n < tk.t1 {
			stack = append(stack, task{s + n, tk.s1, t + n, tk.t1, false})
		}
		stack = append(stack, task{s, s + n, t, t + n, true})
		if tk.s0 < s && tk.t0 < t {
			stack = append(stack, task{tk.s0, s, tk.t0, t, false})
		}
	}
	return out
}

// longest finds the longest common block in x[s0:s1] and y[t0:t1].
//
// Of all longest blocks, it returns the one that starts earliest in x and of those, the one that
// starts earliest in y. If there is no common block, n is zero.
func (m *matcher) longest(s0, s1, t0, t1 int) (s, t, n int) {
	s, t = s0, t0
	prev, next := m.prev, m.next
	var ptouched, ntouched []int // entries of prev and next that are non-zero
	for i := s0; i < s1; i++ {
		ntouched = ntouched[:0]
		if id := m.x[i]; id >= 0 {
			for _, j := range m.yidx[id] {
				if j < t0 {
					continue
				}
				if j >= t1 {
					break
				}
				k := prev[j] + 1
				next[j+1] = k
				ntouched = append(ntouched, j+1)
				// Strictly greater keeps the earliest block on ties: i only grows and for a fixed
				// i, j only grows.
				if k > n {
					s, t, n = i-k+1, j-k+1, k
				}
			}
		}
		for _, j := range ptouched {
			prev[j] = 0
		}
		prev, next = next, prev
		ptouched, ntouched = ntouched, ptouched
	}
	for _, j := range ptouched {
		prev[j] = 0
	}
	return s, t, n
}

// regions translates the common blocks into regions and merges neighbouring regions with the same
// tag.
func regions(blocks []block, n, m int) []Region {
	out := make([]Region, 0, 2*len(blocks)+1)
	add := func(r Region) {
		if len(out) > 0 && out[len(out)-1].Tag == r.Tag {
			out[len(out)-1].EndX = r.EndX
			out[len(out)-1].EndY = r.EndY
			return
		}
		out = append(out, r)
	}

	s, t := 0, 0
	// The sentinel block at the end takes care of the trailing unmatched ranges.
	for _, b := range append(blocks, block{n, m, 0}) {
		switch {
		case s < b.s && t < b.t:
			add(Region{Replace, s, b.s, t, b.t})
		case s < b.s:
			add(Region{Delete, s, b.s, t, t})
		case t < b.t:
			add(Region{Insert, s, s, t, b.t})
		}
		if b.n > 0 {
			add(Region{Equal, b.s, b.s + b.n, b.t, b.t + b.n})
		}
		s, t = b.s+b.n, b.t+b.n
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
