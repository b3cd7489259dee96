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

// Package redline compares two versions of a text word by word and renders a redline: the text
// with deleted and inserted words marked up.
//
// The main function is [Redline], which compares two texts and returns the marked up result in
// one step. The individual steps are available as [Tokenize], [Align], and [Render]. A [Session]
// binds a source text to a comparison text and caches the intermediate results, so that switching
// the [Style] or the comparison text only redoes the work that is necessary.
//
// Texts are split into words and the punctuation characters ( ) . ? ! - together with the
// whitespace that follows them. Two texts are aligned by repeatedly matching the longest run of
// words they have in common (Ratcliff/Obershelp). This doesn't necessarily produce the smallest
// number of changes, but it tends to keep unchanged phrases together.
//
// Performance: The alignment is quadratic in the number of tokens in the worst case. This is
// fine for clauses and sections of legislation, but it does not scale to large documents.
package redline
