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
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestSessionCompareCached(t *testing.T) {
	s := NewSession("the cat sat.", Against("the dog sat."))
	if s.naligns != 1 {
		t.Fatalf("NewSession(..., Against(...)) aligned %v times, want 1", s.naligns)
	}

	first, err := s.Compare(Against("the dog sat."), Markup(Marked))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	want := "the " + delOpen + "cat " + spanEnd + insOpen + "dog " + spanEnd + "sat."
	if first != want {
		t.Errorf("Compare(...) = %q, want %q", first, want)
	}

	second, err := s.Compare(Against("the dog sat."), Markup(Marked))
	if err != nil {
		t.Fatalf("second Compare(...) failed: %v", err)
	}
	if unsafe.StringData(second) != unsafe.StringData(first) {
		t.Errorf("second Compare(...) returned a new string, want the cached one")
	}
	if s.naligns != 1 {
		t.Errorf("Compare(...) aligned %v times in total, want 1", s.naligns)
	}
}

func TestSessionStyleChangeKeepsAlignment(t *testing.T) {
	s := NewSession("He ran.", Against("He quickly ran."))

	marked, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	if want := "He " + insOpen + "quickly " + spanEnd + "ran."; marked != want {
		t.Errorf("Compare() = %q, want %q", marked, want)
	}

	plain, err := s.Compare(Markup(Plain))
	if err != nil {
		t.Fatalf("Compare(Markup(Plain)) failed: %v", err)
	}
	if want := "He quickly ran."; plain != want {
		t.Errorf("Compare(Markup(Plain)) = %q, want %q", plain, want)
	}
	if s.Style() != Plain {
		t.Errorf("Style() = %v after Compare(Markup(Plain)), want %v", s.Style(), Plain)
	}

	s.SetStyle(Marked)
	again, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	if again != marked {
		t.Errorf("Compare() = %q after switching back to Marked, want %q", again, marked)
	}
	if s.naligns != 1 {
		t.Errorf("style changes aligned %v times in total, want 1", s.naligns)
	}
}

func TestSessionSetters(t *testing.T) {
	s := NewSession("He quickly ran.")
	if _, ok := s.Test(); ok {
		t.Errorf("Test() reports a comparison text for a new session")
	}
	if s.naligns != 0 {
		t.Errorf("NewSession(...) aligned %v times, want 0", s.naligns)
	}

	// Setting the comparison text aligns eagerly.
	s.SetTest("He ran.")
	if s.naligns != 1 {
		t.Errorf("SetTest(...) aligned %v times, want 1", s.naligns)
	}
	regions, err := s.Regions()
	if err != nil {
		t.Fatalf("Regions() failed: %v", err)
	}
	want := []Region{{Equal, 0, 1, 0, 1}, {Delete, 1, 2, 1, 1}, {Equal, 2, 4, 1, 3}}
	if diff := cmp.Diff(want, regions); diff != "" {
		t.Errorf("Regions() result are different [-want,+got]:\n%s", diff)
	}

	// Replacing the source keeps the comparison text and aligns lazily.
	s.SetSource("He ran.")
	if test, ok := s.Test(); !ok || test != "He ran." {
		t.Errorf("Test() = %q, %v after SetSource(...), want %q, true", test, ok, "He ran.")
	}
	if s.naligns != 1 {
		t.Errorf("SetSource(...) aligned, want lazy alignment")
	}
	got, err := s.Compare(Markup(Plain))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	if got != "He ran." {
		t.Errorf("Compare(...) = %q, want %q", got, "He ran.")
	}
	if s.naligns != 2 {
		t.Errorf("Compare(...) after SetSource(...) aligned %v times in total, want 2", s.naligns)
	}
	if s.Source() != "He ran." {
		t.Errorf("Source() = %q, want %q", s.Source(), "He ran.")
	}

	// A different comparison text passed to Compare replaces the comparison text.
	got, err = s.Compare(Against("She ran."))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	if got != "He She ran." {
		t.Errorf("Compare(Against(...)) = %q, want %q", got, "He She ran.")
	}
	if test, _ := s.Test(); test != "She ran." {
		t.Errorf("Test() = %q after Compare(Against(...)), want %q", test, "She ran.")
	}
	if diff := cmp.Diff([]Token{{Word: "She", Space: " "}, {Word: "ran"}, {Word: "."}}, s.TestTokens()); diff != "" {
		t.Errorf("TestTokens() result are different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]Token{{Word: "He", Space: " "}, {Word: "ran"}, {Word: "."}}, s.SourceTokens()); diff != "" {
		t.Errorf("SourceTokens() result are different [-want,+got]:\n%s", diff)
	}
}

func TestSessionEmptyComparisonText(t *testing.T) {
	s := NewSession("Repealed.", Against(""))
	got, err := s.Compare(Markup(Plain))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	if got != "Repealed." {
		t.Errorf("Compare(...) = %q, want %q", got, "Repealed.")
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession("the cat sat.")
	if _, err := s.Compare(); !errors.Is(err, ErrMissingComparisonText) {
		t.Errorf("Compare() error = %v, want %v", err, ErrMissingComparisonText)
	}
	if _, err := s.Regions(); !errors.Is(err, ErrMissingComparisonText) {
		t.Errorf("Regions() error = %v, want %v", err, ErrMissingComparisonText)
	}
	if _, err := s.Compare(Markup(Plain)); !errors.Is(err, ErrMissingComparisonText) {
		t.Errorf("Compare(Markup(Plain)) error = %v, want %v", err, ErrMissingComparisonText)
	}
	if s.Style() != Marked {
		t.Errorf("failed Compare(...) changed the style to %v", s.Style())
	}

	s.SetTest("the dog sat.")
	if _, err := s.Compare(Against("a"), Markup(Style(9))); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Compare(Markup(Style(9))) error = %v, want %v", err, ErrInvalidStyle)
	}
	if test, _ := s.Test(); test != "the dog sat." {
		t.Errorf("failed Compare(...) changed the comparison text to %q", test)
	}

	s.SetStyle(Style(-3))
	if _, err := s.Compare(); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Compare() with invalid session style error = %v, want %v", err, ErrInvalidStyle)
	}
}

func TestSessionRegionsAreCopies(t *testing.T) {
	s := NewSession("the cat sat.", Against("the dog sat."))
	regions, err := s.Regions()
	if err != nil {
		t.Fatalf("Regions() failed: %v", err)
	}
	regions[0].Tag = Delete

	got, err := s.Compare(Markup(Plain))
	if err != nil {
		t.Fatalf("Compare(...) failed: %v", err)
	}
	if got != "the cat dog sat." {
		t.Errorf("Compare(...) = %q after modifying the result of Regions(), want %q", got, "the cat dog sat.")
	}
}
