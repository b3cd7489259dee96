package benchmarks

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

type testdata struct {
	name string
	x, y []byte
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("../../testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	if len(testFiles) == 0 {
		t.Fatalf("No testdata found")
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := testdata{
			name: strings.TrimSuffix(filepath.Base(filename), ".test"),
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "source":
				test.x = f.Data
			case "test":
				test.y = f.Data
			}
		}
		tests = append(tests, test)
	}
	return tests
}

// Every implementation must produce a word diff that reconstructs both inputs.
func TestImpls(t *testing.T) {
	for _, impl := range Impls {
		for _, td := range loadTestdata(t) {
			t.Run(impl.Name+"/"+td.name, func(t *testing.T) {
				x, y := Words(td.x), Words(td.y)
				var gotX, gotY []string
				for _, e := range impl.Diff(x, y) {
					switch e.Op {
					case ' ':
						gotX = append(gotX, e.Text)
						gotY = append(gotY, e.Text)
					case '-':
						gotX = append(gotX, e.Text)
					case '+':
						gotY = append(gotY, e.Text)
					default:
						t.Fatalf("unknown op %q", e.Op)
					}
				}
				if diff := cmp.Diff(x, gotX); diff != "" {
					t.Errorf("source reconstruction is different [-want,+got]:\n%s", diff)
				}
				if diff := cmp.Diff(y, gotY); diff != "" {
					t.Errorf("test reconstruction is different [-want,+got]:\n%s", diff)
				}
			})
		}
	}
}

func TestTokenRune(t *testing.T) {
	for _, i := range []int{0, 1, 0xd7fe, 0xd7ff, 0xd800, 0xffff, 100000} {
		r := tokenRune(i)
		if r >= 0xd800 && r < 0xe000 {
			t.Errorf("tokenRune(%d) = %#x, a surrogate", i, r)
		}
		if got := runeToken(r); got != i {
			t.Errorf("runeToken(tokenRune(%d)) = %d", i, got)
		}
	}
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					x, y := Words(td.x), Words(td.y)
					for b.Loop() {
						_ = impl.Diff(x, y)
					}
					b.StopTimer()

					edits := 0
					for _, e := range impl.Diff(x, y) {
						if e.Op != ' ' {
							edits++
						}
					}
					b.ReportMetric(float64(edits), "edits")
				})
			}
		})
	}
}
