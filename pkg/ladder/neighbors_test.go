package ladder

import (
	"reflect"
	"sort"
	"testing"
)

// wordList is the word set the reference implementation's tests were built
// around: "trre" bridges the "-ore" words to the "-ree" cluster.
var wordList = []string{"four", "tire", "tree", "free", "flee", "fore", "tore", "trre"}

func TestNeighbors(t *testing.T) {
	d := New(wordList)

	tests := []struct {
		word string
		want []string
	}{
		{"tree", []string{"free", "trre"}},
		{"trre", []string{"tore", "tire", "tree"}},
		{"four", nil},
		{"fore", []string{"tore"}},
		// The query word need not be a dictionary member.
		{"gore", []string{"fore", "tore"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := d.Neighbors(tt.word)

			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Neighbors(%q) = %v, want %v", tt.word, got, want)
			}
		})
	}
}

func TestNeighborsExcludesSelf(t *testing.T) {
	d := New(wordList)
	for _, w := range wordList {
		for _, n := range d.Neighbors(w) {
			if n == w {
				t.Errorf("Neighbors(%q) contains the word itself", w)
			}
		}
	}
}

func TestNeighborsInvariants(t *testing.T) {
	d := New(wordList)
	for _, w := range wordList {
		for _, n := range d.Neighbors(w) {
			if len(n) != len(w) {
				t.Errorf("Neighbors(%q) returned %q with different length", w, n)
			}
			if !hammingOne(w, n) {
				t.Errorf("Neighbors(%q) returned %q at Hamming distance != 1", w, n)
			}
			if !d.Contains(n) {
				t.Errorf("Neighbors(%q) returned non-dictionary word %q", w, n)
			}
		}
	}
}

func TestNeighborsCaseInsensitive(t *testing.T) {
	d := New(wordList)
	if got, want := d.Neighbors("TREE"), d.Neighbors("tree"); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(TREE) = %v, want %v", got, want)
	}
}

func TestNeighborsDeterministicOrder(t *testing.T) {
	d := New(wordList)
	first := d.Neighbors("trre")
	for i := 0; i < 10; i++ {
		if got := d.Neighbors("trre"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Neighbors order changed between calls: %v vs %v", got, first)
		}
	}
}

func TestNeighborsIgnoresOtherLengths(t *testing.T) {
	d := New([]string{"cat", "cart", "cot"})
	got := d.Neighbors("cat")
	want := []string{"cot"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(cat) = %v, want %v", got, want)
	}
}

func TestHammingOne(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"cat", "cot", true},
		{"cat", "cat", false},
		{"cat", "dog", false},
		{"tire", "tree", false},
		{"trre", "tree", true},
	}
	for _, tt := range tests {
		if got := hammingOne(tt.a, tt.b); got != tt.want {
			t.Errorf("hammingOne(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
