package ladder

import (
	"reflect"
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	d := New([]string{"  Fore ", "TORE", "fore", "", "tare"})

	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	want := []string{"fore", "tore", "tare"}
	if got := d.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if !d.Contains("FORE") {
		t.Error("Contains should be case-insensitive")
	}
	if d.Contains("tree") {
		t.Error("Contains reported a word that was never added")
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	d := New([]string{"cat", "cot"})
	words := d.Words()
	words[0] = "zzz"

	if got := d.Words()[0]; got != "cat" {
		t.Errorf("mutating the returned slice changed the dictionary: %q", got)
	}
}

func TestWordLength(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  int
	}{
		{"uniform", []string{"cat", "cot", "dog"}, 3},
		{"mixed", []string{"cat", "fore"}, 0},
		{"empty", nil, 0},
		{"single", []string{"tree"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.words).WordLength(); got != tt.want {
				t.Errorf("WordLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  FoRe\n"); got != "fore" {
		t.Errorf("Normalize = %q, want %q", got, "fore")
	}
}
