package ladder

import (
	"context"
	"reflect"
	"testing"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		start string
		end   string
		want  Ladder
	}{
		{
			name:  "four step ladder",
			words: wordList,
			start: "fore",
			end:   "tree",
			want:  Ladder{"fore", "tore", "trre", "tree"},
		},
		{
			name:  "six step ladder",
			words: wordList,
			start: "fore",
			end:   "flee",
			want:  Ladder{"fore", "tore", "trre", "tree", "free", "flee"},
		},
		{
			name:  "chain",
			words: []string{"cat", "cot", "cog", "dog"},
			start: "cat",
			end:   "dog",
			want:  Ladder{"cat", "cot", "cog", "dog"},
		},
		{
			name:  "start equals end",
			words: wordList,
			start: "four",
			end:   "four",
			want:  Ladder{"four"},
		},
		{
			name:  "case insensitive",
			words: []string{"cat", "cot", "cog", "dog"},
			start: "Cat",
			end:   "DOG",
			want:  Ladder{"cat", "cot", "cog", "dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.words)
			got, found, err := d.Find(context.Background(), tt.start, tt.end)
			if err != nil {
				t.Fatalf("Find error: %v", err)
			}
			if !found {
				t.Fatal("Find reported no ladder")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNoPath(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		start string
		end   string
	}{
		{"disconnected", []string{"cat", "dog"}, "cat", "dog"},
		{"isolated word", wordList, "four", "tree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.words)
			got, found, err := d.Find(context.Background(), tt.start, tt.end)
			if err != nil {
				t.Fatalf("Find error: %v", err)
			}
			if found {
				t.Fatalf("Find = %v, want no ladder", got)
			}
			if got != nil {
				t.Errorf("Find returned a ladder alongside found=false: %v", got)
			}
		})
	}
}

func TestFindInvalidInput(t *testing.T) {
	d := New([]string{"fore", "tore", "tree", "trre"})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"different lengths", "cat", "fore"},
		{"wrong length for dictionary", "cat", "dog"},
		{"empty start", "", "fore"},
		{"empty end", "fore", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found, err := d.Find(context.Background(), tt.start, tt.end)
			if err == nil {
				t.Fatal("Find should have failed")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
			if found {
				t.Error("found should be false on invalid input")
			}
		})
	}
}

// Mixed-length dictionaries carry no single expected length, so only the
// start/end agreement is enforced and inert words are skipped over.
func TestFindMixedLengthDictionary(t *testing.T) {
	d := New([]string{"cart", "cat", "cot", "cog", "dog", "carts"})
	got, found, err := d.Find(context.Background(), "cat", "dog")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if !found {
		t.Fatal("Find reported no ladder")
	}
	want := Ladder{"cat", "cot", "cog", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

// Start and end are valid graph nodes even when the dictionary lacks them.
func TestFindInjectsEndpoints(t *testing.T) {
	t.Run("start absent", func(t *testing.T) {
		d := New([]string{"cot", "cog"})
		got, found, err := d.Find(context.Background(), "cat", "cog")
		if err != nil || !found {
			t.Fatalf("Find = %v, %v, %v", got, found, err)
		}
		if want := (Ladder{"cat", "cot", "cog"}); !reflect.DeepEqual(got, want) {
			t.Errorf("Find = %v, want %v", got, want)
		}
	})

	t.Run("end absent", func(t *testing.T) {
		d := New([]string{"cat", "cot"})
		got, found, err := d.Find(context.Background(), "cat", "cog")
		if err != nil || !found {
			t.Fatalf("Find = %v, %v, %v", got, found, err)
		}
		if want := (Ladder{"cat", "cot", "cog"}); !reflect.DeepEqual(got, want) {
			t.Errorf("Find = %v, want %v", got, want)
		}
	})

	t.Run("adjacent endpoints, empty dictionary", func(t *testing.T) {
		d := New(nil)
		got, found, err := d.Find(context.Background(), "cat", "cot")
		if err != nil || !found {
			t.Fatalf("Find = %v, %v, %v", got, found, err)
		}
		if want := (Ladder{"cat", "cot"}); !reflect.DeepEqual(got, want) {
			t.Errorf("Find = %v, want %v", got, want)
		}
	})
}

func TestFindIdempotent(t *testing.T) {
	d := New(wordList)
	first, found, err := d.Find(context.Background(), "fore", "flee")
	if err != nil || !found {
		t.Fatalf("Find = %v, %v, %v", first, found, err)
	}
	for i := 0; i < 10; i++ {
		got, found, err := d.Find(context.Background(), "fore", "flee")
		if err != nil || !found {
			t.Fatalf("Find = %v, %v, %v", got, found, err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("Find changed between calls: %v vs %v", got, first)
		}
	}
}

// Edges are undirected, so the reverse search must find a ladder of the
// same length (not necessarily the reversed ladder).
func TestFindReverseSameLength(t *testing.T) {
	d := New(wordList)

	forward, found, err := d.Find(context.Background(), "fore", "flee")
	if err != nil || !found {
		t.Fatalf("forward Find = %v, %v, %v", forward, found, err)
	}
	backward, found, err := d.Find(context.Background(), "flee", "fore")
	if err != nil || !found {
		t.Fatalf("backward Find = %v, %v, %v", backward, found, err)
	}
	if len(forward) != len(backward) {
		t.Errorf("forward length %d != backward length %d", len(forward), len(backward))
	}
}

func TestFindCancelled(t *testing.T) {
	d := New(wordList)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := d.Find(ctx, "fore", "flee")
	if err != context.Canceled {
		t.Errorf("Find error = %v, want context.Canceled", err)
	}
}

func TestFindDoesNotMutateDictionary(t *testing.T) {
	d := New([]string{"cat", "cot"})
	before := d.Words()

	if _, _, err := d.Find(context.Background(), "cat", "cog"); err != nil {
		t.Fatalf("Find error: %v", err)
	}

	if !reflect.DeepEqual(d.Words(), before) {
		t.Errorf("Find mutated the dictionary: %v", d.Words())
	}
	if d.Contains("cog") {
		t.Error("injected end word leaked into the dictionary")
	}
}

func TestLadderReverse(t *testing.T) {
	l := Ladder{"cat", "cot", "cog"}
	want := Ladder{"cog", "cot", "cat"}
	if got := l.Reverse(); !reflect.DeepEqual(got, want) {
		t.Errorf("Reverse = %v, want %v", got, want)
	}
	// Original is untouched.
	if l[0] != "cat" {
		t.Error("Reverse mutated the original ladder")
	}
}

func TestLadderSteps(t *testing.T) {
	tests := []struct {
		l    Ladder
		want int
	}{
		{nil, 0},
		{Ladder{"cat"}, 0},
		{Ladder{"cat", "cot", "cog"}, 2},
	}
	for _, tt := range tests {
		if got := tt.l.Steps(); got != tt.want {
			t.Errorf("Steps(%v) = %d, want %d", tt.l, got, tt.want)
		}
	}
}
