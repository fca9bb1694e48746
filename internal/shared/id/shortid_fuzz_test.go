package id

import (
	"strings"
	"testing"
)

// FuzzGenerate checks that generated IDs always have the requested length
// and only contain Base62 characters, whatever length is requested.
func FuzzGenerate(f *testing.F) {
	seeds := []int{-100, -1, 0, 1, 2, 8, 12, 32, 64, 256}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, length int) {
		if length > 4096 {
			return
		}

		got, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", length, err)
		}

		wantLen := length
		if wantLen <= 0 {
			wantLen = DefaultLength
		}
		if len(got) != wantLen {
			t.Errorf("Generate(%d) returned %q with length %d, want %d", length, got, len(got), wantLen)
		}

		for _, r := range got {
			if !strings.ContainsRune(alphabet, r) {
				t.Errorf("Generate(%d) returned %q containing %q outside the Base62 alphabet", length, got, r)
			}
		}
	})
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultLength)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
