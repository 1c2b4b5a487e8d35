package voice

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewRecorderMissingOverride(t *testing.T) {
	_, err := NewRecorder(filepath.Join(t.TempDir(), "no-such-binary"))
	if !errors.Is(err, ErrNoRecorder) {
		t.Fatalf("expected ErrNoRecorder, got %v", err)
	}
}

func TestClampSeconds(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, MinSeconds},
		{-3, MinSeconds},
		{1, 1},
		{5, 5},
		{30, 30},
		{31, MaxSeconds},
		{1000, MaxSeconds},
	}
	for _, tc := range cases {
		if got := ClampSeconds(tc.in); got != tc.want {
			t.Fatalf("ClampSeconds(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
