package lanes

import "testing"

func TestSplitRow(t *testing.T) {
	cases := []struct {
		width, n, full, rem int
	}{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 16, 0},
		{17, 16, 16, 1},
		{100, 32, 96, 4},
		{7, 0, 0, 7},
		{-3, 16, 0, 0},
	}
	for _, c := range cases {
		full, rem := SplitRow(c.width, c.n)
		if full != c.full || rem != c.rem {
			t.Errorf("SplitRow(%d, %d) = (%d, %d), want (%d, %d)", c.width, c.n, full, rem, c.full, c.rem)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	if got := AlignedSize(33, 32); got != 64 {
		t.Errorf("AlignedSize(33, 32) = %d, want 64", got)
	}
	if got := AlignedSize(64, 32); got != 64 {
		t.Errorf("AlignedSize(64, 32) = %d, want 64", got)
	}
	if got := AlignedSize(5, 0); got != 5 {
		t.Errorf("AlignedSize(5, 0) = %d, want 5", got)
	}
	if !IsAligned(48, 16) || IsAligned(50, 16) || !IsAligned(3, 0) {
		t.Error("IsAligned returned wrong results")
	}
}
