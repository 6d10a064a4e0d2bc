package lanes

import "testing"

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelScalar: "scalar",
		Level128:    "128",
		Level256:    "256",
		Level(42):   "unknown",
	}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(l), got, want)
		}
	}
}

func TestLevelWidth(t *testing.T) {
	if LevelScalar.Width() != 0 || Level128.Width() != 16 || Level256.Width() != 32 {
		t.Errorf("unexpected widths: %d %d %d", LevelScalar.Width(), Level128.Width(), Level256.Width())
	}
}

func TestLevelSupports(t *testing.T) {
	if !Level256.Supports(Level128) || !Level256.Supports(LevelScalar) {
		t.Error("Level256 must support every lower level")
	}
	if Level128.Supports(Level256) {
		t.Error("Level128 must not support Level256")
	}
	if LevelScalar.Supports(Level(-1)) {
		t.Error("negative levels are never supported")
	}
}

func TestSetLevelForTesting(t *testing.T) {
	defer ResetLevel()

	SetLevelForTesting(LevelScalar)
	if CurrentLevel() != LevelScalar {
		t.Fatalf("CurrentLevel() = %v, want scalar", CurrentLevel())
	}
	if CurrentWidth() != 0 {
		t.Errorf("CurrentWidth() = %d, want 0", CurrentWidth())
	}

	SetLevelForTesting(Level256)
	if CurrentLevel() != Level256 {
		t.Fatalf("CurrentLevel() = %v, want 256", CurrentLevel())
	}

	ResetLevel()
	if CurrentLevel() != detectedLevel {
		t.Errorf("ResetLevel did not restore detection: got %v, want %v", CurrentLevel(), detectedLevel)
	}
}

func TestNoSimdEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, c := range cases {
		t.Setenv("RF_NO_SIMD", c.val)
		if got := NoSimdEnv(); got != c.want {
			t.Errorf("RF_NO_SIMD=%q: got %v, want %v", c.val, got, c.want)
		}
	}
}

func TestCurrentName(t *testing.T) {
	if CurrentName() == "" {
		t.Error("CurrentName() is empty")
	}
}
