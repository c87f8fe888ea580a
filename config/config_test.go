package config

import "testing"

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		" True ": true,
		"0":     false,
		"false": false,
		"":      false,
		"yes":   false,
	}
	for in, want := range cases {
		if got := parseBool(in); got != want {
			t.Errorf("parseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPipelineCachePath(t *testing.T) {
	r := Runtime{PipelineCacheDir: "/some/dir"}
	if got, want := r.PipelineCachePath(), "/some/dir/pipeline.cache"; got != want {
		t.Errorf("PipelineCachePath() = %q, want %q", got, want)
	}
}

func TestLoadDefaultsWithoutEnv(t *testing.T) {
	t.Setenv("ZEUS_SAFE_OVERLAY", "")
	t.Setenv("XDG_CACHE_HOME", "")
	r := Load()
	if r.SafeOverlay {
		t.Errorf("expected SafeOverlay false by default")
	}
	if r.PipelineCacheDir == "" {
		t.Errorf("expected a non-empty cache dir fallback")
	}
}
