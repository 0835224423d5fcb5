package config

import (
	"os"
	"path/filepath"
	"testing"

	kit "bitextclean/internal/platform/testkit"
)

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("DOT_KEEP", "from-env")
	_ = os.Unsetenv("DOT_NEW")
	t.Cleanup(func() { _ = os.Unsetenv("DOT_NEW") })
	path := kit.WriteTemp(t, ".env", "DOT_KEEP=from-file\nDOT_NEW=fresh\n")

	loaded, err := LoadDotEnv(path)
	if err != nil || !loaded {
		t.Fatalf("LoadDotEnv = %v, %v", loaded, err)
	}
	c := New().Prefix("DOT_")
	if got := c.MayString("KEEP", ""); got != "from-env" {
		t.Fatalf("existing env overwritten: %q", got)
	}
	if got := c.MayString("NEW", ""); got != "fresh" {
		t.Fatalf("file value not loaded: %q", got)
	}
}

func TestLoadDotEnv_MissingOrEmpty(t *testing.T) {
	if loaded, err := LoadDotEnv(""); loaded || err != nil {
		t.Fatalf("empty path = %v, %v", loaded, err)
	}
	if loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), "none.env")); loaded || err != nil {
		t.Fatalf("missing file = %v, %v", loaded, err)
	}
}
