package modkit

import (
	"bytes"
	"testing"

	"bitextclean/internal/platform/config"

	"github.com/rs/zerolog"
)

func TestDeps_LoggerFallback(t *testing.T) {
	t.Parallel()

	var d Deps
	if d.Logger("clean") == nil {
		t.Fatal("zero Deps should still yield a logger")
	}

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	d = Deps{Log: &l, Cfg: config.New()}
	d.Logger("ignored").Info().Msg("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Fatalf("explicit logger not used: %q", buf.String())
	}
}
