package ingest

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"bitextclean/internal/adapters/tsv"
	perr "bitextclean/internal/platform/errors"
	kit "bitextclean/internal/platform/testkit"
)

func drain(t *testing.T, f *sourceFactory, path string) ([][]string, error) {
	t.Helper()
	src, err := f.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	var out [][]string
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func TestSource_ReadsRowsAndStats(t *testing.T) {
	path := kit.WriteTemp(t, "in.tsv", "متن\tclean\n\nonly\n")
	f := NewSourceFactory(0).(sourceFactory)

	src, err := f.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var n int
	for {
		_, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		n++
	}
	rows, bytes := src.Stats()
	if n != 3 || rows != 3 || bytes == 0 {
		t.Fatalf("n=%d rows=%d bytes=%d", n, rows, bytes)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestSource_OpenMissingIsNotFound(t *testing.T) {
	f := NewSourceFactory(0).(sourceFactory)
	_, err := drain(t, &f, filepath.Join(t.TempDir(), "nope.tsv"))
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if perr.ExitCode(err) != perr.ExitNoInput {
		t.Fatalf("exit code = %d", perr.ExitCode(err))
	}
}

func TestSource_ParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		limit   int
		cause   error
	}{
		{"invalid utf-8", "ok\tok\n\xff\tx\n", 0, tsv.ErrInvalidUTF8},
		{"field too large", "abcdef\tx\n", 4, tsv.ErrFieldTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := kit.WriteTemp(t, "in.tsv", c.content)
			f := NewSourceFactory(c.limit).(sourceFactory)
			_, err := drain(t, &f, path)
			if !perr.IsCode(err, perr.ErrorCodeParse) || !errors.Is(err, c.cause) {
				t.Fatalf("want parse error wrapping %v, got %v", c.cause, err)
			}
			if e, _ := perr.As(err); e.Field() != path {
				t.Fatalf("field = %q, want %q", e.Field(), path)
			}
		})
	}
}

func TestSink_WritesTwoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	sk, err := NewSinkFactory().Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := sk.Write("متن", `say "hi"`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := sk.Write("دو", "two"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := sk.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	want := "متن\t\"say \"\"hi\"\"\"\r\nدو\ttwo\r\n"
	if got := kit.ReadString(t, path); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSink_CreateFailure(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &create, func(string) (*tsv.FileWriter, error) {
		return nil, &os.PathError{Op: "open", Path: "out.tsv", Err: os.ErrPermission}
	})
	_, err := NewSinkFactory().Create("out.tsv")
	if !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}
	if e, _ := perr.As(err); e.Op() != "create output" {
		t.Fatalf("op = %q", e.Op())
	}
}

func TestSink_CreateMissingDirIsCantCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "out.tsv")
	_, err := NewSinkFactory().Create(path)
	if !perr.IsCode(err, perr.ErrorCodeCantCreate) {
		t.Fatalf("want cant_create, got %v (%s)", err, perr.CodeOf(err))
	}
	if got := perr.ExitCode(err); got != perr.ExitCantCreate {
		t.Fatalf("exit = %d, want %d", got, perr.ExitCantCreate)
	}
	if e, _ := perr.As(err); e.Op() != "create output" || e.Field() != path {
		t.Fatalf("op/field = %q %q", e.Op(), e.Field())
	}
}

func TestSource_OpenSeam(t *testing.T) {
	kit.Serial(t)
	boom := errors.New("disk gone")
	kit.Swap(t, &open, func(string, tsv.Options) (*tsv.FileReader, error) { return nil, boom })
	_, err := NewSourceFactory(0).Open("in.tsv")
	if !perr.IsCode(err, perr.ErrorCodeIO) || !errors.Is(err, boom) {
		t.Fatalf("want io error wrapping cause, got %v", err)
	}
}
