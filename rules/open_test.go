package rules

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/ulikunitz/xz"
)

func compress(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = io.WriteString(w, data); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, fsys fs.FS, name string) string {
	t.Helper()
	rc, err := Open(fsys, name)
	if err != nil {
		t.Fatalf("cannot open %s: %v", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestOpenPlainAndCompressed(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.tsv":     {Data: []byte("1\tone\n")},
		"packed.tsv.xz": {Data: compress(t, "2\ttwo\n")},
	}
	if got := readAll(t, fsys, "plain.tsv"); got != "1\tone\n" {
		t.Fatalf("plain content mismatch: %q", got)
	}
	if got := readAll(t, fsys, "packed.tsv"); got != "2\ttwo\n" {
		t.Fatalf("compressed fallback mismatch: %q", got)
	}
	if got := readAll(t, fsys, "packed.tsv.xz"); got != "2\ttwo\n" {
		t.Fatalf("explicit compressed mismatch: %q", got)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(fstest.MapFS{}, "missing.tsv")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDigestIgnoresCompression(t *testing.T) {
	content := "x00\thundred\n"
	fsys := fstest.MapFS{
		"a.tsv":    {Data: []byte(content)},
		"b.tsv.xz": {Data: compress(t, content)},
	}
	da := DigestBytes([]byte(readAll(t, fsys, "a.tsv")))
	db := DigestBytes([]byte(readAll(t, fsys, "b.tsv")))
	if da != db {
		t.Fatalf("digests differ: %s vs %s", da, db)
	}
	if len(da) != 64 {
		t.Fatalf("expected 256 bit hex digest, got %d chars", len(da))
	}
}
