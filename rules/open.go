package rules

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// Open opens a rule resource from fsys. If name does not exist, a
// compressed variant name+".xz" is tried and decompressed on the fly.
// Names ending in ".xz" are always decompressed.
func Open(fsys fs.FS, name string) (io.ReadCloser, error) {
	if strings.HasSuffix(name, ".xz") {
		return openXZ(fsys, name)
	}
	f, err := fsys.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	rc, xzerr := openXZ(fsys, name+".xz")
	if xzerr != nil {
		if errors.Is(xzerr, fs.ErrNotExist) {
			return nil, err // report the uncompressed name
		}
		return nil, xzerr
	}
	return rc, nil
}

type xzFile struct {
	io.Reader
	f fs.File
}

func (x xzFile) Close() error {
	return x.f.Close()
}

func openXZ(fsys fs.FS, name string) (io.ReadCloser, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("rule resource %s: %w", name, err)
	}
	tracer().Debugf("reading compressed rule resource %s", name)
	return xzFile{Reader: xr, f: f}, nil
}

// DigestBytes returns the hex-encoded BLAKE3 hash of data. Hashing the
// decompressed content of a table identifies its version independently of
// file name and compression.
func DigestBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
