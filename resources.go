package indicnorm

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/npillmayer/indicnorm/rules"
	"github.com/npillmayer/indicnorm/script"
)

//go:embed resources
var embedded embed.FS

// Resources returns the rule tables shipped with the package.
//
//	numerals/<Language>.tsv       numeral grammar, key TAB value
//	initials/<Script>.tsv         initials and acronyms, synonyms separated by TAB
//	abbreviations/<Language>.tsv  regular expression TAB replacement
//
// Every table may be stored xz-compressed with an additional ".xz" suffix.
func Resources() fs.FS {
	sub, err := fs.Sub(embedded, "resources")
	assert(err == nil, "embedded resources missing")
	return sub
}

func numeralsResource(lang script.Language) string {
	return path.Join("numerals", lang.Name+".tsv")
}

func initialsResource(s script.Script) string {
	return path.Join("initials", s.Name+".tsv")
}

func abbreviationsResource(lang script.Language) string {
	return path.Join("abbreviations", lang.Name+".tsv")
}

// resource is the content of a rule table together with its digest.
type resource struct {
	name   string
	data   []byte
	digest string
}

func (r resource) reader() io.Reader {
	return bytes.NewReader(r.data)
}

// short returns an abbreviated digest for identifiers.
func (r resource) short() string {
	if len(r.digest) > 12 {
		return r.digest[:12]
	}
	return r.digest
}

func readResource(fsys fs.FS, name string) (resource, error) {
	rc, err := rules.Open(fsys, name)
	if err != nil {
		return resource{}, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return resource{}, fmt.Errorf("rule resource %s: %w", name, err)
	}
	return resource{name: name, data: data, digest: rules.DigestBytes(data)}, nil
}

// TableInfo describes a rule table found in a resource file system.
type TableInfo struct {
	Name   string // path inside the file system, without ".xz"
	Digest string // BLAKE3 of the decompressed content
	Size   int
}

// ListTables returns all rule tables of fsys, sorted by name.
func ListTables(fsys fs.FS) ([]TableInfo, error) {
	var tables []TableInfo
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".tsv") || strings.HasSuffix(p, ".tsv.xz")) {
			return nil
		}
		res, err := readResource(fsys, p)
		if err != nil {
			return err
		}
		tables = append(tables, TableInfo{
			Name:   strings.TrimSuffix(p, ".xz"),
			Digest: res.digest,
			Size:   len(res.data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Name < tables[j].Name
	})
	return tables, nil
}
