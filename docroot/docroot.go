// Package docroot maps request paths to filesystem paths inside a fixed
// document root and rejects anything that would escape it.
package docroot

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/edvnrs/wwwd/buffer"
)

// DefaultRoot is the document root directory served by default.
const DefaultRoot = "www"

// maxFileSize caps how large a single served file may be, since every file
// is read fully into memory before responding.
const maxFileSize = 1 << 30

// ErrOutsideRoot is returned when a requested path would resolve outside
// the document root.
var ErrOutsideRoot = errors.New("path exits the document root")

// Dir is a document root directory.
type Dir string

// Resolve maps a requested path to a concrete path inside the root.
//
// The root is prepended, a trailing slash selects index.html, and the
// result is lexically normalized. Paths whose ".." segments would climb
// above the root are rejected with ErrOutsideRoot before any filesystem
// access. Resolve is a pure function.
func (d Dir) Resolve(requested string) (string, error) {
	p := string(d) + requested
	if strings.HasSuffix(p, "/") {
		p += "index.html"
	}

	if d.exits(p) {
		return "", ErrOutsideRoot
	}

	return path.Clean(p), nil
}

// exits walks the path segments with a depth counter and reports whether
// the path ever climbs above the document root. Empty and "." segments do
// not count as depth.
func (d Dir) exits(p string) bool {
	// The root itself may span several segments when the Dir is a longer
	// path; escaping means dropping to its depth or below.
	floor := 0
	for _, part := range strings.Split(string(d), "/") {
		if part != "" && part != "." && part != ".." {
			floor++
		}
	}

	depth := 0
	for _, part := range strings.Split(p, "/") {
		switch part {
		case "..":
			depth--
		case "", ".":
		default:
			depth++
		}

		if depth < floor {
			return true
		}
	}

	return false
}

// Inside reports whether a concrete path lies inside the document root.
// The handler re-checks this before opening any file.
func (d Dir) Inside(p string) bool {
	p = path.Clean(p)
	root := path.Clean(string(d))
	return p == root || strings.HasPrefix(p, root+"/")
}

// ReadFile reads the full contents of a file under the root into memory.
func (d Dir) ReadFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() == 0 {
		return []byte{}, nil
	}

	br, err := buffer.NewBuffReader(f, int(info.Size()))
	if err != nil {
		return nil, err
	}
	br.SetMaxSize(maxFileSize)

	return br.Read()
}

// ContentType returns the Content-Type for a file path based on its
// extension, or "" when the header should be omitted.
func ContentType(p string) string {
	switch path.Ext(p) {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	default:
		return ""
	}
}
