package devfs

import (
	"io/fs"
	"path"
	"strings"
)

// StatFS is the capability the resolver needs from an output filesystem. Names
// are slash-separated output paths such as "/dist/app.js".
//
// Filesystems from github.com/go-git/go-billy/v5 satisfy StatFS directly. Use
// FromFS to adapt an fs.FS.
type StatFS interface {
	// Stat returns a FileInfo describing the named file. A missing file (or
	// any other failure) must be reported as an error.
	Stat(name string) (fs.FileInfo, error)
}

// FromFS adapts an fs.FS to a StatFS. Output paths are interpreted relative to
// the root of fsys, so "/dist/app.js" and "dist/app.js" both name the same
// file.
func FromFS(fsys fs.FS) StatFS {
	return &ioFS{fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f *ioFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.fsys, fsPath(name))
}

// fsPath converts an output path to a valid fs.FS path
func fsPath(name string) string {
	p := strings.TrimPrefix(path.Clean("/"+name), "/")
	if p == "" {
		return "."
	}

	return p
}
