package outputfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/hairyhenderson/go-devfs"
)

// ErrInvalidOutputFS is returned by Setup when the supplied filesystem lacks
// a required capability. No request could ever be served from such a
// filesystem, so this is a configuration error rather than a lookup miss.
var ErrInvalidOutputFS = errors.New("invalid options: output filesystem")

// Filesystem is an output filesystem: something a build can create
// directories in, and a resolver can stat files on. Filesystems from
// github.com/go-git/go-billy/v5 satisfy this interface.
type Filesystem interface {
	devfs.StatFS

	// Join joins path elements into a single output path.
	Join(elem ...string) string

	// MkdirAll creates a directory along with any necessary parents.
	MkdirAll(name string, perm fs.FileMode) error
}

// Target receives the output filesystem - typically one compiler of a
// (possibly multi-compiler) build.
type Target interface {
	SetOutputFS(fsys Filesystem)
}

// TargetFunc adapts a function to a Target.
type TargetFunc func(fsys Filesystem)

// SetOutputFS - implements Target
func (f TargetFunc) SetOutputFS(fsys Filesystem) {
	f(fsys)
}

type joiner interface {
	Join(elem ...string) string
}

type mkdirAller interface {
	MkdirAll(name string, perm fs.FileMode) error
}

// Setup validates the given output filesystem and assigns it to each target.
// When candidate is nil, a new in-memory filesystem is used.
//
// An error wrapping ErrInvalidOutputFS is returned when candidate doesn't
// have the methods a Filesystem requires.
func Setup(candidate any, targets ...Target) (Filesystem, error) {
	var fsys Filesystem

	if candidate == nil {
		fsys = memfs.New()
	} else {
		if _, ok := candidate.(devfs.StatFS); !ok {
			return nil, fmt.Errorf("%w: Stat() method is expected", ErrInvalidOutputFS)
		}

		if _, ok := candidate.(joiner); !ok {
			return nil, fmt.Errorf("%w: Join() method is expected", ErrInvalidOutputFS)
		}

		if _, ok := candidate.(mkdirAller); !ok {
			return nil, fmt.Errorf("%w: MkdirAll() method is expected", ErrInvalidOutputFS)
		}

		fsys = candidate.(Filesystem)
	}

	for _, t := range targets {
		t.SetOutputFS(fsys)
	}

	return fsys, nil
}
