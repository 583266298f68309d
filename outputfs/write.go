package outputfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type fileWriter interface {
	WriteFile(name string, data []byte) error
}

// WriteFile writes data to the named file on fsys, creating parent
// directories as needed. The filesystem must be a go-billy filesystem or
// provide its own WriteFile method (as BucketFS does).
func WriteFile(fsys Filesystem, name string, data []byte) error {
	switch w := fsys.(type) {
	case fileWriter:
		return w.WriteFile(name, data)
	case billy.Basic:
		if err := fsys.MkdirAll(path.Dir(name), 0o755); err != nil {
			return err
		}

		return util.WriteFile(w, name, data, 0o644)
	default:
		return &fs.PathError{Op: "write", Path: name, Err: fmt.Errorf("%T: %w", fsys, errors.ErrUnsupported)}
	}
}
