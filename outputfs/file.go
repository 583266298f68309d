package outputfs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-git/go-billy/v5/osfs"
)

// NewFileFS returns an output filesystem for the tree of files rooted at the
// directory named by the given file: URL. Output paths are interpreted
// relative to that directory, so "/dist/app.js" on a filesystem for
// file:///srv/build refers to /srv/build/dist/app.js on disk.
//
// The directory need not exist yet.
func NewFileFS(_ context.Context, u *url.URL) (Filesystem, error) {
	rootPath := pathForDirFS(u)
	if rootPath == "" {
		return nil, fmt.Errorf("file URL %q has no path", u.String())
	}

	return osfs.New(rootPath), nil
}

// FileFS is used to register the local filesystem with a Mux
//
//nolint:gochecknoglobals
var FileFS = ProviderFunc(NewFileFS, schemeFile)

// return the correct filesystem path for the given URL. Supports Windows paths
// and UNCs as well
func pathForDirFS(u *url.URL) string {
	if u.Path == "" {
		return ""
	}

	rootPath := u.Path
	if len(rootPath) >= 3 {
		if rootPath[0] == '/' && rootPath[2] == ':' {
			rootPath = rootPath[1:]
		}
	}

	// a file:// URL with a host part should be interpreted as a UNC
	switch u.Host {
	case ".":
		rootPath = "//./" + rootPath
	case "":
		// nothin'
	default:
		rootPath = "//" + u.Host + rootPath
	}

	return rootPath
}
