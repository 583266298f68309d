package devfs

import (
	"io/fs"
	"mime"
	"path/filepath"
	"sync"
)

// common build output types which can be missing from the system MIME tables
//
//nolint:gochecknoglobals
var (
	extraMimeTypes = map[string]string{
		".js":          "text/javascript; charset=utf-8",
		".mjs":         "text/javascript; charset=utf-8",
		".cjs":         "text/javascript; charset=utf-8",
		".map":         "application/json",
		".json":        "application/json",
		".wasm":        "application/wasm",
		".webmanifest": "application/manifest+json",
		".svg":         "image/svg+xml",
		".woff2":       "font/woff2",
		".txt":         "text/plain",
	}
	extraMimeInit sync.Once
)

type contentTypeFileInfo interface {
	fs.FileInfo

	ContentType() string
}

// ContentType returns the MIME content type for the given fs.FileInfo. If fi
// has a ContentType method (as files from blob-backed output filesystems do),
// that will be used, otherwise the type will be guessed by the filename's
// extension. See the docs for mime.TypeByExtension for details on how
// extension lookup works.
//
// The returned value may have parameters (e.g. "text/javascript; charset=utf-8")
// which can be parsed with mime.ParseMediaType.
func ContentType(fi fs.FileInfo) string {
	if cf, ok := fi.(contentTypeFileInfo); ok && cf.ContentType() != "" {
		return cf.ContentType()
	}

	extraMimeInit.Do(func() {
		for k, v := range extraMimeTypes {
			_ = mime.AddExtensionType(k, v)
		}
	})

	// fall back to guessing based on extension
	ext := filepath.Ext(fi.Name())

	return mime.TypeByExtension(ext)
}
