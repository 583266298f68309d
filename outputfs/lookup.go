package outputfs

import (
	"context"
	"net/url"

	"github.com/go-git/go-billy/v5/memfs"
)

// constants for supported URL schemes
const (
	schemeMem      = "mem"
	schemeFile     = "file"
	schemeS3       = "s3"
	schemeGCS      = "gs"
	schemeAzBlob   = "azblob"
	schemeBlobMem  = "blob+mem"
	schemeBlobFile = "blob+file"
)

// MemFS provides in-memory output filesystems, for mem: URLs. Every lookup
// returns a new, empty filesystem.
//
//nolint:gochecknoglobals
var MemFS = ProviderFunc(func(_ context.Context, _ *url.URL) (Filesystem, error) {
	return memfs.New(), nil
}, schemeMem)

// DefaultMux returns a Mux with all of this package's providers registered.
func DefaultMux() Mux {
	m := NewMux()
	m.Add(MemFS)
	m.Add(FileFS)
	m.Add(BlobFS)

	return m
}

// Lookup returns an appropriate output filesystem for the given URL, using
// DefaultMux. If a filesystem can't be found for the provided URL's scheme, an
// error will be returned.
func Lookup(ctx context.Context, u string) (Filesystem, error) {
	return DefaultMux().Lookup(ctx, u)
}
