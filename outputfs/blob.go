package outputfs

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/hairyhenderson/go-devfs/internal"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// drivers for the blob URL schemes
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketFS is an output filesystem backed by a Go CDK blob bucket. Buckets
// have no real directories: a directory exists whenever some object's key
// starts with its name followed by a slash, and MkdirAll is a no-op.
type BucketFS struct {
	ctx    context.Context
	bucket *blob.Bucket
	url    string
}

var _ Filesystem = (*BucketFS)(nil)

// NewBucketFS returns an output filesystem for the given bucket. The context
// is used for all bucket operations; see WithContext.
func NewBucketFS(ctx context.Context, bucket *blob.Bucket) *BucketFS {
	return &BucketFS{ctx: ctx, bucket: bucket}
}

// NewBlobFS opens the bucket named by the given URL. The s3, gs, and azblob
// schemes select cloud buckets, while blob+mem and blob+file select the Go
// CDK's in-memory and local directory buckets.
//
// For s3 URLs, the AWS SDK v1 parameters disableSSL and s3ForcePathStyle are
// accepted, and the region, endpoint and anonymous access can come from the
// AWS_REGION, AWS_S3_ENDPOINT and AWS_ANON environment variables. For gs URLs,
// set GOOGLE_ANON=true to read public buckets without credentials.
func NewBlobFS(ctx context.Context, u *url.URL) (Filesystem, error) {
	cdkURL := *u

	var (
		bucket *blob.Bucket
		err    error
	)

	switch u.Scheme {
	case schemeS3:
		cdkURL = cleanS3URL(cdkURL)
		bucket, err = blob.OpenBucket(ctx, cdkURL.String())
	case schemeGCS:
		cdkURL = cleanGSURL(cdkURL)
		bucket, err = openGCSBucket(ctx, &cdkURL, http.DefaultTransport)
	case schemeAzBlob:
		bucket, err = blob.OpenBucket(ctx, cdkURL.String())
	case schemeBlobMem, schemeBlobFile:
		cdkURL.Scheme = strings.TrimPrefix(u.Scheme, "blob+")
		bucket, err = blob.OpenBucket(ctx, cdkURL.String())
	default:
		return nil, fmt.Errorf("invalid URL scheme %q", u.Scheme)
	}

	if err != nil {
		return nil, fmt.Errorf("open bucket: %w", err)
	}

	fsys := NewBucketFS(ctx, bucket)
	fsys.url = u.String()

	return fsys, nil
}

// BlobFS is used to register blob-backed output filesystems with a Mux
//
//nolint:gochecknoglobals
var BlobFS = ProviderFunc(NewBlobFS, schemeS3, schemeGCS, schemeAzBlob, schemeBlobMem, schemeBlobFile)

// URL returns the URL the bucket was opened with, if any.
func (f *BucketFS) URL() string {
	return f.url
}

// WithContext returns a copy of the filesystem that uses ctx for bucket
// operations.
func (f BucketFS) WithContext(ctx context.Context) *BucketFS {
	fsys := f
	fsys.ctx = ctx

	return &fsys
}

// Bucket returns the underlying bucket.
func (f *BucketFS) Bucket() *blob.Bucket {
	return f.bucket
}

// Close closes the underlying bucket.
func (f *BucketFS) Close() error {
	return f.bucket.Close()
}

// Join - implements Filesystem
func (f *BucketFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// MkdirAll - implements Filesystem. Directories are implied by object keys,
// so there is nothing to create.
func (f *BucketFS) MkdirAll(name string, _ fs.FileMode) error {
	if !internal.ValidOutputPath(name) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
	}

	return nil
}

// WriteFile writes data to the object for the named output path.
func (f *BucketFS) WriteFile(name string, data []byte) error {
	key := bucketKey(name)
	if key == "" || !internal.ValidOutputPath(name) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	if err := f.bucket.WriteAll(f.ctx, key, data, nil); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	return nil
}

// Stat - implements devfs.StatFS
func (f *BucketFS) Stat(name string) (fs.FileInfo, error) {
	key := bucketKey(name)
	if key == "" {
		return internal.DirInfo("/", time.Time{}), nil
	}

	attrs, err := f.bucket.Attributes(f.ctx, key)
	if err == nil {
		return internal.FileInfo(path.Base(key), attrs.Size, 0o644, attrs.ModTime, attrs.ContentType), nil
	}

	if gcerrors.Code(err) != gcerrors.NotFound {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	return f.findDir(name, key)
}

// findDir looks for any object "inside" key, which makes it a directory
func (f *BucketFS) findDir(name, key string) (fs.FileInfo, error) {
	opts := blob.ListOptions{Delimiter: "/", Prefix: key + "/"}

	list, _, err := f.bucket.ListPage(f.ctx, blob.FirstPageToken, 1, &opts)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	if len(list) == 0 {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}

	return internal.DirInfo(path.Base(key), time.Time{}), nil
}

// bucketKey converts an output path to a bucket key. The root is "".
func bucketKey(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}
