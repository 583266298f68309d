package outputfs

import (
	"bytes"
	"context"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/hairyhenderson/go-devfs"
	"github.com/hairyhenderson/go-devfs/internal/tests"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAWSEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"AWS_S3_ENDPOINT", "AWS_REGION", "AWS_DEFAULT_REGION", "AWS_ANON", "AWS_PROFILE",
		"AWS_S3_ENDPOINT_FILE", "AWS_REGION_FILE", "AWS_DEFAULT_REGION_FILE", "AWS_ANON_FILE",
	} {
		t.Setenv(k, "")
	}
}

func setupTestS3Bucket(t *testing.T) *url.URL {
	t.Helper()

	backend := s3mem.New()
	faker := gofakes3.New(backend)

	srv := httptest.NewServer(faker.Server())
	t.Cleanup(srv.Close)

	require.NoError(t, backend.CreateBucket("mybucket"))

	put := func(key, mime, content string) {
		_, err := backend.PutObject("mybucket", key,
			map[string]string{"Content-Type": mime},
			bytes.NewBufferString(content), int64(len(content)))
		require.NoError(t, err)
	}

	put("dist/app.js", "text/javascript", "console.log(1)")
	put("dist/sub/index.html", "text/html", "<html></html>")

	return tests.MustURL(srv.URL)
}

func TestCleanS3URL(t *testing.T) {
	clearAWSEnv(t)

	data := []struct {
		in, expected string
	}{
		{"s3://foo/bar/baz", "s3://foo/bar/baz"},
		{"s3://foo/bar/baz?type=hello/world", "s3://foo/bar/baz"},
		{"s3://foo/bar/baz?region=us-east-1", "s3://foo/bar/baz?region=us-east-1"},
		{"s3://foo/bar/baz?disableSSL=true&type=text/csv", "s3://foo/bar/baz?disable_https=true"},
		{
			"s3://foo/bar/baz?type=text/csv&s3ForcePathStyle=true&endpoint=1.2.3.4",
			"s3://foo/bar/baz?endpoint=https%3A%2F%2F1.2.3.4&use_path_style=true",
		},
		{
			"s3://foo?disableSSL=true&endpoint=localhost:9000",
			"s3://foo?disable_https=true&endpoint=http%3A%2F%2Flocalhost%3A9000",
		},
		{
			"s3://foo?endpoint=http://minio:9000",
			"s3://foo?endpoint=http%3A%2F%2Fminio%3A9000",
		},
	}

	for _, d := range data {
		out := cleanS3URL(*tests.MustURL(d.in))
		assert.Equal(t, d.expected, out.String(), d.in)
	}

	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_ANON", "true")
	t.Setenv("AWS_S3_ENDPOINT", "https://s3.example.com")

	out := cleanS3URL(*tests.MustURL("s3://foo"))
	assert.Equal(t, "s3://foo?anonymous=true&endpoint=https%3A%2F%2Fs3.example.com&region=eu-west-1", out.String())

	// explicit parameters win
	out = cleanS3URL(*tests.MustURL("s3://foo?region=us-west-2"))
	assert.Equal(t, "us-west-2", out.Query().Get("region"))
}

func TestCleanGSURL(t *testing.T) {
	data := []struct {
		in, expected string
	}{
		{"gs://foo/bar/baz", "gs://foo/bar/baz"},
		{"gs://foo/bar/baz?type=foo/bar", "gs://foo/bar/baz"},
		{"gs://foo/bar/baz?access_id=123", "gs://foo/bar/baz?access_id=123"},
		{"gs://foo/bar/baz?private_key_path=key.json&foo=bar", "gs://foo/bar/baz?private_key_path=key.json"},
	}

	for _, d := range data {
		out := cleanGSURL(*tests.MustURL(d.in))
		assert.Equal(t, d.expected, out.String(), d.in)
	}
}

func TestNewBlobFS_S3(t *testing.T) {
	clearAWSEnv(t)

	srvURL := setupTestS3Bucket(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Setenv("AWS_ANON", "true")

	fsys, err := NewBlobFS(ctx, tests.MustURL(
		"s3://mybucket?region=us-east-1&disableSSL=true&s3ForcePathStyle=true&endpoint="+srvURL.Host))
	require.NoError(t, err)

	fi, err := fsys.Stat("/dist/app.js")
	require.NoError(t, err)
	assert.Equal(t, int64(len("console.log(1)")), fi.Size())
	assert.Equal(t, "text/javascript", devfs.ContentType(fi))

	fi, err = fsys.Stat("/dist/sub")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	r := devfs.New(fsys, devfs.Paths{{PublicPath: "/", OutputPath: "/dist"}},
		devfs.WithURLCache(devfs.NewURLCache()))

	filename, ok := r.Resolve("/sub/")
	assert.True(t, ok)
	assert.Equal(t, "/dist/sub/index.html", filename)

	_, ok = r.Resolve("/missing.js")
	assert.False(t, ok)
}

func TestOpenS3Bucket(t *testing.T) {
	clearAWSEnv(t)

	srvURL := setupTestS3Bucket(t)

	t.Setenv("AWS_ACCESS_KEY_ID", "fake")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "fake")
	t.Setenv("AWS_REGION", "us-east-1")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fsys, err := OpenS3Bucket(ctx, "mybucket", func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srvURL.String())
		o.UsePathStyle = true
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = fsys.Close() })

	assert.Equal(t, "s3://mybucket", fsys.URL())

	fi, err := fsys.Stat("/dist/sub/index.html")
	require.NoError(t, err)
	assert.Equal(t, "index.html", fi.Name())
	assert.Equal(t, "text/html", devfs.ContentType(fi))

	_, err = fsys.Stat("/dist/nope.js")
	require.Error(t, err)
}

func TestOpenGCSBucket(t *testing.T) {
	srv, err := fakestorage.NewServerWithOptions(fakestorage.Options{
		InitialObjects: []fakestorage.Object{
			{
				ObjectAttrs: fakestorage.ObjectAttrs{
					BucketName: "mybucket", Name: "dist/app.js", ContentType: "text/javascript",
				},
				Content: []byte("console.log(1)"),
			},
			{
				ObjectAttrs: fakestorage.ObjectAttrs{
					BucketName: "mybucket", Name: "dist/sub/index.html", ContentType: "text/html",
				},
				Content: []byte("<html></html>"),
			},
		},
		Scheme: "http",
		Host:   "127.0.0.1",
	})
	require.NoError(t, err)

	t.Cleanup(srv.Stop)

	t.Setenv("GOOGLE_ANON", "true")

	ctx := context.Background()

	bucket, err := openGCSBucket(ctx, tests.MustURL("gs://mybucket"), srv.HTTPClient().Transport)
	require.NoError(t, err)

	fsys := NewBucketFS(ctx, bucket)
	t.Cleanup(func() { _ = fsys.Close() })

	fi, err := fsys.Stat("/dist/app.js")
	require.NoError(t, err)
	assert.Equal(t, int64(len("console.log(1)")), fi.Size())
	assert.Equal(t, "text/javascript", devfs.ContentType(fi))

	fi, err = fsys.Stat("/dist/sub")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
