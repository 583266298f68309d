package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hairyhenderson/go-devfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tfs "gotest.tools/v3/fs"
)

func TestResolveURLs(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/dist/app.js", bytes.Repeat([]byte("a"), 2560), 0o644))
	require.NoError(t, util.WriteFile(fsys, "/dist/sub/index.html", []byte("<html>"), 0o644))

	r := devfs.New(fsys, devfs.Paths{{PublicPath: "/static/", OutputPath: "/dist"}},
		devfs.WithURLCache(devfs.NewURLCache()))

	w := &bytes.Buffer{}

	err := resolveURLs(w, r, []string{"/static/app.js", "/static/sub/"}, false)
	require.NoError(t, err)
	assert.Equal(t, `/static/app.js -> /dist/app.js
/static/sub/ -> /dist/sub/index.html
`, w.String())

	w.Reset()

	err = resolveURLs(w, r, []string{"/static/app.js"}, true)
	require.NoError(t, err)
	assert.Equal(t, "/static/app.js -> /dist/app.js (2.5KiB, text/javascript; charset=utf-8)\n", w.String())

	w.Reset()

	err = resolveURLs(w, r, []string{"/static/app.js", "/missing.js", "/static/nope"}, false)
	require.ErrorIs(t, err, errUnresolved)
	assert.EqualError(t, err, "unresolved: 2 of 3 URLs")
	assert.Equal(t, `/static/app.js -> /dist/app.js
/missing.js -> (unresolved)
/static/nope -> (unresolved)
`, w.String())
}

func TestListMounts(t *testing.T) {
	w := &bytes.Buffer{}

	err := listMounts(w, devfs.Paths{
		{PublicPath: "/static/", OutputPath: "/client"},
		{PublicPath: "auto", OutputPath: "/server"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/static/ /client\n/        /server\n", w.String())
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0B", formatSize(0))
	assert.Equal(t, "1024B", formatSize(1024))
	assert.Equal(t, "2.5KiB", formatSize(2560))
	assert.Equal(t, "1.5MiB", formatSize(1536*1024))
	assert.Equal(t, "2.0GiB", formatSize(2*1024*1024*1024))
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"DEVFS_OUTPUT_URL", "DEVFS_OUTPUT_URL_FILE", "DEVFS_LOGGING_LEVEL",
		"DEVFS_LOGGING_FORMAT", "DEVFS_INDEX_NAME", "DEVFS_CACHE_SIZE",
		"DEVFS_EXCLUSIVE_PREFIX",
	} {
		t.Setenv(k, "")
	}
}

func setupOutput(t *testing.T) string {
	t.Helper()

	tmpDir := tfs.NewDir(t, "devfs-cmd",
		tfs.WithDir("build",
			tfs.WithDir("dist",
				tfs.WithFile("app.js", "console.log('hi')"),
				tfs.WithDir("sub", tfs.WithFile("index.html", "<html>")),
			),
		),
	)
	t.Cleanup(tmpDir.Remove)

	cfgPath := filepath.Join(tmpDir.Path(), "devfs.yaml")
	cfg := "output:\n  url: file://" + filepath.ToSlash(tmpDir.Join("build")) + `
mounts:
  - public_path: /static/
    output_path: /dist
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	return cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	clearEnv(t)

	cfgPath := setupOutput(t)

	out, err := execute(t, "--config", cfgPath, "resolve", "/static/app.js", "/static/sub/")
	require.NoError(t, err)
	assert.Equal(t, `/static/app.js -> /dist/app.js
/static/sub/ -> /dist/sub/index.html
`, out)

	out, err = execute(t, "--config", cfgPath, "--log-level", "debug", "resolve", "/static/missing.js")
	require.ErrorIs(t, err, errUnresolved)
	assert.Equal(t, "/static/missing.js -> (unresolved)\n", out)

	_, err = execute(t, "--config", cfgPath, "resolve")
	require.Error(t, err)

	_, err = execute(t, "--config", cfgPath, "--log-level", "loud", "mounts")
	require.ErrorContains(t, err, "logging")
}

func TestMountsCmd(t *testing.T) {
	clearEnv(t)

	cfgPath := setupOutput(t)

	out, err := execute(t, "--config", cfgPath, "mounts")
	require.NoError(t, err)
	assert.Equal(t, "/static/ /dist\n", out)

	_, err = execute(t, "--config", cfgPath, "mounts", "extra")
	require.Error(t, err)
}
