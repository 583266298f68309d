package devfs

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSPath(t *testing.T) {
	testdata := []struct {
		in, expected string
	}{
		{"", "."},
		{"/", "."},
		{".", "."},
		{"/out", "out"},
		{"/out/", "out"},
		{"out/app.js", "out/app.js"},
		{"/out//sub/../app.js", "out/app.js"},
		{"/../../etc/passwd", "etc/passwd"},
	}

	for _, d := range testdata {
		assert.Equal(t, d.expected, fsPath(d.in), "path %q", d.in)
	}
}

func TestFromFS(t *testing.T) {
	fsys := FromFS(fstest.MapFS{
		"out/app.js":       {Data: []byte("console.log(1)")},
		"out/sub/index.js": {Data: []byte("export {}")},
	})

	fi, err := fsys.Stat("/out/app.js")
	require.NoError(t, err)
	assert.Equal(t, "app.js", fi.Name())
	assert.True(t, fi.Mode().IsRegular())

	fi, err = fsys.Stat("/out/sub")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	fi, err = fsys.Stat("/")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	_, err = fsys.Stat("/out/missing.js")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
