package internal

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileInfo(t *testing.T) {
	mtime := time.Date(2021, 8, 21, 11, 10, 0, 0, time.UTC)

	fi := FileInfo("app.js", 42, 0o644, mtime, "text/javascript")
	assert.Equal(t, "app.js", fi.Name())
	assert.Equal(t, int64(42), fi.Size())
	assert.Equal(t, fs.FileMode(0o644), fi.Mode())
	assert.True(t, fi.Mode().IsRegular())
	assert.False(t, fi.IsDir())
	assert.Equal(t, mtime, fi.ModTime())
	assert.Nil(t, fi.Sys())

	ct, ok := fi.(interface{ ContentType() string })
	assert.True(t, ok)
	assert.Equal(t, "text/javascript", ct.ContentType())

	fi = DirInfo("dist", mtime)
	assert.True(t, fi.IsDir())
	assert.Equal(t, "dist", fi.Name())
	assert.Equal(t, fs.ModeDir|0o755, fi.Mode())
}

func TestValidOutputPath(t *testing.T) {
	assert.True(t, ValidOutputPath("/dist/app.js"))
	assert.True(t, ValidOutputPath("dist"))
	assert.True(t, ValidOutputPath(""))
	assert.False(t, ValidOutputPath(`dist\app.js`))
	assert.False(t, ValidOutputPath("dist/\x00"))
}
