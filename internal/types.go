// Package internal holds helpers shared by the devfs packages.
package internal

import (
	"io/fs"
	"time"
)

// FileInfo creates a static fs.FileInfo with the given properties. The result
// also has a ContentType method, which devfs.ContentType prefers over guessing
// from the name.
func FileInfo(name string, size int64, mode fs.FileMode, modTime time.Time, contentType string) fs.FileInfo {
	return &staticFileInfo{
		name:        name,
		size:        size,
		mode:        mode,
		modTime:     modTime,
		contentType: contentType,
	}
}

// DirInfo creates a fs.FileInfo for a directory with the given name.
func DirInfo(name string, modTime time.Time) fs.FileInfo {
	return FileInfo(name, 0, fs.ModeDir|0o755, modTime, "")
}

type staticFileInfo struct {
	modTime     time.Time
	name        string
	contentType string
	size        int64
	mode        fs.FileMode
}

var _ fs.FileInfo = (*staticFileInfo)(nil)

func (fi *staticFileInfo) ContentType() string { return fi.contentType }
func (fi *staticFileInfo) IsDir() bool         { return fi.mode.IsDir() }
func (fi *staticFileInfo) Mode() fs.FileMode   { return fi.mode }
func (fi *staticFileInfo) ModTime() time.Time  { return fi.modTime }
func (fi *staticFileInfo) Name() string        { return fi.name }
func (fi *staticFileInfo) Size() int64         { return fi.size }
func (fi *staticFileInfo) Sys() any            { return nil }
