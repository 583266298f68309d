package tracefs

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	typeKey    = attribute.Key("fs.type")
	pathKey    = attribute.Key("fs.path")
	baseURLKey = attribute.Key("fs.base_url")

	sizeKey    = attribute.Key("file.size")
	permsKey   = attribute.Key("file.perms")
	modTimeKey = attribute.Key("file.modtime")
	isDirKey   = attribute.Key("file.isdir")
)

// The type of filesystem being operated on.
//
// Type: string
// Required: No
// Examples: "*memfs.Memory", "*outputfs.BucketFS"
func Type(name string) attribute.KeyValue {
	return typeKey.String(name)
}

// The output path being operated on.
//
// Type: string
// Required: Yes
// Examples: "/dist/main.js", "/dist/sub/index.html"
func Path(name string) attribute.KeyValue {
	return pathKey.String(name)
}

// The base URL of the file system.
//
// Type: string
// Required: No
// Examples: "s3://my-bucket?region=us-east-1", "blob+mem:///"
func BaseURL(url string) attribute.KeyValue {
	return baseURLKey.String(url)
}

// The size of a file.
//
// Type: int64
// Required: No
// Examples: 1024, 0
func FileSize(n int64) attribute.KeyValue {
	return sizeKey.Int64(n)
}

// The permissions of a file.
//
// Type: string
// Required: No
// Examples: "-rw-r--r--", "drwxr-xr-x"
func FilePerms(perms string) attribute.KeyValue {
	return permsKey.String(perms)
}

// The modification time of a file.
//
// Type: time.Time
// Required: No
// Examples: "2021-08-21T11:10:00Z", "2021-08-21T11:10:00-07:00"
func FileModTime(t time.Time) attribute.KeyValue {
	return modTimeKey.String(t.Format(time.RFC3339))
}

// Whether the file is a directory.
//
// Type: bool
// Required: No
// Examples: true, false
func FileIsDir(dir bool) attribute.KeyValue {
	return isDirKey.Bool(dir)
}
