// Package env reads settings from the environment, with support for the
// `_FILE` convention used for secrets mounted into containers.
package env

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// LookupFS retrieves the value of the environment variable named by the key.
// If the variable is unset or empty, but the same variable ending in `_FILE`
// is set, the referenced file (resolved from the given filesystem) is read
// instead, with surrounding whitespace trimmed.
//
// The boolean reports whether a value was found. An error is returned only
// when a `_FILE` variable names a file that can't be read.
func LookupFS(fsys fs.FS, key string) (string, bool, error) {
	if val := os.Getenv(key); val != "" {
		return val, true, nil
	}

	p := os.Getenv(key + "_FILE")
	if p == "" {
		return "", false, nil
	}

	b, err := fs.ReadFile(fsys, strings.TrimPrefix(p, "/"))
	if err != nil {
		return "", false, fmt.Errorf("reading %s_FILE: %w", key, err)
	}

	return strings.TrimSpace(string(b)), true, nil
}

// GetenvFS is like LookupFS, but returns the provided default (or an empty
// string) when no value is found or the file can't be read.
func GetenvFS(fsys fs.FS, key string, def ...string) string {
	val, ok, err := LookupFS(fsys, key)
	if (!ok || err != nil || val == "") && len(def) > 0 {
		return def[0]
	}

	return val
}
