package internal

import "strings"

// ValidOutputPath reports whether name can be used as an output path on a
// bucket-backed filesystem. Output paths are slash-separated, so backslashes
// and NUL bytes are rejected.
func ValidOutputPath(name string) bool {
	return !strings.ContainsAny(name, "\\\x00")
}
