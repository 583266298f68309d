package devfs

import "errors"

// Reasons a mount point was skipped during resolution. They are only ever
// logged: callers of Resolve just see "unresolved".
var (
	// ErrNoMatch means the request path is not under the mount's public path.
	ErrNoMatch = errors.New("request path does not match public path")

	// ErrNotFile means the candidate exists but is not a regular file (or is a
	// directory without an index document).
	ErrNotFile = errors.New("not a regular file")

	// ErrBadURL means a request URL or public path could not be parsed or
	// decoded.
	ErrBadURL = errors.New("malformed URL")
)
