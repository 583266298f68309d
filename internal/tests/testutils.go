// Package tests contains helpers for this module's tests.
package tests

import "net/url"

// MustURL parses s, panicking on failure. For URL literals in tests only.
func MustURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}
