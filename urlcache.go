package devfs

import (
	"fmt"
	"net/url"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// ParsedURL holds the parts of a request URL the resolver cares about. Values
// are derived from the raw string alone, so two parses of the same string are
// always equal.
type ParsedURL struct {
	// Pathname is the path component, still percent-escaped. It never
	// includes the query or fragment.
	Pathname string
	RawQuery string
	Fragment string
}

// ParseURL parses a request URL (normally just a path, query, and fragment,
// as found in an HTTP request line).
func ParseURL(raw string) (ParsedURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("%w: %w", ErrBadURL, err)
	}

	return ParsedURL{
		Pathname: u.EscapedPath(),
		RawQuery: u.RawQuery,
		Fragment: u.EscapedFragment(),
	}, nil
}

// URLCache memoizes ParseURL. Failed parses are never cached.
type URLCache interface {
	Parse(raw string) (ParsedURL, error)
}

// DefaultURLCache is shared by all resolvers that aren't given their own
// cache. It is never evicted.
//
//nolint:gochecknoglobals
var DefaultURLCache URLCache = NewURLCache()

// MemoURLCache is an unbounded URLCache. Entries are never evicted, so it
// grows with the number of distinct URLs seen - fine for a development
// server, where that number is small. Use an LRUURLCache for long-running
// processes that see unbounded URL sets.
//
// Concurrent parses of the same string may both compute and store a result;
// since results are pure functions of the key, the last write wins harmlessly.
type MemoURLCache struct {
	entries sync.Map
}

var _ URLCache = (*MemoURLCache)(nil)

// NewURLCache returns an empty, unbounded URL cache.
func NewURLCache() *MemoURLCache {
	return &MemoURLCache{}
}

func (c *MemoURLCache) Parse(raw string) (ParsedURL, error) {
	if v, ok := c.entries.Load(raw); ok {
		return v.(ParsedURL), nil
	}

	p, err := ParseURL(raw)
	if err != nil {
		return p, err
	}

	c.entries.Store(raw, p)

	return p, nil
}

// Len returns the number of cached entries.
func (c *MemoURLCache) Len() int {
	n := 0

	c.entries.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// LRUURLCache is a URLCache bounded to a fixed number of entries, evicting the
// least recently used.
type LRUURLCache struct {
	cache *lru.Cache
}

var _ URLCache = (*LRUURLCache)(nil)

// NewLRUURLCache returns a URL cache holding at most size entries.
func NewLRUURLCache(size int) (*LRUURLCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("new lru cache: %w", err)
	}

	return &LRUURLCache{cache: c}, nil
}

func (c *LRUURLCache) Parse(raw string) (ParsedURL, error) {
	if v, ok := c.cache.Get(raw); ok {
		return v.(ParsedURL), nil
	}

	p, err := ParseURL(raw)
	if err != nil {
		return p, err
	}

	c.cache.Add(raw, p)

	return p, nil
}

// Len returns the number of cached entries.
func (c *LRUURLCache) Len() int {
	return c.cache.Len()
}
