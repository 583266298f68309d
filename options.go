package devfs

import "github.com/sirupsen/logrus"

// DefaultIndex is the index document served for directories unless
// configured otherwise.
const DefaultIndex = "index.html"

// Option configures a Resolver.
type Option interface {
	apply(*Resolver)
}

type optionFunc func(*Resolver)

func (o optionFunc) apply(r *Resolver) {
	o(r)
}

// WithIndex sets the index document name used when a request resolves to a
// directory. An empty name disables index fallback, same as WithoutIndex.
func WithIndex(name string) Option {
	return optionFunc(func(r *Resolver) {
		r.index = name
	})
}

// WithoutIndex disables index fallback: requests resolving to a directory
// are unresolved.
func WithoutIndex() Option {
	return WithIndex("")
}

// WithURLCache sets the cache used to memoize URL parsing. If none is given,
// DefaultURLCache is used.
func WithURLCache(cache URLCache) Option {
	return optionFunc(func(r *Resolver) {
		if cache != nil {
			r.cache = cache
		}
	})
}

// WithLogger sets the logger used to report skipped mount points (at debug
// level). Defaults to the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return optionFunc(func(r *Resolver) {
		if logger != nil {
			r.log = logger
		}
	})
}

// WithExclusivePrefix makes the first mount point whose public path matches
// the request authoritative: if its file is missing, the request is
// unresolved rather than falling through to later mount points.
func WithExclusivePrefix() Option {
	return optionFunc(func(r *Resolver) {
		r.exclusive = true
	})
}
