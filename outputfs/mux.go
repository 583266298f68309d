package outputfs

import (
	"context"
	"fmt"
	"net/url"
	"sort"
)

// Mux allows you to dynamically look up an output filesystem for a given URL.
// Providers are registered by URL scheme.
// Mux is itself a Provider, which provides the superset of all registered
// filesystems.
type Mux map[string]func(context.Context, *url.URL) (Filesystem, error)

var _ Provider = (Mux)(nil)

// NewMux returns a Mux ready for use.
func NewMux() Mux {
	return Mux(map[string]func(context.Context, *url.URL) (Filesystem, error){})
}

// Add registers the given filesystem provider for its supported URL schemes. If
// any of its schemes are already registered, they will be overridden.
func (m Mux) Add(p Provider) {
	for _, scheme := range p.Schemes() {
		m[scheme] = p.New
	}
}

// Lookup returns an appropriate output filesystem for the given URL. Use Add
// to register providers.
func (m Mux) Lookup(ctx context.Context, u string) (Filesystem, error) {
	base, err := url.Parse(u)
	if err != nil {
		return nil, err
	}

	return m.New(ctx, base)
}

// Schemes - implements Provider
func (m Mux) Schemes() []string {
	schemes := make([]string, 0, len(m))
	for scheme := range m {
		schemes = append(schemes, scheme)
	}

	sort.Strings(schemes)

	return schemes
}

// New - implements Provider
func (m Mux) New(ctx context.Context, u *url.URL) (Filesystem, error) {
	f, ok := m[u.Scheme]
	if !ok {
		return nil, fmt.Errorf("no output filesystem registered for scheme %q", u.Scheme)
	}

	return f(ctx, u)
}

// Provider provides an output filesystem for a set of defined schemes
type Provider interface {
	// Schemes returns the valid URL schemes for this filesystem
	Schemes() []string

	// New returns a filesystem from the given URL
	New(ctx context.Context, u *url.URL) (Filesystem, error)
}

// ProviderFunc -
func ProviderFunc(f func(context.Context, *url.URL) (Filesystem, error), schemes ...string) Provider {
	return provider{f, schemes}
}

type provider struct {
	newFunc func(context.Context, *url.URL) (Filesystem, error)
	schemes []string
}

func (p provider) Schemes() []string {
	return p.schemes
}

func (p provider) New(ctx context.Context, u *url.URL) (Filesystem, error) {
	return p.newFunc(ctx, u)
}
