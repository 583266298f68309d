package devfs

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
)

// Resolver maps request URLs to files on an output filesystem. It is safe for
// concurrent use, provided the StatFS and PathRegistry are.
type Resolver struct {
	fsys      StatFS
	paths     PathRegistry
	cache     URLCache
	log       logrus.FieldLogger
	index     string
	exclusive bool
}

// Resolution describes a successfully resolved request.
type Resolution struct {
	// Info describes the resolved file.
	Info fs.FileInfo

	// Filename is the output path of the resolved file.
	Filename string

	// Mount is the mount point the request was resolved against.
	Mount MountPoint
}

// ContentType guesses the MIME type of the resolved file. See ContentType.
func (r *Resolution) ContentType() string {
	return ContentType(r.Info)
}

// New returns a Resolver for the mount points supplied by paths, backed by
// fsys.
func New(fsys StatFS, paths PathRegistry, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:  fsys,
		paths: paths,
		cache: DefaultURLCache,
		log:   logrus.StandardLogger(),
		index: DefaultIndex,
	}

	for _, opt := range opts {
		opt.apply(r)
	}

	return r
}

// Resolve returns the output filename for the given request URL, and whether
// one was found.
func (r *Resolver) Resolve(requestURL string) (string, bool) {
	res, ok := r.Lookup(requestURL)
	if !ok {
		return "", false
	}

	return res.Filename, true
}

// Lookup is like Resolve, but also returns the matching mount point and the
// resolved file's FileInfo.
//
// Mount points are tried in order, and the first that yields a regular file
// wins. Any failure along the way (a malformed URL, a missing file, a
// directory without an index) just moves on to the next mount point.
func (r *Resolver) Lookup(requestURL string) (*Resolution, bool) {
	log := r.log.WithField("url", requestURL)

	u, err := r.cache.Parse(requestURL)
	if err != nil {
		log.WithError(err).Debug("unresolved")

		return nil, false
	}

	for _, mp := range r.paths.Paths() {
		res, err := r.resolveMount(u, mp)
		if err == nil {
			return res, true
		}

		log.WithFields(logrus.Fields{
			"mount":  mp.PublicPath,
			"reason": err.Error(),
		}).Debug("skipping mount point")

		if r.exclusive && !errors.Is(err, ErrNoMatch) {
			break
		}
	}

	return nil, false
}

// resolveMount attempts to resolve u against a single mount point
func (r *Resolver) resolveMount(u ParsedURL, mp MountPoint) (*Resolution, error) {
	pub, err := r.cache.Parse(mp.NormalizedPublicPath())
	if err != nil {
		// a bad public path can never match anything
		return nil, fmt.Errorf("%w: public path %q: %w", ErrNoMatch, mp.PublicPath, err)
	}

	prefix := pub.Pathname
	if prefix == "" {
		// e.g. "http://localhost:8080"
		prefix = "/"
	}

	// note: a plain string prefix, so "/pub" also matches "/public/..."
	if u.Pathname == "" || !strings.HasPrefix(u.Pathname, prefix) {
		return nil, ErrNoMatch
	}

	filename := mp.OutputPath

	if rest := u.Pathname[len(prefix):]; rest != "" {
		decoded, err := url.PathUnescape(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadURL, err)
		}

		filename = path.Join(mp.OutputPath, decoded)
	}

	fi, err := r.stat(filename)
	if err != nil {
		return nil, err
	}

	switch {
	case fi.Mode().IsRegular():
		return &Resolution{Filename: filename, Mount: mp, Info: fi}, nil
	case fi.IsDir() && r.index != "":
		indexName := path.Join(filename, r.index)

		fi, err = r.stat(indexName)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			return &Resolution{Filename: indexName, Mount: mp, Info: fi}, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrNotFile, indexName)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotFile, filename)
	}
}

func (r *Resolver) stat(name string) (fs.FileInfo, error) {
	fi, err := r.fsys.Stat(name)
	if err != nil {
		return nil, err
	}

	if fi == nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}

	return fi, nil
}
