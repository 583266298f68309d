// Package tracefs instruments an output filesystem for distributed tracing.
// The OpenTelemetry API is supported.
//
// This is not a filesystem implementation, but rather a wrapper around an
// existing [devfs.StatFS]. Every Stat call made while resolving a request
// (including index document probes) becomes a span.
//
// # Usage
//
// Call [New] with a base filesystem and pass the result to [devfs.New].
//
// In order to report traces, an OTel [trace.TracerProvider] must first be set
// up. The details of this are outside the scope of this module, but see the
// devfs command in this repository's cmd directory for one approach.
//
// A [trace.TracerProvider] can optionally be passed to [New] using
// [WithTracerProvider].
package tracefs

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hairyhenderson/go-devfs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceFS is a traced devfs.StatFS.
type TraceFS struct {
	ctx    context.Context
	fsys   devfs.StatFS
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

const tracerName = "github.com/hairyhenderson/go-devfs/tracefs"

// New returns a filesystem that instruments the given filesystem, adding a
// trace span for each Stat. The given context is used as the parent of each
// span; see WithContext to change it. Options can be provided to configure
// the behaviour of the instrumented filesystem.
func New(ctx context.Context, fsys devfs.StatFS, opts ...Option) *TraceFS {
	cfg := config{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.tp == nil {
		cfg.tp = otel.GetTracerProvider()
	}

	return &TraceFS{
		ctx:    ctx,
		fsys:   fsys,
		tracer: cfg.tp.Tracer(tracerName),
		attrs:  cfg.attrs,
	}
}

type urlFS interface {
	URL() string
}

var _ devfs.StatFS = (*TraceFS)(nil)

// WithContext returns a copy of the filesystem whose spans are children of
// the span in ctx (typically the span for an incoming request).
func (f *TraceFS) WithContext(ctx context.Context) *TraceFS {
	fsys := *f
	fsys.ctx = ctx

	return &fsys
}

func fsattribs(fsys devfs.StatFS, name string, extra []attribute.KeyValue) trace.SpanStartEventOption {
	attrs := make([]attribute.KeyValue, 0, len(extra)+3)
	attrs = append(attrs, Path(name), Type(fmt.Sprintf("%T", fsys)))

	if ufs, ok := fsys.(urlFS); ok {
		attrs = append(attrs, BaseURL(ufs.URL()))
	}

	attrs = append(attrs, extra...)

	return trace.WithAttributes(attrs...)
}

// Stat - implements devfs.StatFS
func (f *TraceFS) Stat(name string) (fs.FileInfo, error) {
	_, span := f.tracer.Start(f.ctx, "fs.Stat", fsattribs(f.fsys, name, f.attrs))
	defer span.End()

	fi, err := f.fsys.Stat(name)
	if err == nil && fi != nil {
		span.SetAttributes(
			FileSize(fi.Size()),
			FilePerms(fi.Mode().String()),
			FileModTime(fi.ModTime()),
			FileIsDir(fi.IsDir()),
		)
	}

	return fi, recordError(span, err)
}

// recordError records the given error on the span, and returns it. It does not
// set the span's status to error, since missing files are routine while
// resolving.
func recordError(span trace.Span, err error) error {
	span.RecordError(err)

	return err
}
