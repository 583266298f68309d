// Package devfs maps request URLs served by a development middleware onto
// files in the output filesystem of a build.
//
// A [Resolver] is configured with an ordered set of [MountPoint]s, each
// pairing a public URL prefix with an output directory. Resolving a URL strips
// the first matching prefix, decodes the remainder, and probes the output
// filesystem (any [StatFS]) for a regular file, falling back to an index
// document when the remainder names a directory.
//
// Resolution never fails loudly: malformed URLs, missing files, and unexpected
// file types all degrade to "unresolved", and the caller sees only whether a
// filename was found.
//
// Output filesystems can be provisioned with the outputfs package, and the
// ready package provides a gate for deferring work until a build completes.
package devfs
