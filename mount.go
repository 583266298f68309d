package devfs

// autoPublicPath is the public path placeholder meaning "serve from the root".
const autoPublicPath = "auto"

// MountPoint pairs a public URL prefix with the output directory that backs it.
type MountPoint struct {
	// PublicPath is the URL path prefix served by this mount. The empty string
	// and "auto" both mean "/".
	PublicPath string `json:"publicPath" yaml:"publicPath" mapstructure:"public_path"`

	// OutputPath is the directory on the output filesystem.
	OutputPath string `json:"outputPath" yaml:"outputPath" mapstructure:"output_path"`
}

// NormalizedPublicPath returns the public path used for prefix matching.
func (m MountPoint) NormalizedPublicPath() string {
	if m.PublicPath == "" || m.PublicPath == autoPublicPath {
		return "/"
	}

	return m.PublicPath
}

// PathRegistry supplies the ordered mount points to resolve against. The
// registry is trusted to return already-validated mount points.
type PathRegistry interface {
	Paths() []MountPoint
}

// Paths is a static PathRegistry.
type Paths []MountPoint

var _ PathRegistry = (Paths)(nil)

// Paths - implements PathRegistry
func (p Paths) Paths() []MountPoint {
	return p
}

// PathRegistryFunc adapts a function to a PathRegistry. Useful when the mount
// points change between builds (e.g. when compilers are added).
type PathRegistryFunc func() []MountPoint

// Paths - implements PathRegistry
func (f PathRegistryFunc) Paths() []MountPoint {
	return f()
}
