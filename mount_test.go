package devfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedPublicPath(t *testing.T) {
	testdata := []struct {
		in, expected string
	}{
		{"", "/"},
		{"auto", "/"},
		{"/", "/"},
		{"/pub", "/pub"},
		{"/pub/", "/pub/"},
		{"autos/", "autos/"},
		{"http://localhost:8080/assets/", "http://localhost:8080/assets/"},
	}

	for _, d := range testdata {
		mp := MountPoint{PublicPath: d.in, OutputPath: "/out"}
		assert.Equal(t, d.expected, mp.NormalizedPublicPath(), "public path %q", d.in)
	}
}

func TestPathRegistries(t *testing.T) {
	mounts := []MountPoint{{"/a", "/x"}, {"/", "/y"}}

	assert.Equal(t, mounts, Paths(mounts).Paths())

	calls := 0
	reg := PathRegistryFunc(func() []MountPoint {
		calls++

		return mounts
	})

	assert.Equal(t, mounts, reg.Paths())
	assert.Equal(t, mounts, reg.Paths())
	assert.Equal(t, 2, calls)
}
