package platform

import (
	"strconv"
	"strings"
)

// ParseGLVersion extracts major and minor numbers from a GL_VERSION string
// such as "4.6 (Compatibility Profile) Mesa 24.0" or "OpenGL ES 3.2 v1".
func ParseGLVersion(version string) (major, minor int, ok bool) {
	for _, field := range strings.Fields(version) {
		parts := strings.SplitN(field, ".", 3)
		if len(parts) < 2 {
			continue
		}
		maj, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		mnr, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		return maj, mnr, true
	}
	return 0, 0, false
}

// IsES reports whether the version string belongs to an OpenGL ES context.
func IsES(version string) bool {
	return strings.HasPrefix(version, "OpenGL ES")
}
