package renderer

import "strings"

const (
	desktopVersion = "#version 120\n"
	esVersion      = "#version 100\n"
)

// precisionPreamble selects a float precision on GLES and turns precision
// qualifiers into no-ops on desktop GL.
const precisionPreamble = "" +
	"#ifdef GL_ES\n" +
	"#  ifdef GL_FRAGMENT_PRECISION_HIGH\n" +
	"     precision highp float;\n" +
	"#  else\n" +
	"     precision mediump float;\n" +
	"#  endif\n" +
	"#else\n" +
	"#  define lowp\n" +
	"#  define mediump\n" +
	"#  define highp\n" +
	"#endif\n"

// buildShaderSource prefixes a shader body with the version line and the
// precision preamble.
func buildShaderSource(body string, es bool) string {
	var sb strings.Builder
	if es {
		sb.WriteString(esVersion)
	} else {
		sb.WriteString(desktopVersion)
	}
	sb.WriteString(precisionPreamble)
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

// shaderFiles returns the vertex and fragment file names of program name.
func shaderFiles(name string) (vertex, fragment string) {
	return "shaders/" + name + ".v.glsl", "shaders/" + name + ".f.glsl"
}
