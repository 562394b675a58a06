package renderer

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"github.com/kjkrol/gochess/internal/assets"
)

// shaderLoader compiles and links programs from shader files in fsys.
type shaderLoader struct {
	fsys   fs.FS
	es     bool
	logger *slog.Logger
}

func (l *shaderLoader) compileShader(name string, shaderType uint32) (uint32, error) {
	body, err := assets.ReadFile(l.fsys, name)
	if err != nil {
		l.logger.Error("read shader", "file", name, "err", err)
		return 0, err
	}
	source := buildShaderSource(string(body), l.es)

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		info := l.printLog(shader)
		l.logger.Error("compile shader", "file", name, "log", info)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s: %w: %s", name, ErrShaderCompile, info)
	}
	return shader, nil
}

// createProgram builds the program from shaders/<name>.v.glsl and
// shaders/<name>.f.glsl.
func (l *shaderLoader) createProgram(name string) (uint32, error) {
	vertexFile, fragmentFile := shaderFiles(name)
	vs, err := l.compileShader(vertexFile, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fsh, err := l.compileShader(fragmentFile, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fsh)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fsh)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		info := l.printLog(program)
		l.logger.Error("link program", "program", name, "log", info)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s: %w: %s", name, ErrProgramLink, info)
	}
	return program, nil
}

// printLog returns the info log of a shader or program object.
func (l *shaderLoader) printLog(object uint32) string {
	var logLength int32
	switch {
	case gl.IsShader(object):
		gl.GetShaderiv(object, gl.INFO_LOG_LENGTH, &logLength)
	case gl.IsProgram(object):
		gl.GetProgramiv(object, gl.INFO_LOG_LENGTH, &logLength)
	default:
		l.logger.Error("printlog: not a shader or a program", "object", object)
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	if gl.IsShader(object) {
		gl.GetShaderInfoLog(object, logLength, nil, gl.Str(log))
	} else {
		gl.GetProgramInfoLog(object, logLength, nil, gl.Str(log))
	}
	return strings.TrimRight(log, "\x00\n")
}

// attrib returns the location of an attribute. A missing attribute is logged
// and reported as -1; callers skip it when drawing.
func (l *shaderLoader) attrib(program uint32, name string) int32 {
	location := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	if location == -1 {
		l.logger.Error("could not bind attribute", "name", name)
	}
	return location
}

func (l *shaderLoader) uniform(program uint32, name string) int32 {
	location := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if location == -1 {
		l.logger.Error("could not bind uniform", "name", name)
	}
	return location
}

func logGLInfo(logger *slog.Logger) {
	var profile int32
	gl.GetIntegerv(gl.CONTEXT_PROFILE_MASK, &profile)
	name := ""
	switch {
	case profile&gl.CONTEXT_CORE_PROFILE_BIT != 0:
		name = "CORE"
	case profile&gl.CONTEXT_COMPATIBILITY_PROFILE_BIT != 0:
		name = "COMPATIBILITY"
	}
	logger.Info("opengl",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"profile", name,
	)
}
