package renderer

import "github.com/go-gl/gl/v3.2-compatibility/gl"

// transform holds the uniforms every program shares.
type transform struct {
	program uint32
	model   int32
	view    int32
	proj    int32
	scale   int32
}

func (l *shaderLoader) transform(name string) (transform, error) {
	program, err := l.createProgram(name)
	if err != nil {
		return transform{}, err
	}
	return transform{
		program: program,
		scale:   l.uniform(program, "scale"),
		model:   l.uniform(program, "model"),
		view:    l.uniform(program, "view"),
		proj:    l.uniform(program, "proj"),
	}, nil
}

func (t *transform) delete() {
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

type basicShader struct {
	transform
	color   int32
	alpha   int32
	coord3d int32
}

func newBasicShader(l *shaderLoader) (basicShader, error) {
	t, err := l.transform("basic")
	if err != nil {
		return basicShader{}, err
	}
	return basicShader{
		transform: t,
		coord3d:   l.attrib(t.program, "coord3d"),
		color:     l.uniform(t.program, "in_color"),
		alpha:     l.uniform(t.program, "in_alpha"),
	}, nil
}

type textureShader struct {
	transform
	texSource  int32
	coord3d    int32
	texCoord2d int32
}

func newTextureShader(l *shaderLoader) (textureShader, error) {
	t, err := l.transform("basic_texture")
	if err != nil {
		return textureShader{}, err
	}
	return textureShader{
		transform:  t,
		coord3d:    l.attrib(t.program, "coord3d"),
		texCoord2d: l.attrib(t.program, "tex_coord2d"),
		texSource:  l.uniform(t.program, "tex_source"),
	}, nil
}

type colorVertsShader struct {
	transform
	coord3d int32
	vColor  int32
}

func newColorVertsShader(l *shaderLoader) (colorVertsShader, error) {
	t, err := l.transform("color_verts")
	if err != nil {
		return colorVertsShader{}, err
	}
	return colorVertsShader{
		transform: t,
		coord3d:   l.attrib(t.program, "coord3d"),
		vColor:    l.attrib(t.program, "v_color"),
	}, nil
}

type offscreenShader struct {
	transform
	color   int32
	coord3d int32
}

func newOffscreenShader(l *shaderLoader) (offscreenShader, error) {
	t, err := l.transform("offscreen")
	if err != nil {
		return offscreenShader{}, err
	}
	return offscreenShader{
		transform: t,
		coord3d:   l.attrib(t.program, "coord3d"),
		color:     l.uniform(t.program, "in_color"),
	}, nil
}
