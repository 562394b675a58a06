package renderer

import "github.com/go-gl/gl/v3.2-compatibility/gl"

// createTexture allocates a 2D texture with nearest filtering and edge
// clamping. A render target is an empty RGB byte texture. Without data the
// storage is float (RGBA32F or RGB32F); with data it is RGBA or RGB bytes.
func createTexture(width, height int, alpha bool, data []byte, renderTarget bool) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	w, h := int32(width), int32(height)
	internal, format := int32(gl.RGB), uint32(gl.RGB)
	if alpha {
		internal, format = gl.RGBA, gl.RGBA
	}

	switch {
	case renderTarget:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, w, h, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	case len(data) == 0:
		internal = gl.RGB32F
		if alpha {
			internal = gl.RGBA32F
		}
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, w, h, 0, format, gl.FLOAT, nil)
	default:
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, w, h, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(data))
	}
	return texture
}
