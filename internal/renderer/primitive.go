package renderer

import "github.com/go-gl/gl/v3.2-compatibility/gl"

// primitive is an uploaded meshData. Buffers for absent attributes stay 0.
type primitive struct {
	verts   uint32
	colors  uint32
	uvs     uint32
	indices uint32
	count   int32
}

func arrayBuffer(data []float32) uint32 {
	if len(data) == 0 {
		return 0
	}
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return buffer
}

func uploadPrimitive(m meshData) primitive {
	p := primitive{
		verts:  arrayBuffer(m.Verts),
		colors: arrayBuffer(m.Colors),
		uvs:    arrayBuffer(m.UVs),
		count:  int32(len(m.Indices)),
	}
	gl.GenBuffers(1, &p.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	return p
}

// object returns the vertex and index buffers of p as a piece mesh.
func (p primitive) object() Object {
	return Object{Verts: p.verts, Indices: p.indices, Count: p.count}
}

func (p *primitive) delete() {
	for _, buffer := range []*uint32{&p.verts, &p.colors, &p.uvs, &p.indices} {
		if *buffer != 0 {
			gl.DeleteBuffers(1, buffer)
			*buffer = 0
		}
	}
}

// Object is a drawable mesh made of a position buffer and an index buffer.
type Object struct {
	Verts   uint32
	Indices uint32
	Count   int32
}

// bindAttrib points an enabled attribute at buffer. Unresolved attributes
// (location -1) are skipped.
func bindAttrib(location int32, buffer uint32, size int32) {
	if location < 0 || buffer == 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(location))
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointer(uint32(location), size, gl.FLOAT, false, 0, nil)
}

func unbindAttrib(location int32) {
	if location < 0 {
		return
	}
	gl.DisableVertexAttribArray(uint32(location))
}

func drawElements(indices uint32, count int32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil)
}
