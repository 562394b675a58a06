package renderer

// meshData is the CPU side of a primitive. Colors and UVs may be empty.
type meshData struct {
	Verts   []float32
	Colors  []float32
	UVs     []float32
	Indices []uint16
}

func (m meshData) vertexCount() int {
	return len(m.Verts) / 3
}

var (
	grassColor = [3]float32{0.06, 0.52, 0.15}
	soilColor  = [3]float32{0.06, 0.12, 0.15}
	quadUV     = []float32{
		0, 1,
		1, 1,
		0, 0,
		1, 0,
	}
)

func repeatColor(c [3]float32, n int) []float32 {
	out := make([]float32, 0, 3*n)
	for i := 0; i < n; i++ {
		out = append(out, c[0], c[1], c[2])
	}
	return out
}

func repeatUV(n int) []float32 {
	out := make([]float32, 0, len(quadUV)*n)
	for i := 0; i < n; i++ {
		out = append(out, quadUV...)
	}
	return out
}

// planeMesh is the z = 1 face of the unit cube.
func planeMesh() meshData {
	return meshData{
		Verts: []float32{
			-1, -1, 1,
			1, -1, 1,
			-1, 1, 1,
			1, 1, 1,
		},
		Colors:  repeatColor(grassColor, 4),
		UVs:     repeatUV(1),
		Indices: []uint16{0, 1, 2, 1, 3, 2},
	}
}

// cubeMesh spans [-1, 1] on every axis with four vertices per face so each
// face carries its own UVs.
func cubeMesh() meshData {
	colors := repeatColor(grassColor, 4)
	colors = append(colors, repeatColor(soilColor, 4)...)
	colors = append(colors, repeatColor(grassColor, 16)...)
	return meshData{
		Verts: []float32{
			// top
			-1, -1, 1,
			1, -1, 1,
			-1, 1, 1,
			1, 1, 1,
			// bottom
			-1, -1, -1,
			1, -1, -1,
			-1, 1, -1,
			1, 1, -1,
			// +y
			-1, 1, 1,
			1, 1, 1,
			-1, 1, -1,
			1, 1, -1,
			// -y
			-1, -1, 1,
			1, -1, 1,
			-1, -1, -1,
			1, -1, -1,
			// -x
			-1, -1, 1,
			-1, 1, 1,
			-1, -1, -1,
			-1, 1, -1,
			// +x
			1, -1, 1,
			1, 1, 1,
			1, -1, -1,
			1, 1, -1,
		},
		Colors: colors,
		UVs:    repeatUV(6),
		Indices: []uint16{
			0, 1, 2, 1, 3, 2,
			6, 7, 5, 6, 5, 4,
			8, 9, 10, 9, 10, 11,
			12, 13, 14, 13, 14, 15,
			17, 16, 18, 17, 18, 19,
			20, 21, 22, 21, 22, 23,
		},
	}
}

// pyramidMesh is a truncated pyramid with a 2x2 top at z = 1 narrowing to a
// 0.2x0.2 tip at z = -1.
func pyramidMesh() meshData {
	colors := repeatColor([3]float32{0.1, 0.85, 0.815}, 4)
	colors = append(colors, repeatColor([3]float32{0.6, 0.99, 0.95}, 4)...)
	return meshData{
		Verts: []float32{
			-1, -1, 1,
			1, -1, 1,
			1, 1, 1,
			-1, 1, 1,
			-0.1, -0.1, -1,
			0.1, -0.1, -1,
			0.1, 0.1, -1,
			-0.1, 0.1, -1,
		},
		Colors: colors,
		Indices: []uint16{
			0, 1, 2, 2, 3, 0,
			1, 5, 6, 6, 2, 1,
			7, 6, 5, 5, 4, 7,
			4, 0, 3, 3, 7, 4,
			4, 5, 1, 1, 0, 4,
			3, 2, 6, 6, 7, 3,
		},
	}
}
