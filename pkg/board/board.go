// Package board describes the chessboard grid: tile addressing, world-space
// placement and per-tile render state.
package board

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokg/pkg/geom"
)

var (
	LightTile = mgl32.Vec4{0.85, 0.82, 0.72, 1}
	DarkTile  = mgl32.Vec4{0.28, 0.2, 0.14, 1}
)

// RenderInfo is the per-tile draw state. Offset is added to the tile center
// and Offset.Z is the tile's absolute height.
type RenderInfo struct {
	Offset mgl32.Vec3
	Color  mgl32.Vec4
}

type Board struct {
	NumAcross  int
	NumDown    int
	TileWidth  float32
	TileDepth  float32
	RenderInfo []RenderInfo

	bounds geom.AABB[int]
}

// New builds a NumAcross x NumDown board centered on the origin. Tiles are
// unit cubes scaled by TileWidth, so neighbouring centers are 2*TileWidth apart.
func New(numAcross, numDown int, tileWidth, tileDepth float32) *Board {
	b := &Board{
		NumAcross:  numAcross,
		NumDown:    numDown,
		TileWidth:  tileWidth,
		TileDepth:  tileDepth,
		RenderInfo: make([]RenderInfo, numAcross*numDown),
		bounds:     geom.NewAABB(geom.NewVec(0, 0), geom.NewVec(numAcross, numDown)),
	}
	b.Reset()
	return b
}

// Reset restores the checker pattern and clears every offset.
func (b *Board) Reset() {
	for i := range b.RenderInfo {
		c := b.Coord(i)
		color := DarkTile
		if (c.X+c.Y)%2 == 1 {
			color = LightTile
		}
		b.RenderInfo[i] = RenderInfo{Color: color}
	}
}

func (b *Board) Len() int {
	return b.NumAcross * b.NumDown
}

func (b *Board) pitch() float32 {
	return 2 * b.TileWidth
}

// X returns the world-space x of column col's center.
func (b *Board) X(col int) float32 {
	return (float32(col) - float32(b.NumAcross-1)/2) * b.pitch()
}

// Y returns the world-space y of row row's center.
func (b *Board) Y(row int) float32 {
	return (float32(row) - float32(b.NumDown-1)/2) * b.pitch()
}

// Center returns the tile center of c on the board surface plane z = 0.
func (b *Board) Center(c geom.Vec[int]) mgl32.Vec3 {
	return mgl32.Vec3{b.X(c.X), b.Y(c.Y), 0}
}

func (b *Board) Contains(c geom.Vec[int]) bool {
	return c.X >= b.bounds.TopLeft.X && c.X < b.bounds.BottomRight.X &&
		c.Y >= b.bounds.TopLeft.Y && c.Y < b.bounds.BottomRight.Y
}

// Index returns the row-major tile index of c, or -1 when c is off the board.
// Rows advance along Y, matching the draw order of the board.
func (b *Board) Index(c geom.Vec[int]) int {
	if !b.Contains(c) {
		return -1
	}
	return c.Y*b.NumAcross + c.X
}

func (b *Board) Coord(index int) geom.Vec[int] {
	return geom.NewVec(index%b.NumAcross, index/b.NumAcross)
}

// Each visits tiles in row-major order.
func (b *Board) Each(fn func(index int, c geom.Vec[int], info RenderInfo)) {
	for i, info := range b.RenderInfo {
		fn(i, b.Coord(i), info)
	}
}
