// Package picking maps object identities to the flat colors drawn into the
// offscreen picking buffer and back.
package picking

import "fmt"

type Kind uint8

const (
	None Kind = iota
	Tile
	Piece
)

func (k Kind) String() string {
	switch k {
	case Tile:
		return "tile"
	case Piece:
		return "piece"
	}
	return "none"
}

// MaxIndex is the largest index either kind can carry. Code 0 is reserved for
// the black clear color, so the usable code space is 1..0xFFFF.
const MaxIndex = 0xFFFE

type Target struct {
	Kind  Kind
	Index int
}

func (t Target) String() string {
	if t.Kind == None {
		return "none"
	}
	return fmt.Sprintf("%s#%d", t.Kind, t.Index)
}

// Encode returns the RGB bytes for t. Tiles carry index+1 in R (low byte) and
// G (high byte) with B = 0; pieces use the same R/G layout with B = 1.
// Out-of-range targets encode as black.
func Encode(t Target) [3]uint8 {
	if t.Kind == None || t.Index < 0 || t.Index > MaxIndex {
		return [3]uint8{}
	}
	code := t.Index + 1
	rgb := [3]uint8{uint8(code & 0xFF), uint8(code >> 8), 0}
	if t.Kind == Piece {
		rgb[2] = 1
	}
	return rgb
}

// Color returns Encode(t) normalized for a float color uniform. The values are
// exact multiples of 1/255 so an 8-bit target stores them without rounding.
func Color(t Target) [3]float32 {
	rgb := Encode(t)
	return [3]float32{
		float32(rgb[0]) / 255,
		float32(rgb[1]) / 255,
		float32(rgb[2]) / 255,
	}
}

func Decode(rgb [3]uint8) Target {
	code := int(rgb[0]) | int(rgb[1])<<8
	if code == 0 {
		return Target{}
	}
	switch rgb[2] {
	case 0:
		return Target{Kind: Tile, Index: code - 1}
	case 1:
		return Target{Kind: Piece, Index: code - 1}
	}
	return Target{}
}
