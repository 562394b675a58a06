package picking

import "testing"

func TestEncodeDecode(t *testing.T) {
	targets := []Target{
		{Kind: Tile, Index: 0},
		{Kind: Tile, Index: 63},
		{Kind: Tile, Index: 254},
		{Kind: Tile, Index: 255},
		{Kind: Tile, Index: MaxIndex},
		{Kind: Piece, Index: 0},
		{Kind: Piece, Index: 31},
		{Kind: Piece, Index: 1000},
	}
	seen := map[[3]uint8]Target{}
	for _, target := range targets {
		rgb := Encode(target)
		if rgb == ([3]uint8{}) {
			t.Fatalf("%v encoded as the clear color", target)
		}
		if prev, ok := seen[rgb]; ok {
			t.Fatalf("%v and %v share color %v", prev, target, rgb)
		}
		seen[rgb] = target
		if got := Decode(rgb); got != target {
			t.Errorf("Decode(Encode(%v)) = %v", target, got)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	if got := Encode(Target{Kind: Tile, Index: 0x1233}); got != [3]uint8{0x34, 0x12, 0} {
		t.Errorf("tile layout %v", got)
	}
	if got := Encode(Target{Kind: Piece, Index: 4}); got != [3]uint8{5, 0, 1} {
		t.Errorf("piece layout %v", got)
	}
}

func TestOutOfRangeIsNone(t *testing.T) {
	for _, target := range []Target{
		{},
		{Kind: Tile, Index: -1},
		{Kind: Piece, Index: MaxIndex + 1},
	} {
		if got := Encode(target); got != ([3]uint8{}) {
			t.Errorf("Encode(%v) = %v, want black", target, got)
		}
	}
	if got := Decode([3]uint8{}); got.Kind != None {
		t.Errorf("black decoded as %v", got)
	}
	if got := Decode([3]uint8{1, 0, 200}); got.Kind != None {
		t.Errorf("unknown blue channel decoded as %v", got)
	}
}

func TestColorMatchesBytes(t *testing.T) {
	c := Color(Target{Kind: Piece, Index: 9})
	rgb := Encode(Target{Kind: Piece, Index: 9})
	for i := range c {
		if got := uint8(c[i]*255 + 0.5); got != rgb[i] {
			t.Errorf("channel %d: %v -> %d, want %d", i, c[i], got, rgb[i])
		}
	}
}
