package board

import (
	"testing"

	"github.com/kjkrol/gokg/pkg/geom"
)

func newStandard() *Board {
	return New(8, 8, 0.5, 0.1)
}

func TestLayoutIsCentered(t *testing.T) {
	b := newStandard()
	if got := b.X(0); got != -3.5 {
		t.Errorf("X(0) = %v, want -3.5", got)
	}
	if got := b.X(7); got != 3.5 {
		t.Errorf("X(7) = %v, want 3.5", got)
	}
	if got := b.Y(0) + b.Y(7); got != 0 {
		t.Errorf("rows not symmetric: %v", got)
	}
	if got := b.X(1) - b.X(0); got != 1 {
		t.Errorf("pitch = %v, want 1", got)
	}
}

func TestIndexCoordRoundTrip(t *testing.T) {
	b := New(5, 3, 0.5, 0.1)
	for i := 0; i < b.Len(); i++ {
		c := b.Coord(i)
		if !b.Contains(c) {
			t.Fatalf("Coord(%d) = %v off board", i, c)
		}
		if got := b.Index(c); got != i {
			t.Errorf("Index(Coord(%d)) = %d", i, got)
		}
	}
	if got := b.Index(geom.NewVec(2, 1)); got != 7 {
		t.Errorf("row-major index = %d, want 7", got)
	}
}

func TestContains(t *testing.T) {
	b := newStandard()
	tests := map[string]struct {
		c    geom.Vec[int]
		want bool
	}{
		"origin":      {geom.NewVec(0, 0), true},
		"far corner":  {geom.NewVec(7, 7), true},
		"past right":  {geom.NewVec(8, 0), false},
		"past bottom": {geom.NewVec(0, 8), false},
		"negative":    {geom.NewVec(-1, -1), false},
	}
	for name, tt := range tests {
		if got := b.Contains(tt.c); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v", name, tt.c, got)
		}
		if !tt.want && b.Index(tt.c) != -1 {
			t.Errorf("%s: Index off board should be -1", name)
		}
	}
}

func TestCheckerPattern(t *testing.T) {
	b := newStandard()
	b.Each(func(i int, c geom.Vec[int], info RenderInfo) {
		want := DarkTile
		if (c.X+c.Y)%2 == 1 {
			want = LightTile
		}
		if info.Color != want {
			t.Fatalf("tile %v color %v", c, info.Color)
		}
	})
	b.RenderInfo[3].Offset[2] = 1
	b.Reset()
	if b.RenderInfo[3].Offset[2] != 0 {
		t.Error("Reset should clear offsets")
	}
}

func TestUserSelection(t *testing.T) {
	var u User
	if u.IsSelected(0) {
		t.Error("zero user selects nothing")
	}
	u.Select(4)
	if !u.IsSelected(4) || u.IsSelected(3) {
		t.Errorf("selection %+v", u)
	}
	u.Clear()
	if u.Active {
		t.Error("Clear should deactivate")
	}
}
