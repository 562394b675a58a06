package board

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokg/pkg/geom"
)

// User is the local player's selection.
type User struct {
	Active   bool
	ActiveID int
}

func (u *User) Select(id int) {
	u.Active = true
	u.ActiveID = id
}

func (u *User) Clear() {
	u.Active = false
	u.ActiveID = 0
}

func (u User) IsSelected(id int) bool {
	return u.Active && u.ActiveID == id
}

// ArtInfo is a decorative mesh placed on a tile. Mesh names a mesh known to
// the renderer ("cube", "pyramid").
type ArtInfo struct {
	Mesh  string
	Pos   geom.Vec[int]
	Color mgl32.Vec4
}
