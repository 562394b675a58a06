package scene

import (
	"slices"

	"github.com/kjkrol/gochess/pkg/ecs"
	"github.com/kjkrol/gochess/pkg/picking"
	"github.com/kjkrol/gokg/pkg/geom"
)

// Highlights returns the move hints of the current selection.
func (s *Scene) Highlights() []geom.Vec[int] {
	return s.hints
}

func (s *Scene) Deselect() {
	s.User.Clear()
	s.hints = nil
}

// Select applies a pick. Picking a piece of the side to move selects it and
// computes its hints. Picking a hinted square, or an opposing piece standing
// on one, queues the move for the next Update. Any other pick clears the
// selection. It reports whether a move was queued; picks are ignored while a
// move is still queued.
func (s *Scene) Select(target picking.Target) bool {
	if s.pending() {
		return false
	}
	switch target.Kind {
	case picking.Piece:
		p, ok := s.Get(target.Index)
		if !ok || !p.Alive {
			s.Deselect()
			return false
		}
		return s.pickSquare(p.Pos)
	case picking.Tile:
		if target.Index < 0 || target.Index >= s.Board.Len() {
			s.Deselect()
			return false
		}
		return s.pickSquare(s.Board.Coord(target.Index))
	}
	s.Deselect()
	return false
}

func (s *Scene) pickSquare(pos geom.Vec[int]) bool {
	if s.User.Active && slices.Contains(s.hints, pos) {
		ecs.Assign(s.engine, entityOf(s.User.ActiveID), Order{To: pos})
		s.Deselect()
		return true
	}
	if p, ok := s.PieceAt(pos); ok && p.Piece.Side == s.Turn {
		if s.User.IsSelected(p.ID) {
			s.Deselect()
			return false
		}
		s.User.Select(p.ID)
		s.hints = s.Hints(p.ID)
		return false
	}
	s.Deselect()
	return false
}
