package scene

import "github.com/kjkrol/gokg/pkg/geom"

var (
	straight = []geom.Vec[int]{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	diagonal = []geom.Vec[int]{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	jumps    = []geom.Vec[int]{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
		{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
	}
	around = append(append([]geom.Vec[int]{}, straight...), diagonal...)
)

func add(a, b geom.Vec[int]) geom.Vec[int] {
	return geom.NewVec(a.X+b.X, a.Y+b.Y)
}

// Hints lists the squares piece id can move to. Check, castling and en
// passant are not considered.
func (s *Scene) Hints(id int) []geom.Vec[int] {
	p, ok := s.Get(id)
	if !ok || !p.Alive {
		return nil
	}
	occupant := s.occupancy()
	var out []geom.Vec[int]

	// free reports whether pos is on the board and not held by p's side;
	// empty additionally reports whether nothing stands there.
	free := func(pos geom.Vec[int]) (ok, empty bool) {
		if !s.Board.Contains(pos) {
			return false, false
		}
		side, taken := occupant[pos]
		if !taken {
			return true, true
		}
		return side != p.Piece.Side, false
	}
	step := func(dirs []geom.Vec[int]) {
		for _, d := range dirs {
			if ok, _ := free(add(p.Pos, d)); ok {
				out = append(out, add(p.Pos, d))
			}
		}
	}
	slide := func(dirs []geom.Vec[int]) {
		for _, d := range dirs {
			for pos := add(p.Pos, d); ; pos = add(pos, d) {
				ok, empty := free(pos)
				if !ok {
					break
				}
				out = append(out, pos)
				if !empty {
					break
				}
			}
		}
	}

	switch p.Piece.Kind {
	case Pawn:
		dir, start := 1, 1
		if p.Piece.Side == Black {
			dir, start = -1, s.Board.NumDown-2
		}
		one := add(p.Pos, geom.NewVec(0, dir))
		if _, empty := free(one); empty {
			out = append(out, one)
			two := add(one, geom.NewVec(0, dir))
			if _, empty := free(two); empty && p.Pos.Y == start {
				out = append(out, two)
			}
		}
		for _, dx := range []int{-1, 1} {
			diag := add(p.Pos, geom.NewVec(dx, dir))
			if ok, empty := free(diag); ok && !empty {
				out = append(out, diag)
			}
		}
	case Knight:
		step(jumps)
	case King:
		step(around)
	case Bishop:
		slide(diagonal)
	case Rook:
		slide(straight)
	case Queen:
		slide(around)
	}
	return out
}

func (s *Scene) occupancy() map[geom.Vec[int]]Side {
	occupied := make(map[geom.Vec[int]]Side)
	s.Pieces(func(p PieceInfo) {
		if p.Alive {
			occupied[p.Pos] = p.Piece.Side
		}
	})
	return occupied
}
