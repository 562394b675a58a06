// Package scene holds the chess pieces as ECS entities together with the
// player's selection and the move hints shown for it.
package scene

import (
	"github.com/kjkrol/gochess/pkg/board"
	"github.com/kjkrol/gochess/pkg/ecs"
	"github.com/kjkrol/gokg/pkg/geom"
)

type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

func (s Side) Opponent() Side {
	return 1 - s
}

// components

type Piece struct {
	Kind Kind
	Side Side
}

type Square struct {
	Pos geom.Vec[int]
}

type Alive struct{}

// PieceInfo is a read-only snapshot of one piece. ID is stable for the
// lifetime of a game and is the index used for picking.
type PieceInfo struct {
	ID    int
	Piece Piece
	Pos   geom.Vec[int]
	Alive bool
}

var backRank = [...]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

type Move struct {
	From, To geom.Vec[int]
}

type Scene struct {
	Board *board.Board
	User  board.User
	Turn  Side

	engine   *ecs.Engine
	all      ecs.View
	orders   ecs.View
	hints    []geom.Vec[int]
	lastMove *Move
	changed  bool
}

// NewStandard sets up the standard opening position. Pieces that would fall
// outside a smaller board, or onto a square already taken on a board with
// fewer than four ranks, are left out.
func NewStandard(b *board.Board) *Scene {
	s := &Scene{Board: b, engine: ecs.NewEngine()}
	ecs.RegisterComponent[Piece](s.engine)
	ecs.RegisterComponent[Square](s.engine)
	ecs.RegisterComponent[Alive](s.engine)
	ecs.RegisterComponent[Order](s.engine)
	s.all = s.engine.NewView(Piece{}, Square{})
	s.orders = s.engine.NewView(Order{})
	s.engine.RegisterSystems([]ecs.System{
		&moveSystem{scene: s},
		&promotionSystem{scene: s},
	})
	s.Reset()
	return s
}

// Reset restores the opening position, clears the selection and gives the
// move to white.
func (s *Scene) Reset() {
	s.engine.Clear()
	s.User.Clear()
	s.Turn = White
	s.hints = nil
	s.lastMove = nil

	top := s.Board.NumDown - 1
	for col, kind := range backRank {
		s.place(Piece{Kind: kind, Side: White}, geom.NewVec(col, 0))
		s.place(Piece{Kind: Pawn, Side: White}, geom.NewVec(col, 1))
		s.place(Piece{Kind: Pawn, Side: Black}, geom.NewVec(col, top-1))
		s.place(Piece{Kind: kind, Side: Black}, geom.NewVec(col, top))
	}
}

func (s *Scene) place(p Piece, pos geom.Vec[int]) {
	if !s.Board.Contains(pos) {
		return
	}
	if _, taken := s.PieceAt(pos); taken {
		return
	}
	e := s.engine.CreateEntity()
	ecs.Assign(s.engine, e, p)
	ecs.Assign(s.engine, e, Square{Pos: pos})
	ecs.Assign(s.engine, e, Alive{})
}

func entityOf(id int) ecs.Entity {
	return ecs.Entity(id + 1)
}

func idOf(e ecs.Entity) int {
	return int(e) - 1
}

func (s *Scene) info(e ecs.Entity) PieceInfo {
	p, _ := ecs.Get[Piece](s.engine, e)
	sq, _ := ecs.Get[Square](s.engine, e)
	return PieceInfo{
		ID:    idOf(e),
		Piece: *p,
		Pos:   sq.Pos,
		Alive: ecs.Has[Alive](s.engine, e),
	}
}

// Pieces visits every piece, captured ones included, in ID order.
func (s *Scene) Pieces(fn func(PieceInfo)) {
	s.engine.Each(s.all, func(e ecs.Entity) {
		fn(s.info(e))
	})
}

func (s *Scene) Len() int {
	return s.engine.Len()
}

func (s *Scene) Get(id int) (PieceInfo, bool) {
	e := entityOf(id)
	if id < 0 || !ecs.Has[Piece](s.engine, e) {
		return PieceInfo{}, false
	}
	return s.info(e), true
}

// PieceAt returns the live piece standing on pos.
func (s *Scene) PieceAt(pos geom.Vec[int]) (PieceInfo, bool) {
	var found PieceInfo
	var ok bool
	s.Pieces(func(p PieceInfo) {
		if !ok && p.Alive && p.Pos == pos {
			found, ok = p, true
		}
	})
	return found, ok
}

// Capture takes a piece off the board. Its entity and ID are kept.
func (s *Scene) Capture(id int) {
	ecs.Unassign[Alive](s.engine, entityOf(id))
}

// LastMove returns the most recent move, if any.
func (s *Scene) LastMove() (Move, bool) {
	if s.lastMove == nil {
		return Move{}, false
	}
	return *s.lastMove, true
}

// MoveTo moves piece id to pos at once, capturing any opposing piece there.
// It does not check legality. Promotion happens on the next Update.
func (s *Scene) MoveTo(id int, pos geom.Vec[int]) {
	e := entityOf(id)
	sq, ok := ecs.Get[Square](s.engine, e)
	if !ok || !s.Board.Contains(pos) {
		return
	}
	if other, ok := s.PieceAt(pos); ok && other.ID != id {
		s.Capture(other.ID)
	}
	s.lastMove = &Move{From: sq.Pos, To: pos}
	sq.Pos = pos
}
