package scene

import (
	"time"

	"github.com/kjkrol/gochess/pkg/ecs"
	"github.com/kjkrol/gokg/pkg/geom"
)

// Order is a move queued on a piece by Select. It is carried out on the next
// Update.
type Order struct {
	To geom.Vec[int]
}

// moveSystem carries out queued orders and passes the turn after each one.
type moveSystem struct {
	scene *Scene
	view  ecs.View
}

func (m *moveSystem) Init(api ecs.SystemAPI) {
	m.view = api.NewView(Order{}, Square{}, Alive{})
}

func (m *moveSystem) Update(api ecs.SystemAPI, _ time.Duration) {
	orders := ecs.Map[Order](api)
	api.Each(m.view, func(e ecs.Entity) {
		to := orders[e].To
		ecs.Unassign[Order](m.scene.engine, e)
		m.scene.MoveTo(idOf(e), to)
		m.scene.Turn = m.scene.Turn.Opponent()
		m.scene.changed = true
	})
}

// promotionSystem turns every live pawn standing on its far rank into a queen.
type promotionSystem struct {
	scene *Scene
	view  ecs.View
}

func (p *promotionSystem) Init(api ecs.SystemAPI) {
	p.view = api.NewView(Piece{}, Square{}, Alive{})
}

func (p *promotionSystem) Update(api ecs.SystemAPI, _ time.Duration) {
	pieces := ecs.Map[Piece](api)
	squares := ecs.Map[Square](api)
	last := p.scene.Board.NumDown - 1
	api.Each(p.view, func(e ecs.Entity) {
		piece := pieces[e]
		if piece.Kind != Pawn {
			return
		}
		row := squares[e].Pos.Y
		if (piece.Side == White && row == last) || (piece.Side == Black && row == 0) {
			piece.Kind = Queen
			p.scene.changed = true
		}
	})
}

// Update runs the scene systems for one physics step and reports whether any
// piece moved or changed kind.
func (s *Scene) Update(dt time.Duration) bool {
	s.changed = false
	s.engine.UpdateSystems(dt)
	return s.changed
}

func (s *Scene) pending() bool {
	found := false
	s.engine.Each(s.orders, func(ecs.Entity) { found = true })
	return found
}
