package scene

import (
	"slices"
	"testing"
	"time"

	"github.com/kjkrol/gochess/pkg/board"
	"github.com/kjkrol/gochess/pkg/picking"
	"github.com/kjkrol/gokg/pkg/geom"
)

const step = time.Second / 60

func newGame() *Scene {
	return NewStandard(board.New(8, 8, 0.5, 0.1))
}

func mustPieceAt(t *testing.T, s *Scene, x, y int) PieceInfo {
	t.Helper()
	p, ok := s.PieceAt(geom.NewVec(x, y))
	if !ok {
		t.Fatalf("no piece at %d,%d", x, y)
	}
	return p
}

func tile(s *Scene, x, y int) picking.Target {
	return picking.Target{Kind: picking.Tile, Index: s.Board.Index(geom.NewVec(x, y))}
}

func TestStandardSetup(t *testing.T) {
	s := newGame()
	if s.Len() != 32 {
		t.Fatalf("pieces = %d, want 32", s.Len())
	}
	var ids []int
	s.Pieces(func(p PieceInfo) { ids = append(ids, p.ID) })
	for i, id := range ids {
		if id != i {
			t.Fatalf("ids %v are not dense and ordered", ids)
		}
	}
	if k := mustPieceAt(t, s, 4, 0).Piece; k != (Piece{Kind: King, Side: White}) {
		t.Errorf("e1 holds %v", k)
	}
	if k := mustPieceAt(t, s, 3, 7).Piece; k != (Piece{Kind: Queen, Side: Black}) {
		t.Errorf("d8 holds %v", k)
	}
	if k := mustPieceAt(t, s, 0, 6).Piece; k != (Piece{Kind: Pawn, Side: Black}) {
		t.Errorf("a7 holds %v", k)
	}
	if _, ok := s.PieceAt(geom.NewVec(4, 4)); ok {
		t.Error("centre should be empty")
	}
}

func TestSmallBoardSkipsOffBoardPieces(t *testing.T) {
	s := NewStandard(board.New(4, 4, 0.5, 0.1))
	s.Pieces(func(p PieceInfo) {
		if !s.Board.Contains(p.Pos) {
			t.Errorf("piece %d placed off board at %v", p.ID, p.Pos)
		}
	})
	if s.Len() != 16 {
		t.Errorf("pieces = %d, want 16", s.Len())
	}
}

func TestShortBoardKeepsOnePiecePerSquare(t *testing.T) {
	for _, ranks := range []int{1, 2, 3} {
		s := NewStandard(board.New(8, ranks, 0.5, 0.1))
		seen := map[geom.Vec[int]]int{}
		s.Pieces(func(p PieceInfo) {
			if prev, dup := seen[p.Pos]; dup {
				t.Errorf("%d ranks: pieces %d and %d share %v", ranks, prev, p.ID, p.Pos)
			}
			seen[p.Pos] = p.ID
		})
		if got, ok := s.PieceAt(geom.NewVec(4, 0)); !ok || got.Piece != (Piece{Kind: King, Side: White}) {
			t.Errorf("%d ranks: e1 holds %+v", ranks, got)
		}
	}
}

func TestOpeningHints(t *testing.T) {
	s := newGame()
	tests := map[string]struct {
		at   geom.Vec[int]
		want []geom.Vec[int]
	}{
		"white pawn double step": {geom.NewVec(4, 1), []geom.Vec[int]{geom.NewVec(4, 2), geom.NewVec(4, 3)}},
		"black pawn double step": {geom.NewVec(2, 6), []geom.Vec[int]{geom.NewVec(2, 5), geom.NewVec(2, 4)}},
		"knight":                 {geom.NewVec(1, 0), []geom.Vec[int]{geom.NewVec(2, 2), geom.NewVec(0, 2)}},
		"blocked rook":           {geom.NewVec(0, 0), nil},
		"blocked king":           {geom.NewVec(4, 0), nil},
	}
	for name, tt := range tests {
		p := mustPieceAt(t, s, tt.at.X, tt.at.Y)
		got := s.Hints(p.ID)
		if len(got) != len(tt.want) {
			t.Errorf("%s: hints %v, want %v", name, got, tt.want)
			continue
		}
		for _, w := range tt.want {
			if !slices.Contains(got, w) {
				t.Errorf("%s: hints %v missing %v", name, got, w)
			}
		}
	}
}

func TestSlidingStopsAtCapture(t *testing.T) {
	s := newGame()
	rook := mustPieceAt(t, s, 0, 0)
	pawn := mustPieceAt(t, s, 0, 1)
	s.Capture(pawn.ID)
	got := s.Hints(rook.ID)
	want := []geom.Vec[int]{
		geom.NewVec(0, 1), geom.NewVec(0, 2), geom.NewVec(0, 3),
		geom.NewVec(0, 4), geom.NewVec(0, 5), geom.NewVec(0, 6),
	}
	if !slices.Equal(got, want) {
		t.Errorf("rook hints %v, want %v", got, want)
	}
}

func TestPawnCapturesDiagonally(t *testing.T) {
	s := newGame()
	pawn := mustPieceAt(t, s, 3, 1)
	s.MoveTo(pawn.ID, geom.NewVec(3, 5))
	got := s.Hints(pawn.ID)
	want := []geom.Vec[int]{geom.NewVec(2, 6), geom.NewVec(4, 6)}
	if !slices.Equal(got, want) {
		t.Errorf("pawn hints %v, want %v", got, want)
	}
}

func TestSelectAndMove(t *testing.T) {
	s := newGame()
	pawn := mustPieceAt(t, s, 4, 1)

	if s.Select(picking.Target{Kind: picking.Piece, Index: pawn.ID}) {
		t.Fatal("selecting a piece is not a move")
	}
	if !s.User.IsSelected(pawn.ID) || len(s.Highlights()) != 2 {
		t.Fatalf("selection %+v hints %v", s.User, s.Highlights())
	}
	if !s.Select(tile(s, 4, 3)) {
		t.Fatal("moving to a hinted tile should queue a move")
	}
	if got, _ := s.Get(pawn.ID); got.Pos != geom.NewVec(4, 1) || s.Turn != White {
		t.Fatalf("queued move applied early: pawn at %v, turn %v", got.Pos, s.Turn)
	}
	if !s.Update(step) {
		t.Fatal("Update should report the applied move")
	}
	if s.Update(step) {
		t.Error("idle Update should report no change")
	}
	if got, _ := s.Get(pawn.ID); got.Pos != geom.NewVec(4, 3) {
		t.Errorf("pawn at %v", got.Pos)
	}
	if s.User.Active || s.Highlights() != nil {
		t.Error("move should clear the selection")
	}
	if s.Turn != Black {
		t.Error("turn should pass to black")
	}
	if m, ok := s.LastMove(); !ok || m.From != geom.NewVec(4, 1) || m.To != geom.NewVec(4, 3) {
		t.Errorf("last move %+v %v", m, ok)
	}
}

func TestSelectRejectsWrongSideAndUnhintedTiles(t *testing.T) {
	s := newGame()
	black := mustPieceAt(t, s, 4, 6)
	s.Select(picking.Target{Kind: picking.Piece, Index: black.ID})
	if s.User.Active {
		t.Error("black piece selectable on white's turn")
	}

	knight := mustPieceAt(t, s, 6, 0)
	s.Select(picking.Target{Kind: picking.Piece, Index: knight.ID})
	if s.Select(tile(s, 6, 4)) {
		t.Error("moved to a square that was not hinted")
	}
	if s.User.Active {
		t.Error("unhinted pick should clear the selection")
	}

	s.Select(picking.Target{Kind: picking.Piece, Index: knight.ID})
	s.Select(picking.Target{})
	if s.User.Active {
		t.Error("picking nothing should clear the selection")
	}
}

func TestCaptureByPickingPiece(t *testing.T) {
	s := newGame()
	rook := mustPieceAt(t, s, 0, 0)
	s.Capture(mustPieceAt(t, s, 0, 1).ID)
	victim := mustPieceAt(t, s, 0, 6)

	s.Select(picking.Target{Kind: picking.Piece, Index: rook.ID})
	if !s.Select(picking.Target{Kind: picking.Piece, Index: victim.ID}) {
		t.Fatal("picking a hinted enemy piece should capture it")
	}
	s.Update(step)
	if got, _ := s.Get(victim.ID); got.Alive {
		t.Error("victim still alive")
	}
	if got := mustPieceAt(t, s, 0, 6); got.ID != rook.ID {
		t.Errorf("a7 holds piece %d, want rook %d", got.ID, rook.ID)
	}
}

func TestPromotionAndReset(t *testing.T) {
	s := newGame()
	pawn := mustPieceAt(t, s, 0, 1)
	s.MoveTo(pawn.ID, geom.NewVec(0, 7))
	if !s.Update(step) {
		t.Fatal("promotion should report a change")
	}
	if got, _ := s.Get(pawn.ID); got.Piece.Kind != Queen {
		t.Errorf("pawn on last rank is %v", got.Piece.Kind)
	}

	s.Reset()
	if s.Len() != 32 || s.Turn != White {
		t.Fatalf("reset: %d pieces, turn %v", s.Len(), s.Turn)
	}
	if got := mustPieceAt(t, s, 0, 1); got.ID != pawn.ID || got.Piece.Kind != Pawn {
		t.Errorf("reset pawn %+v", got)
	}
	if _, ok := s.LastMove(); ok {
		t.Error("reset should forget the last move")
	}
}

func TestPicksIgnoredWhileMoveQueued(t *testing.T) {
	s := newGame()
	knight := mustPieceAt(t, s, 6, 0)
	other := mustPieceAt(t, s, 1, 0)
	s.Select(picking.Target{Kind: picking.Piece, Index: knight.ID})
	if !s.Select(tile(s, 5, 2)) {
		t.Fatal("knight move not queued")
	}
	s.Select(picking.Target{Kind: picking.Piece, Index: other.ID})
	if s.User.Active {
		t.Fatal("a second white piece was selected before the first move ran")
	}
	s.Update(step)
	if s.Turn != Black {
		t.Fatalf("turn %v after one move", s.Turn)
	}
	if got := mustPieceAt(t, s, 5, 2); got.ID != knight.ID {
		t.Errorf("f3 holds %d, want knight %d", got.ID, knight.ID)
	}
}

func TestBlackPawnPromotesOnFirstRank(t *testing.T) {
	s := newGame()
	white := mustPieceAt(t, s, 1, 1)
	black := mustPieceAt(t, s, 0, 6)
	s.MoveTo(black.ID, geom.NewVec(0, 0))
	s.MoveTo(white.ID, geom.NewVec(1, 5))
	s.Update(step)
	if got, _ := s.Get(black.ID); got.Piece.Kind != Queen {
		t.Errorf("black pawn on a1 is %v", got.Piece.Kind)
	}
	if got, _ := s.Get(white.ID); got.Piece.Kind != Pawn {
		t.Errorf("white pawn on b6 is %v", got.Piece.Kind)
	}
}
