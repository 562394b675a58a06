package renderer

import (
	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/kjkrol/gochess/pkg/board"
	"github.com/kjkrol/gochess/pkg/picking"
	"github.com/kjkrol/gochess/pkg/scene"
)

const pieceScale = 0.3

var (
	pieceWhite     = mgl32.Vec3{1, 1, 1}
	pieceBlack     = mgl32.Vec3{0, 0, 0}
	selectedTint   = mgl32.Vec3{0.3, 0.9, 0.9}
	highlightColor = mgl32.Vec3{0.9, 0.12, 0.25}
	graveyard      = mgl32.Vec2{-4, 0}
)

func setMatrix(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func setVec3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// use activates t's program and loads the camera matrices.
func (t *transform) use(view, projection mgl32.Mat4) {
	gl.UseProgram(t.program)
	setMatrix(t.view, view)
	setMatrix(t.proj, projection)
}

// renderNormal draws the showcase: a textured plane, a textured cube 2.5
// units along +x and a vertex-colored pyramid 2.5 units along -x, all relative
// to origin.
func (r *Renderer) renderNormal(view, projection mgl32.Mat4, scale, origin mgl32.Vec3) {
	ts := &r.textureShader
	ts.use(view, projection)
	setVec3(ts.scale, scale)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(ts.texSource, 0)

	for _, item := range []struct {
		texture uint32
		mesh    primitive
		offset  mgl32.Vec3
	}{
		{r.texture2, r.plane, mgl32.Vec3{0, 0, 0}},
		{r.textureApple, r.cube, mgl32.Vec3{2.5, 0, 0}},
	} {
		gl.BindTexture(gl.TEXTURE_2D, item.texture)
		setMatrix(ts.model, translate(origin.Add(item.offset)))
		bindAttrib(ts.coord3d, item.mesh.verts, 3)
		bindAttrib(ts.texCoord2d, item.mesh.uvs, 2)
		drawElements(item.mesh.indices, item.mesh.count)
		unbindAttrib(ts.coord3d)
		unbindAttrib(ts.texCoord2d)
	}

	r.renderHand(translate(origin.Add(mgl32.Vec3{-2.5, 0, 0})), view, projection, scale)
}

// renderHand draws the vertex-colored pyramid with the given model matrix.
func (r *Renderer) renderHand(model, view, projection mgl32.Mat4, scale mgl32.Vec3) {
	cv := &r.colorVertsShader
	cv.use(view, projection)
	setMatrix(cv.model, model)
	setVec3(cv.scale, scale)
	bindAttrib(cv.coord3d, r.pyramid.verts, 3)
	bindAttrib(cv.vColor, r.pyramid.colors, 3)
	drawElements(r.pyramid.indices, r.pyramid.count)
	unbindAttrib(cv.coord3d)
	unbindAttrib(cv.vColor)
}

// renderChessboard draws every tile at its center plus RenderInfo offset, with
// the tile's own color and alpha.
func (r *Renderer) renderChessboard(view, projection mgl32.Mat4, b *board.Board) {
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{b.TileWidth, b.TileWidth, b.TileDepth})
	bindAttrib(bs.coord3d, r.cube.verts, 3)
	b.Each(func(_ int, c geom.Vec[int], info board.RenderInfo) {
		pos := mgl32.Vec3{b.X(c.X) + info.Offset[0], b.Y(c.Y) + info.Offset[1], info.Offset[2]}
		setMatrix(bs.model, translate(pos))
		setVec3(bs.color, info.Color.Vec3())
		gl.Uniform1f(bs.alpha, info.Color[3])
		drawElements(r.cube.indices, r.cube.count)
	})
	unbindAttrib(bs.coord3d)
}

// renderChessboardOffscreen draws each tile flat at tile-top height in its
// picking color. The caller binds the offscreen target.
func (r *Renderer) renderChessboardOffscreen(view, projection mgl32.Mat4, b *board.Board) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	off := &r.offscreenShader
	off.use(view, projection)
	setVec3(off.scale, mgl32.Vec3{b.TileWidth, b.TileWidth, 0.0001})
	bindAttrib(off.coord3d, r.cube.verts, 3)
	b.Each(func(index int, c geom.Vec[int], _ board.RenderInfo) {
		setMatrix(off.model, translate(mgl32.Vec3{b.X(c.X), b.Y(c.Y), b.TileDepth}))
		setVec3(off.color, picking.Color(picking.Target{Kind: picking.Tile, Index: index}))
		drawElements(r.cube.indices, r.cube.count)
	})
	unbindAttrib(off.coord3d)
}

func (r *Renderer) pieceModel(b *board.Board, p scene.PieceInfo) mgl32.Mat4 {
	if !p.Alive {
		return translate(mgl32.Vec3{graveyard[0], graveyard[1], b.TileDepth})
	}
	return translate(mgl32.Vec3{b.X(p.Pos.X), b.Y(p.Pos.Y), b.TileDepth})
}

func (r *Renderer) drawObject(bs *basicShader, obj Object, model mgl32.Mat4, color mgl32.Vec3, alpha float32) {
	setMatrix(bs.model, model)
	setVec3(bs.color, color)
	gl.Uniform1f(bs.alpha, alpha)
	bindAttrib(bs.coord3d, obj.Verts, 3)
	drawElements(obj.Indices, obj.Count)
	unbindAttrib(bs.coord3d)
}

// renderPlayerOffscreen draws a live piece in its picking color.
func (r *Renderer) renderPlayerOffscreen(view, projection mgl32.Mat4, b *board.Board, p scene.PieceInfo) {
	if !p.Alive {
		return
	}
	off := &r.offscreenShader
	off.use(view, projection)
	setVec3(off.scale, mgl32.Vec3{pieceScale, pieceScale, pieceScale})
	setMatrix(off.model, r.pieceModel(b, p))
	setVec3(off.color, picking.Color(picking.Target{Kind: picking.Piece, Index: p.ID}))
	obj := r.pieceObject(p.Piece.Kind)
	bindAttrib(off.coord3d, obj.Verts, 3)
	drawElements(obj.Indices, obj.Count)
	unbindAttrib(off.coord3d)
}

// renderPiece draws a piece in plain white.
func (r *Renderer) renderPiece(view, projection mgl32.Mat4, b *board.Board, p scene.PieceInfo) {
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{pieceScale, pieceScale, pieceScale})
	r.drawObject(bs, r.pieceObject(p.Piece.Kind), r.pieceModel(b, p), pieceWhite, 1)
}

// renderPlayer draws a piece in black, or tinted when it is the user's
// selection. Captured pieces are drawn beside the board.
func (r *Renderer) renderPlayer(view, projection mgl32.Mat4, b *board.Board, p scene.PieceInfo, user board.User) {
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{pieceScale, pieceScale, pieceScale})
	color := pieceBlack
	if user.IsSelected(p.ID) {
		color = selectedTint
	}
	r.drawObject(bs, r.pieceObject(p.Piece.Kind), r.pieceModel(b, p), color, 1)
}

// renderArt draws a decoration mesh on its tile.
func (r *Renderer) renderArt(view, projection mgl32.Mat4, b *board.Board, art board.ArtInfo) {
	obj, ok := r.objects[art.Mesh]
	if !ok {
		return
	}
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{pieceScale, pieceScale, pieceScale})
	model := translate(mgl32.Vec3{b.X(art.Pos.X), b.Y(art.Pos.Y), b.TileDepth})
	r.drawObject(bs, obj, model, art.Color.Vec3(), art.Color[3])
}

// renderHighlights draws a translucent slab over each hinted square. Squares
// with a negative coordinate are unused slots and skipped.
func (r *Renderer) renderHighlights(view, projection mgl32.Mat4, b *board.Board, points []geom.Vec[int]) {
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{b.TileWidth, b.TileWidth, b.TileDepth / 2})
	gl.Uniform1f(bs.alpha, 0.7)
	setVec3(bs.color, highlightColor)
	bindAttrib(bs.coord3d, r.cube.verts, 3)
	for _, pt := range points {
		if pt.X < 0 || pt.Y < 0 {
			continue
		}
		setMatrix(bs.model, translate(mgl32.Vec3{b.X(pt.X), b.Y(pt.Y), 0.2}))
		drawElements(r.cube.indices, r.cube.count)
	}
	unbindAttrib(bs.coord3d)
}

// BoardState is a colored marker floating over a square, such as the last
// move's endpoints.
type BoardState struct {
	Pos    geom.Vec[int]
	Color  mgl32.Vec3
	Offset float32
}

func (r *Renderer) renderBoardState(view, projection mgl32.Mat4, b *board.Board, s BoardState) {
	bs := &r.basicShader
	bs.use(view, projection)
	setVec3(bs.scale, mgl32.Vec3{b.TileWidth, b.TileWidth, b.TileDepth / 2})
	model := translate(mgl32.Vec3{b.X(s.Pos.X), b.Y(s.Pos.Y), 0.4 + s.Offset})
	r.drawObject(bs, r.cube.object(), model, s.Color, 0.7)
}
