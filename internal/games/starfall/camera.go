package starfall

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/core"
)

// halfHeight is half the visible field height in world units.
const halfHeight = 5.0

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// Camera maps between world space (y up, origin at the field center) and
// screen cells. Terminal cells are roughly twice as tall as they are wide,
// so the horizontal extent grows with the column count.
type Camera struct {
	cols, rows int
	top        int
	halfW      float64
}

// NewCamera creates a camera for a screen of the given size. The top
// hudRows rows are left for the HUD.
func NewCamera(screenW, screenH int) Camera {
	rows := screenH - hudRows
	if rows < 1 {
		rows = 1
	}
	cols := screenW
	if cols < 1 {
		cols = 1
	}
	return Camera{
		cols:  cols,
		rows:  rows,
		top:   hudRows,
		halfW: halfHeight * float64(cols) / (2 * float64(rows)),
	}
}

// HalfWidth returns half the visible field width in world units.
func (c Camera) HalfWidth() float64 { return c.halfW }

// HalfHeight returns half the visible field height in world units.
func (c Camera) HalfHeight() float64 { return halfHeight }

// WorldToViewport maps a world position to viewport space, where the
// visible field spans [0,1] on both axes and y grows upward.
func (c Camera) WorldToViewport(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		(p.X() + c.halfW) / (2 * c.halfW),
		(p.Y() + halfHeight) / (2 * halfHeight),
	}
}

// WorldToScreen maps a world position to a screen cell. The result may lie
// outside the field; callers clip.
func (c Camera) WorldToScreen(p mgl64.Vec2) (int, int) {
	v := c.WorldToViewport(p)
	col := int(math.Floor(v.X() * float64(c.cols)))
	row := c.top + int(math.Floor((1-v.Y())*float64(c.rows)))
	return col, row
}

// ScreenToWorld returns the world position at the center of a cell.
func (c Camera) ScreenToWorld(col, row int) mgl64.Vec2 {
	vx := (float64(col) + 0.5) / float64(c.cols)
	vy := 1 - (float64(row-c.top)+0.5)/float64(c.rows)
	return mgl64.Vec2{
		vx*2*c.halfW - c.halfW,
		vy*2*halfHeight - halfHeight,
	}
}

// InField reports whether a screen cell lies inside the playing field.
func (c Camera) InField(col, row int) bool {
	return col >= 0 && col < c.cols && row >= c.top && row < c.top+c.rows
}

// CellWidth and CellHeight give the world size of one cell.
func (c Camera) CellWidth() float64 { return 2 * c.halfW / float64(c.cols) }

func (c Camera) CellHeight() float64 { return 2 * halfHeight / float64(c.rows) }

// ClampToField keeps a position inside the visible field, inset by margin.
func (c Camera) ClampToField(p mgl64.Vec2, margin float64) mgl64.Vec2 {
	return mgl64.Vec2{
		core.ClampF(p.X(), -c.halfW+margin, c.halfW-margin),
		core.ClampF(p.Y(), -halfHeight+margin, halfHeight-margin),
	}
}
