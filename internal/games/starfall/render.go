package starfall

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/core"
)

// Visual characters for rendering
const (
	StarChar    = '*'
	StarAltChar = '+'
)

// Rock glyphs cycle with the asteroid's rotation.
var rockGlyphs = []rune{'@', '%', '#', '&'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.background.Render(dst, g.camera)
	g.renderStars(dst)
	g.renderAsteroids(dst)
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderEffects(dst)
	g.renderHUD(dst)

	if g.gameOver {
		g.drawCenteredBox(dst, g.GameOverText())
	}
}

func (g *Game) plot(dst *core.Screen, pos mgl64.Vec2, r rune, c core.Color) {
	col, row := g.camera.WorldToScreen(pos)
	if g.camera.InField(col, row) {
		dst.SetColored(col, row, r, c)
	}
}

// renderAsteroids fills every cell whose center lies inside the rock.
// Tiny rocks still take one cell.
func (g *Game) renderAsteroids(dst *core.Screen) {
	cw, ch := g.camera.CellWidth(), g.camera.CellHeight()
	for _, a := range g.asteroids {
		tint := a.Tint()
		spin := int(math.Floor(a.Rotation / 90))
		r := a.Radius()

		minC, maxR := g.camera.WorldToScreen(a.Pos.Sub(mgl64.Vec2{r, r}))
		maxC, minR := g.camera.WorldToScreen(a.Pos.Add(mgl64.Vec2{r, r}))
		drawn := false
		for row := minR; row <= maxR; row++ {
			for col := minC; col <= maxC; col++ {
				if !g.camera.InField(col, row) {
					continue
				}
				center := g.camera.ScreenToWorld(col, row)
				d := center.Sub(a.Pos)
				// Pad by half a cell so edges stay round on coarse grids.
				if (d.X()*d.X())/(r*r+cw*cw/4)+(d.Y()*d.Y())/(r*r+ch*ch/4) > 1 {
					continue
				}
				idx := ((spin+col+row)%len(rockGlyphs) + len(rockGlyphs)) % len(rockGlyphs)
				dst.SetColored(col, row, rockGlyphs[idx], tint)
				drawn = true
			}
		}
		if !drawn {
			g.plot(dst, a.Pos, 'o', tint)
		}
	}
}

func (g *Game) renderStars(dst *core.Screen) {
	glyph := StarChar
	if (g.tickCount/8)%2 == 1 {
		glyph = StarAltChar
	}
	for _, s := range g.stars {
		g.plot(dst, s.Pos, glyph, core.ColorBrightYellow)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		g.plot(dst, b.Pos, b.Glyph(), core.ColorBrightCyan)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	if p == nil || !p.Visible {
		return
	}
	color := core.ColorBrightGreen
	if p.Invulnerable {
		color = core.ColorGreen
	}
	g.plot(dst, p.Pos, p.Glyph(), color)
}

func (g *Game) renderEffects(dst *core.Screen) {
	for _, e := range g.effects {
		if e.Kind == EffectCollect {
			g.plot(dst, e.Pos, e.Frame(), core.ColorBrightYellow)
			continue
		}

		color := core.ColorBrightYellow
		if e.Progress() > 0.4 {
			color = core.ColorOrange
		}
		if e.Progress() > 0.7 {
			color = core.ColorRed
		}
		g.plot(dst, e.Pos, e.Frame(), color)

		// Eight sparks around the ring.
		r := e.Radius()
		for i := range 8 {
			angle := float64(i) * math.Pi / 4
			spark := e.Pos.Add(mgl64.Vec2{math.Cos(angle) * r, math.Sin(angle) * r})
			g.plot(dst, spark, e.Frame(), color)
		}
	}
}

// drawCenteredBox draws a centered message box with one line per entry.
func (g *Game) drawCenteredBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(hudRows, dst.Height()/2-boxH)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorRed)
	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+2+i, l, color)
	}
}
