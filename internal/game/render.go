package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/enemy"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/weapon"
)

// World units covered by one character cell. Cells are about twice as tall
// as they are wide.
const (
	CellW = 20.0
	CellH = 40.0
)

// hudRows is the number of rows reserved at the top of the screen.
const hudRows = 1

var kindRunes = map[entity.Kind]rune{
	entity.KindRat:        'r',
	entity.KindBedbug:     'b',
	entity.KindMightyMite: 'M',
	entity.KindBroodFly:   'f',
	entity.KindLarva:      'l',
	entity.KindBroodRoach: 'R',
	entity.KindRoachling:  ',',
}

// stalkerVisibleAlpha is the opacity below which a stalker is not drawn.
const stalkerVisibleAlpha = 64

// camera maps world positions to screen cells below the HUD.
type camera struct {
	dst    *core.Screen
	origin core.Vec2
}

func newCamera(dst *core.Screen, focus core.Vec2, bounds core.Rect) camera {
	viewW := float64(dst.Width()) * CellW
	viewH := float64(dst.Height()-hudRows) * CellH
	x := clampView(focus.X-viewW/2, bounds.X, bounds.Right()-viewW)
	y := clampView(focus.Y-viewH/2, bounds.Y, bounds.Bottom()-viewH)
	return camera{dst: dst, origin: core.V(x, y)}
}

// clampView keeps the view inside the level, centering levels smaller than
// the view.
func clampView(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return core.ClampF(v, lo, hi)
}

func (c camera) cell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X - c.origin.X) / CellW))
	y := int(math.Floor((p.Y-c.origin.Y)/CellH)) + hudRows
	return x, y
}

func (c camera) set(x, y int, r rune, col core.Color) {
	if y < hudRows {
		return
	}
	c.dst.SetColored(x, y, r, col)
}

func (c camera) point(p core.Vec2, r rune, col core.Color) {
	x, y := c.cell(p)
	c.set(x, y, r, col)
}

// fill paints every cell whose area intersects r.
func (c camera) fill(r core.Rect, ch rune, col core.Color) {
	x0, y0 := c.cell(core.V(r.X, r.Y))
	x1, y1 := c.cell(core.V(r.Right()-core.Epsilon, r.Bottom()-core.Epsilon))
	x0, x1 = max(x0, 0), min(x1, c.dst.Width()-1)
	y0, y1 = max(y0, hudRows), min(y1, c.dst.Height()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, ch, col)
		}
	}
}

// disc paints the cells whose centers lie within radius of center.
func (c camera) disc(center core.Vec2, radius float64, ch rune, col core.Color) {
	box := core.RectAround(center, radius*2, radius*2)
	x0, y0 := c.cell(core.V(box.X, box.Y))
	x1, y1 := c.cell(core.V(box.Right(), box.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := core.V(
				c.origin.X+(float64(x)+0.5)*CellW,
				c.origin.Y+(float64(y-hudRows)+0.5)*CellH,
			)
			if mid.DistSq(center) <= radius*radius {
				c.set(x, y, ch, col)
			}
		}
	}
}

// Render draws the world around the player and the HUD line.
func (w *World) Render(dst *core.Screen) {
	if dst.Height() <= hudRows || w.player == nil {
		return
	}
	cam := newCamera(dst, w.player.Pos, w.level.Bounds)

	for _, pd := range w.puddles {
		cam.disc(pd.Pos, pd.Radius, '~', core.ColorPuddle)
	}
	for _, wall := range w.level.Walls {
		cam.fill(wall, '█', core.ColorWall)
	}
	for _, b := range w.level.Barricades {
		if b.Active {
			cam.fill(b.Rect, '#', core.ColorBarricade)
		}
	}
	for _, p := range w.pickups {
		cam.point(p.Pos, '+', core.ColorPickup)
	}
	for _, n := range w.nests {
		switch {
		case !n.Active:
			cam.fill(n.Box(), 'x', core.ColorNestDead)
		case n.Burn.Active():
			cam.fill(n.Box(), 'N', core.ColorBurning)
		case n.Angry:
			cam.fill(n.Box(), 'N', core.ColorWarning)
		default:
			cam.fill(n.Box(), 'N', core.ColorNest)
		}
	}
	for _, e := range w.enemies {
		w.renderEnemy(cam, e)
	}
	for _, b := range w.bullets {
		cam.point(b.Pos, '.', core.ColorProjectile)
	}
	for _, b := range w.blobs {
		cam.point(b.Pos, 'o', core.ColorPuddle)
	}
	for _, a := range w.acids {
		cam.point(a.Pos, '*', core.ColorAcid)
	}
	if w.player.Alive() {
		cam.point(w.player.Pos.Add(w.player.Facing.Scale(CellW*1.5)), '·', core.ColorPlayer)
		cam.point(w.player.Pos, '@', core.ColorPlayer)
	}

	w.renderHUD(dst)
	switch {
	case w.gameOver:
		dst.DrawTextCentered(dst.Height()/2, outcomeBanner(w.outcome), core.ColorHUD)
		dst.DrawTextCentered(dst.Height()/2+1, "Press Enter to restart", core.ColorHUD)
	case w.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED", core.ColorHUD)
	}
}

// ScreenToWorld maps a screen cell of a dst-sized view to the world point
// at the cell's center, using the same camera as Render.
func (w *World) ScreenToWorld(dst *core.Screen, x, y int) core.Vec2 {
	if w.player == nil {
		return core.Vec2{}
	}
	cam := newCamera(dst, w.player.Pos, w.level.Bounds)
	return core.V(
		cam.origin.X+(float64(x)+0.5)*CellW,
		cam.origin.Y+(float64(y-hudRows)+0.5)*CellH,
	)
}

func (w *World) renderEnemy(cam camera, e *enemy.Enemy) {
	r, ok := kindRunes[e.Kind]
	if !ok {
		return
	}
	col := core.ColorEnemy
	switch {
	case e.Dying || e.State == enemy.StateDying:
		r = '%'
	case e.Kind == entity.KindBedbug:
		if e.Alpha < stalkerVisibleAlpha {
			return
		}
		col = core.ColorStalker
	}
	if e.Burn.Active() {
		col = core.ColorBurning
	}
	cam.point(e.Pos, r, col)
}

func (w *World) renderHUD(dst *core.Screen) {
	st := weapon.Describe(w.loadout.Current())
	res := ""
	switch {
	case st.Reloading:
		res = "RELOADING"
	case st.MaxAmmo > 0:
		res = fmt.Sprintf("%d/%d", st.Ammo, st.MaxAmmo)
	case st.HasFuel:
		res = fmt.Sprintf("fuel %3.0f%%", st.Fuel*100)
	}
	hud := fmt.Sprintf("HP %3.0f  %s [%s] %s  Kills %d  Nests %d/%d  T %d",
		w.player.Health, st.Name, st.State, res, w.kills, w.ActiveNests(), len(w.nests), w.tick)
	col := core.ColorHUD
	if w.player.Health < entity.PlayerHealth/4 {
		col = core.ColorWarning
	}
	dst.DrawText(0, 0, hud, col)
}

func outcomeBanner(o core.Outcome) string {
	switch o {
	case core.OutcomeWon:
		return "INFESTATION CLEARED"
	case core.OutcomeDead:
		return "YOU DIED"
	case core.OutcomeTimeout:
		return "TIME UP"
	default:
		return "GAME OVER"
	}
}
