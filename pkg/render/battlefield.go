// pkg/render/battlefield.go
package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Ghost describes the tower preview under the cursor.
type Ghost struct {
	Visible    bool
	Position   geom.Position
	Type       defs.TowerType
	Placeable  bool // ответ CanPlaceAt
	Affordable bool
}

// BattlefieldRenderer draws the canvas part of the screen: paths, entities,
// fog and overlays.
type BattlefieldRenderer struct {
	levelID  string
	mapImage *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	fontFace font.Face
}

func NewBattlefieldRenderer() *BattlefieldRenderer {
	return &BattlefieldRenderer{
		mapImage: ebiten.NewImage(config.CanvasWidth, config.CanvasHeight),
		vs:       make([]ebiten.Vertex, 0, 256),
		is:       make([]uint16, 0, 512),
		fontFace: basicfont.Face7x13,
	}
}

// RenderMapImage пререндерит фон уровня: землю, оба пути, вход и ворота.
func (r *BattlefieldRenderer) RenderMapImage(level defs.LevelDefinition) {
	r.levelID = level.ID
	r.mapImage.Fill(config.BackgroundColor)

	if level.HasSecondaryPath() {
		r.strokePolyline(r.mapImage, level.SecondaryPath, config.SecondaryPathWidth, config.SecondaryPathColor)
		dashPolyline(r.mapImage, level.SecondaryPath, 8, 12, config.PathDashColor)
	}
	r.strokePolyline(r.mapImage, level.Path, config.PathWidth, config.PathColor)
	dashPolyline(r.mapImage, level.Path, 8, 12, config.PathDashColor)

	entry, gate := level.Path.Start(), level.Path.End()
	vector.DrawFilledCircle(r.mapImage, float32(entry.X), float32(entry.Y), 10, Fade(config.EntryColor, 0.6), true)
	vector.DrawFilledCircle(r.mapImage, float32(gate.X), float32(gate.Y), 16, Fade(config.GateColor, 0.6), true)
}

// Draw renders snap onto screen. Only the canvas rectangle is touched.
func (r *BattlefieldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot, fog *Fog, ghost Ghost) {
	canvas := screen.SubImage(image.Rect(0, 0, config.CanvasWidth, config.CanvasHeight)).(*ebiten.Image)
	if snap.Level.ID != r.levelID {
		r.RenderMapImage(snap.Level)
	}
	canvas.DrawImage(r.mapImage, nil)

	for i := range snap.Enemies {
		r.drawEnemy(canvas, &snap.Enemies[i])
	}
	for i := range snap.Towers {
		r.drawTower(canvas, &snap.Towers[i])
	}
	if fog != nil {
		fog.Draw(canvas)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(canvas, float32(p.Position.X), float32(p.Position.Y), config.ProjectileRadius+2, Fade(config.ProjectileColor, 0.3), true)
		vector.DrawFilledCircle(canvas, float32(p.Position.X), float32(p.Position.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}

	r.drawSelection(canvas, snap)
	if ghost.Visible && snap.Selection.Kind == app.SelectedNone {
		r.drawGhost(canvas, snap.Level, ghost)
	}
}

func (r *BattlefieldRenderer) drawEnemy(dst *ebiten.Image, e *component.Enemy) {
	if e.IsDead {
		return
	}
	def := defs.Enemy(e.Kind)
	radius := float32(config.EnemyRadius)
	if e.Kind == defs.EnemyBoss {
		radius = config.BossRadius
	}
	x, y := float32(e.Position.X), float32(e.Position.Y)
	fill := def.Color
	if e.IsReinforcement {
		fill = DarkenColor(fill)
	}
	vector.DrawFilledCircle(dst, x, y, radius, fill, true)
	vector.StrokeCircle(dst, x, y, radius, 1, color.White, true)

	// Полоса здоровья над врагом
	bx := x - config.HealthBarWidth/2
	by := y - radius - 8
	vector.DrawFilledRect(dst, bx, by, config.HealthBarWidth, config.HealthBarHeight, DarkenColor(config.HealthLowColor), false)
	vector.DrawFilledRect(dst, bx, by, float32(config.HealthBarWidth*e.HealthRatio()), config.HealthBarHeight, HealthColor(e.HealthRatio()), false)
}

func (r *BattlefieldRenderer) drawTower(dst *ebiten.Image, t *component.Tower) {
	def, _ := defs.Tower(t.Type)
	x, y := float32(t.Position.X), float32(t.Position.Y)
	outer := float32(config.TowerRadius + 3)
	inner := float32(config.TowerRadius - 1)
	vector.DrawFilledRect(dst, x-outer, y-outer, outer*2, outer*2, config.TowerBaseColor, false)
	vector.DrawFilledRect(dst, x-inner, y-inner, inner*2, inner*2, def.Color, false)
	drawCenteredText(dst, r.fontFace, strconv.Itoa(t.Level), int(x), int(y), color.White)
}

func (r *BattlefieldRenderer) drawSelection(dst *ebiten.Image, snap *app.Snapshot) {
	switch snap.Selection.Kind {
	case app.SelectedTower:
		t, ok := snap.Tower(snap.Selection.ID)
		if !ok {
			return
		}
		x, y := float32(t.Position.X), float32(t.Position.Y)
		vector.DrawFilledCircle(dst, x, y, float32(t.Range), config.RangeColor, true)
		dashCircle(dst, t.Position, t.Range, Fade(config.GoldColor, 0.5))
		side := float32(config.TowerRadius + 6)
		vector.StrokeRect(dst, x-side, y-side, side*2, side*2, config.StrokeWidth, config.SelectionColor, false)
	case app.SelectedEnemy:
		e, ok := snap.Enemy(snap.Selection.ID)
		if !ok {
			return
		}
		vector.StrokeCircle(dst, float32(e.Position.X), float32(e.Position.Y), config.BossRadius+4, config.StrokeWidth, config.SelectionColor, true)
	}
}

func (r *BattlefieldRenderer) drawGhost(dst *ebiten.Image, level defs.LevelDefinition, g Ghost) {
	def, ok := defs.Tower(g.Type)
	if !ok {
		return
	}
	fill := Fade(def.Color, 0.4)
	ring := Fade(color.RGBA{255, 255, 255, 255}, 0.6)
	switch {
	case !g.Placeable || !g.Affordable:
		fill = config.InvalidColor
		ring = config.DangerColor
	case overlapsRoad(level, g.Position):
		// Допустимо по правилу середин сегментов, но башня задевает дорогу.
		fill = config.WarningColor
	}
	x, y := float32(g.Position.X), float32(g.Position.Y)
	side := float32(config.TowerRadius + 3)
	vector.DrawFilledRect(dst, x-side, y-side, side*2, side*2, fill, false)
	dashCircle(dst, g.Position, def.Range, ring)
}

// overlapsRoad reports whether a tower at pos would visually cover a path.
func overlapsRoad(level defs.LevelDefinition, pos geom.Position) bool {
	if level.Path.DistanceTo(pos) < config.PathWidth/2+config.TowerRadius {
		return true
	}
	return level.HasSecondaryPath() && level.SecondaryPath.DistanceTo(pos) < config.SecondaryPathWidth/2+config.TowerRadius
}

func (r *BattlefieldRenderer) strokePolyline(dst *ebiten.Image, p geom.Path, width float32, c color.RGBA) {
	if len(p) < 2 {
		return
	}
	path := vector.Path{}
	for i, pt := range p {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	paintVertices(r.vs, c)
	dst.DrawTriangles(r.vs, r.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// dashPolyline рисует пунктир вдоль пути, не сбрасывая фазу на поворотах.
func dashPolyline(dst *ebiten.Image, p geom.Path, dash, gap float64, c color.RGBA) {
	on, left := true, dash
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		seg := geom.Distance(a, b)
		if seg == 0 {
			continue
		}
		ux, uy := (b.X-a.X)/seg, (b.Y-a.Y)/seg
		for pos := 0.0; pos < seg; {
			step := math.Min(left, seg-pos)
			if on {
				vector.StrokeLine(dst,
					float32(a.X+ux*pos), float32(a.Y+uy*pos),
					float32(a.X+ux*(pos+step)), float32(a.Y+uy*(pos+step)),
					config.StrokeWidth, c, true)
			}
			pos += step
			left -= step
			if left <= 0 {
				on = !on
				if on {
					left = dash
				} else {
					left = gap
				}
			}
		}
	}
}

func dashCircle(dst *ebiten.Image, center geom.Position, radius float64, c color.RGBA) {
	const segments = 48
	for i := 0; i < segments; i += 2 {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		vector.StrokeLine(dst,
			float32(center.X+radius*math.Cos(a0)), float32(center.Y+radius*math.Sin(a0)),
			float32(center.X+radius*math.Cos(a1)), float32(center.Y+radius*math.Sin(a1)),
			1, c, true)
	}
}

// drawCenteredText выводит строку с центром в (x, y).
func drawCenteredText(dst *ebiten.Image, face font.Face, s string, x, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x-b.Dx()/2, y-b.Min.Y-b.Dy()/2, c)
}
