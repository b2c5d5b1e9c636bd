// cmd/tui/client.go
package main

import (
	"fmt"
	"math"
	"time"

	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/audio"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/interfaces"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/fog"
	"go-bastion-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Client — терминальный фронтенд: карта слева, командная колонка справа.
type Client struct {
	screen  tcell.Screen
	session interfaces.Session
	fog     *fog.Grid
	player  *audio.Player
	view    viewport
	snap    app.Snapshot

	cursorCol, cursorRow int
	status               string
	statusAt             time.Time
}

func NewClient(screen tcell.Screen, session interfaces.Session, grid *fog.Grid, player *audio.Player) *Client {
	w, h := screen.Size()
	c := &Client{
		screen:  screen,
		session: session,
		fog:     grid,
		player:  player,
		view:    newViewport(w, h),
	}
	c.cursorCol, c.cursorRow = c.view.cols/2, c.view.rows/2
	c.snap = session.Snapshot()
	return c
}

// Run drives the session until the player quits.
func (c *Client) Run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !c.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			c.tick()
			c.draw()
		}
	}
}

func (c *Client) tick() {
	if !c.snap.Paused && !c.snap.GameOver {
		c.fog.Regrow(config.FogRegrowRate * float64(c.snap.SpeedMultiplier))
	}
	c.session.Update()
	c.snap = c.session.Snapshot()
}

func (c *Client) setStatus(format string, args ...any) {
	c.status = fmt.Sprintf(format, args...)
	c.statusAt = time.Now()
}

func (c *Client) cursorCanvas() geom.Position {
	return c.view.toCanvas(c.cursorCol, c.cursorRow)
}

// handleEvent returns false when the client should exit.
func (c *Client) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		c.view = newViewport(w, h)
		c.cursorCol, c.cursorRow = c.view.clamp(c.cursorCol, c.cursorRow)
		c.screen.Sync()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		col, row := ev.Position()
		if c.view.contains(col, row) {
			c.cursorCol, c.cursorRow = col, row
			c.click()
		}
	case *tcell.EventKey:
		return c.handleKey(ev)
	}
	return true
}

func (c *Client) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.moveCursor(0, -1)
	case tcell.KeyDown:
		c.moveCursor(0, 1)
	case tcell.KeyLeft:
		c.moveCursor(-1, 0)
	case tcell.KeyRight:
		c.moveCursor(1, 0)
	case tcell.KeyEnter:
		c.click()
	case tcell.KeyEscape:
		c.session.ClearSelection()
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		c.removeSelected()
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	c.snap = c.session.Snapshot()
	return true
}

func (c *Client) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '5':
		t := defs.TowerTypes[r-'1']
		c.session.SelectTowerType(t)
		c.session.ClearSelection()
		def, _ := defs.Tower(t)
		c.setStatus("Selected %s (%dg)", def.Name, def.Cost)
	case r == 'q':
		return false
	case r == ' ':
		if c.session.StartWave() {
			c.setStatus("The horn sounds")
		}
	case r == 'p':
		c.session.TogglePause()
	case r == 's':
		c.setStatus("Speed %dx", c.session.ToggleSpeed())
	case r == 'u':
		c.upgradeSelected()
	case r == 'x':
		c.removeSelected()
	case r == 't':
		interfaces.CycleTargeting(c.session, &c.snap)
	case r == 'c':
		c.click()
	case r == 'h':
		c.moveCursor(-1, 0)
	case r == 'j':
		c.moveCursor(0, 1)
	case r == 'k':
		c.moveCursor(0, -1)
	case r == 'l':
		c.moveCursor(1, 0)
	case r == 'r' && c.snap.GameOver:
		c.session.Restart()
		c.setStatus("The bastion stands again")
	case r == 'n':
		c.nextLevel()
	case r == 'm':
		c.player.SetMuted(!c.player.Muted())
	}
	c.snap = c.session.Snapshot()
	return true
}

func (c *Client) moveCursor(dc, dr int) {
	c.cursorCol, c.cursorRow = c.view.clamp(c.cursorCol+dc, c.cursorRow+dr)
}

func (c *Client) click() {
	p := c.cursorCanvas()
	before := c.snap.Gold
	sel := c.session.HandleClick(p.X, p.Y)
	c.snap = c.session.Snapshot()
	if sel.Kind == app.SelectedNone && c.snap.Gold == before {
		c.setStatus("Cannot build there")
	}
}

func (c *Client) upgradeSelected() {
	id, ok := interfaces.SelectedTowerID(&c.snap)
	if !ok {
		return
	}
	if !c.session.UpgradeTower(id) {
		c.setStatus("Upgrade not possible")
	}
}

func (c *Client) removeSelected() {
	if id, ok := interfaces.SelectedTowerID(&c.snap); ok {
		c.session.RemoveTower(id)
	}
}

// nextLevel переходит на следующий открытый уровень, по кругу.
func (c *Client) nextLevel() {
	n := len(c.session.Levels())
	for i := 1; i < n; i++ {
		idx := (c.snap.LevelIndex + i) % n
		if c.session.SelectLevel(idx) {
			c.setStatus("Marching to %s", c.session.Levels()[idx].Name)
			return
		}
	}
	c.setStatus("No other stronghold is free")
}

func (c *Client) draw() {
	c.screen.Clear()
	c.drawMap()
	c.drawSidebar()
	c.screen.Show()
}

func (c *Client) put(col, row int, r rune, style tcell.Style) {
	c.screen.SetContent(col, row, r, nil, style)
}

func (c *Client) putText(col, row int, s string, style tcell.Style) int {
	for _, r := range s {
		c.put(col, row, r, style)
		col++
	}
	return col
}

func (c *Client) drawMap() {
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	for row := 0; row < c.view.rows; row++ {
		for col := 0; col < c.view.cols; col++ {
			c.put(col, row, ' ', bg)
		}
	}

	level := c.snap.Level
	if level.HasSecondaryPath() {
		c.drawPath(level.SecondaryPath, '·', bg.Foreground(rgb(config.PathDashColor)))
	}
	c.drawPath(level.Path, '░', bg.Foreground(tcell.ColorDimGray))
	c.drawMarker(level.Path.Start(), '>', rgb(config.EntryColor))
	c.drawMarker(level.Path.End(), 'Ω', rgb(config.GateColor))

	for _, t := range c.snap.Towers {
		def, _ := defs.Tower(t.Type)
		style := bg.Foreground(rgb(def.Color)).Bold(true)
		if c.snap.Selection.Kind == app.SelectedTower && c.snap.Selection.ID == t.ID {
			style = style.Reverse(true)
		}
		col, row := c.view.toCell(t.Position)
		c.put(col, row, towerGlyph(t.Type), style)
	}

	// Туман поверх местности и башен
	fogStyle := tcell.StyleDefault.Background(rgb(config.FogColor)).Foreground(tcell.ColorGray)
	for row := 0; row < c.view.rows; row++ {
		for col := 0; col < c.view.cols; col++ {
			p := c.view.toCanvas(col, row)
			r, hidden := fogShade(c.fog.At(p.X, p.Y))
			if r == 0 {
				continue
			}
			if hidden {
				c.put(col, row, r, fogStyle)
			} else {
				mainc, _, style, _ := c.screen.GetContent(col, row)
				if mainc == ' ' {
					c.put(col, row, r, style.Foreground(tcell.ColorDimGray))
				}
			}
		}
	}

	for _, e := range c.snap.Enemies {
		if e.IsDead {
			continue
		}
		if _, hidden := fogShade(c.fog.At(e.Position.X, e.Position.Y)); hidden {
			continue
		}
		def := defs.Enemy(e.Kind)
		style := bg.Foreground(rgb(def.Color))
		if e.HealthRatio() < 0.35 {
			style = style.Dim(true)
		}
		if c.snap.Selection.Kind == app.SelectedEnemy && c.snap.Selection.ID == e.ID {
			style = style.Reverse(true)
		}
		col, row := c.view.toCell(e.Position)
		c.put(col, row, enemyGlyph(e.Kind), style)
	}
	for _, p := range c.snap.Projectiles {
		col, row := c.view.toCell(p.Position)
		c.put(col, row, '*', bg.Foreground(rgb(config.ProjectileColor)))
	}

	c.drawCursor()
}

func (c *Client) drawPath(p geom.Path, r rune, style tcell.Style) {
	const step = 4.0
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		n := int(math.Ceil(geom.Distance(a, b) / step))
		for s := 0; s <= n; s++ {
			t := float64(s) / float64(max(n, 1))
			pt := geom.Position{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			col, row := c.view.toCell(pt)
			if c.view.contains(col, row) {
				c.put(col, row, r, style)
			}
		}
	}
}

func (c *Client) drawMarker(p geom.Position, r rune, fg tcell.Color) {
	col, row := c.view.clamp(c.view.toCell(p))
	c.put(col, row, r, tcell.StyleDefault.Foreground(fg).Bold(true))
}

func (c *Client) drawCursor() {
	if c.snap.GameOver {
		return
	}
	p := c.cursorCanvas()
	def, _ := defs.Tower(c.snap.SelectedType)
	bg := rgb(config.HealthFullColor)
	if !c.session.CanPlaceAt(p.X, p.Y) || c.snap.Gold < def.Cost {
		bg = rgb(config.DangerColor)
	}
	mainc, _, _, _ := c.screen.GetContent(c.cursorCol, c.cursorRow)
	if mainc == ' ' || mainc == '░' || mainc == '·' {
		mainc = '+'
	}
	c.put(c.cursorCol, c.cursorRow, mainc, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack))
}

func (c *Client) drawSidebar() {
	x := c.view.cols + 1
	_, h := c.screen.Size()
	text := tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
	dim := tcell.StyleDefault.Foreground(rgb(config.TextDimColor))
	gold := tcell.StyleDefault.Foreground(rgb(config.GoldColor))
	danger := tcell.StyleDefault.Foreground(rgb(config.DangerColor))
	width := sidebarCols - 2

	for row := 0; row < h; row++ {
		c.put(x-1, row, '│', dim)
	}

	row := 0
	line := func(s string, style tcell.Style) {
		if row < h {
			c.putText(x, row, truncate(s, width), style)
		}
		row++
	}

	line(c.snap.Level.Name, gold.Bold(true))
	line(fmt.Sprintf("Gold %-6d Wave %s", c.snap.Gold, orDash(utils.ToRoman(c.snap.Wave))), gold)
	livesStyle := text
	if c.snap.Lives <= defs.GameOverLives*4 {
		livesStyle = danger
	}
	line(fmt.Sprintf("Integrity %3d%% %s", c.snap.Lives, bar(c.snap.Lives, 100, 14)), livesStyle)
	line(c.phase()+fmt.Sprintf("  %dx", c.snap.SpeedMultiplier), text)
	row++

	for i, t := range defs.TowerTypes {
		def, _ := defs.Tower(t)
		style := dim
		if c.snap.Gold >= def.Cost {
			style = text
		}
		if c.snap.SelectedType == t {
			style = style.Reverse(true)
		}
		line(fmt.Sprintf("%d %c %-17s %4dg", i+1, towerGlyph(t), def.Name, def.Cost), style)
	}
	row++

	for _, s := range c.selectionLines() {
		line(s, text)
	}
	row++

	line("WAR COUNCIL", gold)
	for i, e := range c.snap.Advisor {
		style := text
		if i > 0 {
			style = dim
		}
		head := "Scouts, wave " + utils.ToRoman(e.Wave)
		if e.Kind == advisor.EntrySummary {
			head = "Counsel, wave " + utils.ToRoman(e.Wave)
		}
		line(head, danger)
		for _, l := range utils.WrapText(e.Text, width) {
			line(l, style)
		}
	}

	if c.status != "" && time.Since(c.statusAt) < 3*time.Second {
		c.putText(0, h-1, truncate(c.status, c.view.cols), gold)
	} else {
		c.putText(0, h-1, truncate("1-5 tower  spc wave  p pause  s speed  u up  x sell  t mode  n level  m mute  q quit", c.view.cols), dim)
	}
}

func (c *Client) phase() string {
	switch {
	case c.snap.GameOver:
		return "FALLEN - r to restart"
	case c.snap.LevelCleared && !c.snap.WaveInProgress:
		return "PASS HELD - n next"
	case c.snap.WaveInProgress && c.snap.Paused:
		return "PAUSED"
	case c.snap.WaveInProgress:
		return fmt.Sprintf("BATTLE (%d to come)", c.snap.EnemiesToSpawn)
	default:
		return "Awaiting the horn"
	}
}

func (c *Client) selectionLines() []string {
	switch c.snap.Selection.Kind {
	case app.SelectedTower:
		t, ok := c.snap.Tower(c.snap.Selection.ID)
		if !ok {
			return nil
		}
		def, _ := defs.Tower(t.Type)
		up := "MAX"
		if t.Level < defs.MaxTowerLevel {
			up = fmt.Sprintf("%dg", defs.UpgradeCost(t.Cost, t.Level))
		}
		return []string{
			fmt.Sprintf("%s Lv.%d", def.Name, t.Level),
			fmt.Sprintf("DMG %d RNG %.0f CD %dms", t.Damage, t.Range, t.Cooldown),
			fmt.Sprintf("[u] %s  [x] sell %dg", up, defs.Refund(t.TotalInvested)),
			"[t] " + t.TargetingMode.Label(),
		}
	case app.SelectedEnemy:
		e, ok := c.snap.Enemy(c.snap.Selection.ID)
		if !ok {
			return nil
		}
		def := defs.Enemy(e.Kind)
		return []string{
			def.Unit,
			def.Faction,
			fmt.Sprintf("HP %.0f/%.0f %s", math.Max(e.HP, 0), e.MaxHP, bar(int(e.HP), int(e.MaxHP), 10)),
		}
	}
	return []string{"Nothing selected"}
}

func bar(value, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := min(width, max(0, value*width/total))
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '·'
		}
	}
	return string(out)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	return string(r[:width])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
