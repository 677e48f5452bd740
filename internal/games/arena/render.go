package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/sim"
)

// Glyphs
const (
	WallChar     = '·'
	PlayerChar   = '@'
	ShieldChar   = 'o'
	BulletChar   = '•'
	EnemyShot    = '∗'
	RingChar     = '░'
	WaveChar     = '≈'
	TrailChar    = '~'
	ParticleChar = '.'
	BossChar     = '█'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	StarFull     = '★'
	StarEmpty    = '☆'
)

var enemyGlyphs = map[defs.EnemyKind]rune{
	defs.Robot:   'R',
	defs.Drone:   'D',
	defs.Turret:  'T',
	defs.Charger: 'C',
}

// Render draws the arena, its occupants and the overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		msg := "no mission loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, []string{"CANNOT START MISSION", msg, "Q to quit"}, core.ColorRed)
		return
	}

	g.drawWall(dst)
	g.drawProjectiles(dst)
	g.drawEnemies(dst)
	g.drawBoss(dst)
	g.drawPlayer(dst)
	g.drawParticles(dst)
	g.drawHUD(dst)

	switch {
	case g.engine.Finished():
		g.drawComplete(dst)
	case g.selecting:
		g.drawSelect(dst)
	case g.engine.Paused():
		drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorWhite)
	case g.reviveFlash.Active():
		dst.DrawTextCentered(dst.Height()/3, " REVIVED ", core.ColorYellow)
	}
}

// cell maps a world point onto the grid. The camera works in half-rows.
func (g *Game) cell(p core.Vec2) (int, int) {
	s := g.engine.Camera().WorldToScreen(p)
	return int(math.Round(s.X)), int(math.Round(s.Y / 2))
}

func (g *Game) drawWall(dst *core.Screen) {
	r := g.mission.ArenaRadius
	steps := max(int(2*math.Pi*r*g.engine.Camera().Scale), 64)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := g.cell(core.FromAngle(a, r))
		dst.SetColor(x, y, WallChar, core.ColorGray)
	}
}

// fillCircle paints every cell whose centre lies within radius of pos.
// At least the centre cell is painted.
func (g *Game) fillCircle(dst *core.Screen, pos core.Vec2, radius float64, r rune, c core.Color) {
	cx, cy := g.cell(pos)
	scale := g.engine.Camera().Scale
	rx := radius * scale
	ry := radius * scale / 2
	if rx < 1 || ry < 0.5 {
		dst.SetColor(cx, cy, r, c)
		return
	}
	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny <= 1 {
				dst.SetColor(cx+dx, cy+dy, r, c)
			}
		}
	}
}

func (g *Game) drawProjectiles(dst *core.Screen) {
	for _, p := range g.engine.Projectiles() {
		if !p.Alive {
			continue
		}
		c := core.Color(p.Color)
		switch p.Kind {
		case sim.KindAOERing:
			g.fillCircle(dst, p.Pos, p.Radius, RingChar, c)
		case sim.KindWave:
			g.fillCircle(dst, p.Pos, p.Radius, WaveChar, c)
		case sim.KindDashTrail:
			x, y := g.cell(p.Pos)
			dst.SetColor(x, y, TrailChar, c)
		default:
			x, y := g.cell(p.Pos)
			if p.FromPlayer {
				dst.SetColor(x, y, BulletChar, c)
			} else {
				dst.SetColor(x, y, EnemyShot, c)
			}
		}
	}
}

func (g *Game) drawEnemies(dst *core.Screen) {
	for _, e := range g.engine.Enemies() {
		if !e.Alive {
			continue
		}
		glyph, ok := enemyGlyphs[e.Kind]
		if !ok {
			glyph = '?'
		}
		c := core.Color(e.Def.Color)
		if e.Hit.Active() {
			c = core.ColorWhite
		}
		x, y := g.cell(e.Pos)
		dst.SetColor(x, y, glyph, c)
		if e.AI == sim.AITelegraph {
			dst.SetColor(x, y-1, '!', core.ColorRed)
		}
	}
}

func (g *Game) drawBoss(dst *core.Screen) {
	b := g.engine.Boss()
	if b == nil || !b.Alive {
		return
	}
	c := core.Color(b.Def.Color)
	if b.Hit.Active() {
		c = core.ColorWhite
	}
	g.fillCircle(dst, b.Pos, b.Radius, BossChar, c)
	if b.TelegraphPos != nil {
		x, y := g.cell(*b.TelegraphPos)
		dst.SetColor(x, y, 'X', core.ColorRed)
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.engine.Player()
	// Blink while invincible.
	if p.Invincible.Active() && g.tick%8 < 4 {
		return
	}
	if p.Shield.Active() {
		x, y := g.cell(p.Pos)
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			dst.SetColor(x+d[0], y+d[1], ShieldChar, core.Color(p.Alien.AccentColor))
		}
	}
	x, y := g.cell(p.Pos)
	dst.SetColor(x, y, PlayerChar, core.Color(p.Alien.Color))
}

func (g *Game) drawParticles(dst *core.Screen) {
	ps := g.engine.Particles()
	for _, pt := range ps.Particles {
		x, y := g.cell(pt.Pos)
		if dst.Get(x, y) == ' ' {
			dst.SetColor(x, y, ParticleChar, core.Color(pt.Color))
		}
	}
	for _, t := range ps.Texts {
		x, y := g.cell(t.Pos)
		dst.DrawTextColor(x-len(t.Text)/2, y, t.Text, core.Color(t.Color))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.hud
	alien, err := defs.LookupAlien(h.CurrentAlien)
	name := string(h.CurrentAlien)
	color := core.ColorWhite
	if err == nil {
		name = alien.Name
		color = core.Color(alien.Color)
	}

	dst.DrawTextColor(1, 0, name, color)
	x := 2 + len(name)
	dst.DrawTextColor(x, 0, hearts(h.Health, h.MaxHealth), core.ColorRed)
	x += h.MaxHealth + 1

	status := fmt.Sprintf("Score %d  Wave %d/%d  Special %s", h.Score, h.Wave, h.TotalWaves, bar(1-h.SpecialCooldownPct, 8))
	dst.DrawText(x, 0, status)

	title := g.mission.Name
	dst.DrawTextColor(dst.Width()-len([]rune(title))-1, 0, title, core.ColorGray)

	if h.HasBoss {
		line := fmt.Sprintf("%s %s %d/%d", h.BossName, bar(ratio(h.BossHealth, h.BossMaxHealth), 30), h.BossHealth, h.BossMaxHealth)
		dst.DrawTextCentered(1, line, core.ColorMagenta)
	}
}

func (g *Game) drawSelect(dst *core.Screen) {
	lines := []string{"OMNITRIX", ""}
	current := g.engine.Player().Alien.ID
	for i, id := range g.engine.Unlocked() {
		alien, err := defs.LookupAlien(id)
		if err != nil {
			continue
		}
		cursor := "  "
		if i == g.cursor {
			cursor = "> "
		}
		mark := ""
		if id == current {
			mark = " (current)"
		}
		lines = append(lines, fmt.Sprintf("%s%d  %-12s%s", cursor, i+1, alien.Name, mark))
	}
	lines = append(lines, "", "1-9 or Enter to transform, Esc to cancel")
	drawCenteredMessage(dst, lines, core.ColorGreen)
}

func (g *Game) drawComplete(dst *core.Screen) {
	out, _ := g.engine.Result()
	lines := []string{
		"MISSION COMPLETE",
		g.mission.Name,
		"",
		stars(out.Stars),
		fmt.Sprintf("Score: %d", out.Score),
	}
	for _, id := range g.mission.UnlockAliens {
		if alien, err := defs.LookupAlien(id); err == nil && !g.opts.Save.HasAlien(id) {
			lines = append(lines, "New alien: "+alien.Name)
		}
	}
	lines = append(lines, "", "R to replay  |  Q to quit")
	drawCenteredMessage(dst, lines, core.ColorGreen)
}

func hearts(health, maxHealth int) string {
	health = core.Clamp(health, 0, maxHealth)
	return strings.Repeat(string(HeartFull), health) + strings.Repeat(string(HeartEmpty), maxHealth-health)
}

func stars(n int) string {
	n = core.Clamp(n, 0, 3)
	return strings.Repeat(string(StarFull), n) + strings.Repeat(string(StarEmpty), 3-n)
}

func ratio(a, b int) float64 {
	if b <= 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// bar renders a fill fraction as a fixed-width gauge.
func bar(frac float64, width int) string {
	filled := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawCenteredMessage draws a boxed block of centered lines.
func drawCenteredMessage(dst *core.Screen, lines []string, c core.Color) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
