package classic

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '▀'
	BenChar      = '█'
	RobotChar    = '▓'
	DroneChar    = '▒'
	FireballChar = '*'
	CrystalChar  = '◆'
	WaveChar     = ')'
	DashChar     = '»'
	ParticleChar = '.'
)

var backgroundColors = map[string]core.Color{
	"city":   "#3a4a6b",
	"desert": "#c2a060",
	"forest": "#2f6b2f",
	"space":  "#303050",
}

const benColor core.Color = "#00e500"

// Render draws the current stage.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.stage {
	case StageSplash:
		g.drawSplash(dst)
		return
	case StageVictory:
		drawCenteredMessage(dst, []string{
			"YOU SAVED THE DAY!",
			fmt.Sprintf("Final score: %d", g.score),
			"",
			"R to play again  |  Q to quit",
		}, core.ColorYellow)
		return
	}

	g.drawWorld(dst)
	g.drawHUD(dst)

	switch g.stage {
	case StageIntro:
		level := g.Level()
		lines := []string{fmt.Sprintf("LEVEL %d", g.levelIndex+1), level.Name, ""}
		if st, ok := LookupAlien(level.NewAlien); ok {
			lines = append(lines, "New alien unlocked: "+st.Name)
		}
		drawCenteredMessage(dst, lines, core.ColorGreen)
	case StageSelect:
		g.drawSelect(dst)
	case StageComplete:
		drawCenteredMessage(dst, []string{
			"LEVEL COMPLETE",
			g.Level().Name,
			fmt.Sprintf("Score: %d", g.score),
		}, core.ColorGreen)
	default:
		if g.paused {
			drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorWhite)
		}
	}
}

// scale maps level units to cells; rows are about twice as tall as columns.
func (g *Game) scale(dst *core.Screen) (float64, float64) {
	return float64(dst.Width()) / g.cfg.View.Width, float64(dst.Height()) / g.cfg.View.Height
}

// cellBox converts a world box into the covered cells, at least one cell.
func (g *Game) cellBox(dst *core.Screen, b core.Box) core.Rect {
	sx, sy := g.scale(dst)
	x0 := int(math.Floor((b.X - g.cameraX) * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil((b.X + b.W - g.cameraX) * sx))
	y1 := int(math.Ceil((b.Y + b.H) * sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (g *Game) cell(dst *core.Screen, p core.Vec2) (int, int) {
	sx, sy := g.scale(dst)
	return int(math.Round((p.X - g.cameraX) * sx)), int(math.Round(p.Y * sy))
}

func (g *Game) drawWorld(dst *core.Screen) {
	level := g.Level()
	_, sy := g.scale(dst)
	groundRow := int(math.Round(g.cfg.Physics.GroundY * sy))
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, backgroundColors[level.Background])

	// Finish marker once the level can end.
	fx, _ := g.cell(dst, core.V(level.Width*g.cfg.View.FinishFraction, 0))
	for y := groundRow - 3; y < groundRow; y++ {
		dst.SetColor(fx, y, '|', core.ColorGray)
	}

	for _, e := range g.enemies {
		glyph := RobotChar
		if e.Kind == Drone {
			glyph = DroneChar
		}
		c := core.Color(enemyTable[e.Kind].Color)
		if e.Hit.Active() {
			c = core.ColorWhite
		}
		dst.FillRect(g.cellBox(dst, e.Box()), glyph, c)
	}

	for _, p := range g.projectiles {
		x, y := g.cell(dst, p.Pos)
		switch p.Kind {
		case Fireball:
			dst.SetColor(x, y, FireballChar, "#ff6600")
		case Crystal:
			dst.SetColor(x, y, CrystalChar, "#80ffec")
		case PunchWave:
			r := WaveChar
			if p.Vel.X < 0 {
				r = '('
			}
			dst.SetColor(x, y, r, "#ff4444")
		case SpeedDash:
			dst.SetColor(x, y, DashChar, "#00ccff")
		}
	}

	g.drawPlayer(dst)

	for _, pt := range g.particles {
		x, y := g.cell(dst, pt.Pos)
		if pt.Text != "" {
			dst.DrawTextColor(x-len(pt.Text)/2, y, pt.Text, core.Color(pt.Color))
			continue
		}
		if dst.Get(x, y) == ' ' {
			dst.SetColor(x, y, ParticleChar, core.Color(pt.Color))
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.player
	if p.Invincible.Active() && p.Shield.Expired() && g.tick%8 < 4 {
		return
	}
	c := benColor
	if st, ok := p.Stats(); ok {
		c = core.Color(st.Color)
	}
	if g.flash.Active() {
		c = core.ColorGreen
	}
	r := g.cellBox(dst, p.Box())
	dst.FillRect(r, BenChar, c)
	if p.Shield.Active() {
		dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), "#80ffec")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.player
	form := "Ben"
	if st, ok := p.Stats(); ok {
		form = st.Name
	}
	omni := "READY"
	if p.Omnitrix.Active() {
		omni = fmt.Sprintf("%.1fs", p.Omnitrix.Seconds())
	}
	hp := strings.Repeat("♥", max(p.Health, 0)) + strings.Repeat("♡", max(p.MaxHealth-p.Health, 0))
	line := fmt.Sprintf(" L%d %s  %s  Score %d  Form %s  Omnitrix %s ",
		g.levelIndex+1, g.Level().Name, hp, g.score, form, omni)
	dst.DrawText(0, 0, line)
}

func (g *Game) drawSplash(dst *core.Screen) {
	drawCenteredMessage(dst, []string{
		"OMNITRIX CLASSIC",
		"",
		"Arrows/AD move   W/Up jump   Space/J attack",
		"O transform   1-4 choose alien   P pause",
		"",
		"Press Enter to start",
	}, benColor)
}

func (g *Game) drawSelect(dst *core.Screen) {
	lines := []string{"OMNITRIX", ""}
	for i, id := range g.player.Unlocked {
		st, ok := LookupAlien(id)
		if !ok {
			continue
		}
		cursor := "  "
		if i == g.cursor {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d  %s", cursor, i+1, st.Name))
	}
	lines = append(lines, "", "1-4 or Enter to transform, Esc to cancel")
	drawCenteredMessage(dst, lines, core.ColorGreen)
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
