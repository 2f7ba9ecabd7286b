package catchaos

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Visual characters for rendering
const (
	CatBody     = '█'
	CatFace     = '◕'
	GroundTop   = '▀'
	GroundFill  = '░'
	HeartFull   = '♥'
	HeartEmpty  = '♡'
	DefaultChar = '▓'
)

// hazardLook is how one archetype tag is drawn.
type hazardLook struct {
	Glyph rune
	Color core.Color
}

var hazardLooks = map[string]hazardLook{
	"plant": {Glyph: '♣', Color: core.ColorGreen},
	"box":   {Glyph: '▣', Color: core.ColorBrown},
	"ball":  {Glyph: '●', Color: core.ColorBrightYellow},
}

// lookFor returns the glyph for a tag, falling back for unknown tags.
func lookFor(tag string) hazardLook {
	if l, ok := hazardLooks[tag]; ok {
		return l
	}
	return hazardLook{Glyph: DefaultChar, Color: core.ColorGray}
}

// viewport maps world pixels onto the terminal grid below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: 1,
	}
}

// cell converts a world box to screen cells. Boxes never shrink below one cell.
func (v viewport) cell(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	y0 := int(math.Floor(y*v.sy)) + v.top
	x1 := int(math.Floor((x + w) * v.sx))
	y1 := int(math.Floor((y+h)*v.sy)) + v.top
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || g.engine == nil {
		return
	}

	world := g.cfg.World
	view := newViewport(dst, world.Width, world.Height)
	snap := g.snap

	// Ground
	ground := view.cell(0, world.Height-world.GroundHeight, world.Width, world.GroundHeight)
	dst.DrawHLineColored(0, ground.Y, dst.Width(), GroundTop, core.ColorGreen)
	for y := ground.Y + 1; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), GroundFill, core.ColorBrown)
	}

	for _, h := range snap.Hazards {
		look := lookFor(h.Archetype)
		dst.DrawRectColored(view.cell(h.X, h.Y, h.Width, h.Height), look.Glyph, look.Color)
	}

	g.drawCat(dst, view, snap.Actor)
	g.drawHUD(dst, snap)

	if g.banner != nil {
		g.drawBanner(dst)
	}

	switch snap.Phase {
	case core.PhaseIdle:
		g.drawCenteredMessage(dst, "CLUMSY CAT CHAOS", "Space or Enter to START  |  B menu")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R retry  B menu", snap.Score))
	}
}

// drawCat renders the actor with its face on the side it is heading.
func (g *Game) drawCat(dst *core.Screen, view viewport, a Actor) {
	r := view.cell(a.X, a.Y, a.Width, a.Height)
	dst.DrawRectColored(r, CatBody, core.ColorOrange)

	faceX := r.Right() - 1
	if a.VX < 0 {
		faceX = r.X
	}
	dst.SetColored(faceX, r.Y, CatFace, core.ColorBrightWhite)
}

// drawHUD renders score, level and lives on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, levelLabel(snap.Level, g.preset))

	total := core.Max(g.cfg.Scoring.StartLives, snap.Lives)
	x := dst.Width() - total*2
	for i := range total {
		heart, color := HeartEmpty, core.ColorGray
		if i < snap.Lives {
			heart, color = HeartFull, core.ColorBrightRed
		}
		dst.SetColored(x+i*2, 0, heart, color)
	}
}

// drawBanner renders the level-up banner at its tweened position.
func (g *Game) drawBanner(dst *core.Screen) {
	w := float32(dst.Width())
	center := (w - float32(utf8.RuneCountInString(g.bannerText))) / 2
	x := w - g.bannerPos*(w-center)
	dst.DrawTextColored(int(x), core.Min(2, dst.Height()-1), g.bannerText, core.ColorBrightMagenta)
}

// levelLabel is the HUD level text; fixed mode never progresses, so it says so.
func levelLabel(level int, preset config.DifficultyPreset) string {
	if config.IsFixedPreset(preset) {
		return fmt.Sprintf("LEVEL %d (fixed)", level)
	}
	return fmt.Sprintf("LEVEL %d", level)
}

func levelBanner(level int) string {
	return fmt.Sprintf("LEVEL UP! %d", level)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
