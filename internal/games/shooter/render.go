package shooter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/skyfire/internal/core"
)

// Sprites are stretched or squeezed to the cell size of each entity.
var (
	playerArt = []string{" ╱▲╲ ", "◢███◣"}
	enemyArt  = []string{"╲▼╱"}
	bulletArt = []string{"│"}
)

// Render draws the HUD, the entities and the active overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	g.drawHUD(dst, s)

	v := newViewport(dst, s.Field)
	for _, e := range s.Enemies {
		drawSprite(dst, v.cells(e), enemyArt, core.ColorBrightRed)
	}
	for _, b := range s.Bullets {
		drawSprite(dst, v.cells(b), bulletArt, core.ColorBrightYellow)
	}
	drawSprite(dst, v.cells(s.Player), playerArt, core.ColorBrightCyan)

	switch s.Overlay {
	case OverlayStart:
		drawCenteredBox(dst, "S K Y F I R E", core.ColorBrightCyan,
			"Enter to start",
			"←/→ move   Space fire",
			"P pause   Q quit",
		)
	case OverlayPause:
		drawCenteredBox(dst, "PAUSED", core.ColorYellow,
			"P to resume",
			"R to restart",
		)
	case OverlayGameOver:
		drawCenteredBox(dst, "GAME OVER", core.ColorRed,
			fmt.Sprintf("Final score: %d", s.State.Score),
			fmt.Sprintf("Time: %ds", s.State.ElapsedSeconds),
			"R to restart   B back",
		)
	}
}

func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	parts := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Score: %d", s.State.Score), core.ColorBrightYellow},
		{"Lives: " + strings.Repeat("♥", s.State.Lives), core.ColorRed},
		{fmt.Sprintf("Time: %ds", s.State.ElapsedSeconds), core.ColorCyan},
	}

	x := 1
	for _, p := range parts {
		dst.DrawTextColored(x, 0, p.text, p.color)
		x += utf8.RuneCountInString(p.text) + 3
	}

	fps := fmt.Sprintf("FPS: %.0f", s.FPS)
	dst.DrawTextColored(dst.Width()-len(fps)-1, 0, fps, core.ColorGray)
}

// viewport maps world units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, f Field) viewport {
	v := viewport{sx: 1, sy: 1}
	if f.Width > 0 {
		v.sx = float64(dst.Width()) / f.Width
	}
	if f.Height > 0 {
		v.sy = float64(dst.Height()-HUDRows) / f.Height
	}
	return v
}

// cells returns the screen rectangle covered by a world box. Every entity
// covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	return core.NewRect(
		int(math.Round(b.X*v.sx)),
		int(math.Round(b.Y*v.sy))+HUDRows,
		core.Max(1, int(math.Round(b.W*v.sx))),
		core.Max(1, int(math.Round(b.H*v.sy))),
	)
}

// drawSprite samples art across r, anchored at the bottom so a squashed
// sprite keeps its base row. Spaces in the art are transparent.
func drawSprite(dst *core.Screen, r core.Rect, art []string, c core.Color) {
	for dy := 0; dy < r.H; dy++ {
		row := []rune(art[len(art)-1-(r.H-1-dy)*len(art)/r.H])
		for dx := 0; dx < r.W; dx++ {
			ch := row[dx*len(row)/r.W]
			if ch == ' ' || r.Y+dy < HUDRows {
				continue
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, c)
		}
	}
}

// drawCenteredBox draws a framed message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title string, c core.Color, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	r := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, c)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, c)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─', c)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+3+i, l)
	}
}
