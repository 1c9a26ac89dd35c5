package crossing

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/core"
)

// spriteIDs lists every sprite the renderer asks the sheet for.
var spriteIDs = []string{
	core.TileWater.Sprite(), core.TileStone.Sprite(), core.TileGrass.Sprite(),
	"char-boy", "enemy-bug", "enemy-bug-left",
	"gem-blue", "gem-green", "gem-orange",
}

// Layout rows around the board
const (
	hudRows    = 1
	promptRows = 1
)

// Render draws the current frame to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	f := g.world.Frame()

	boardW := f.Cols * g.sheet.CellW
	boardH := f.Rows * g.sheet.CellH
	minW, minH := boardW, boardH+hudRows+promptRows
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := hudRows

	g.renderHUD(dst, f, ox, boardW)
	g.renderTiles(dst, f, ox, oy)
	g.renderSprites(dst, f, ox, oy)
	g.renderOverlay(dst, f, oy+boardH)
}

// renderHUD draws score, level and remaining gems above the board.
func (g *Game) renderHUD(dst *platformcore.Screen, f core.Frame, ox, boardW int) {
	dst.DrawTextColored(ox, 0, fmt.Sprintf("Score: %d", f.Score), platformcore.ColorBrightYellow)

	levelText := fmt.Sprintf("Level %d", f.Level)
	if f.Endless {
		levelText = "Endless"
	}
	dst.DrawTextCentered(0, levelText)

	if !f.Endless {
		gemsText := fmt.Sprintf("Gems: %d", f.GemsLeft)
		dst.DrawText(ox+boardW-len(gemsText), 0, gemsText)
	}
}

func (g *Game) renderTiles(dst *platformcore.Screen, f core.Frame, ox, oy int) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			sp := g.sheet.Sprite(f.TileAt(row, col).Sprite())
			sp.Draw(dst, ox+col*g.sheet.CellW, oy+row*g.sheet.CellH)
		}
	}
}

// renderSprites draws gems, enemies and the player, scaling pixel
// positions to terminal cells.
func (g *Game) renderSprites(dst *platformcore.Screen, f core.Frame, ox, oy int) {
	for _, s := range f.Sprites {
		x := ox + int(math.Round(s.X/f.TileW*float64(g.sheet.CellW)))
		y := oy + int(math.Round(s.Y/f.TileH*float64(g.sheet.CellH)))
		g.sheet.Sprite(s.ID).Draw(dst, x, y)
	}
}

// renderOverlay draws the state message below the board, and a box over it
// in the end states.
func (g *Game) renderOverlay(dst *platformcore.Screen, f core.Frame, promptY int) {
	switch f.State {
	case core.StateInitialising, core.StateRunning:
		if f.GraceLeft > 0 {
			dst.DrawTextCentered(promptY, fmt.Sprintf("Get ready... %.1fs", f.GraceLeft))
		} else if !f.InputAllowed {
			dst.DrawTextCentered(promptY, "Get ready...")
		} else {
			dst.DrawTextCentered(promptY, "Cross the lanes, grab the gems")
		}

	case core.StateLevelWon:
		prompt := ""
		if f.BlinkOn {
			prompt = "Press ENTER to continue"
		}
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d CLEAR!", f.Level), fmt.Sprintf("Score: %d", f.Score), prompt)

	case core.StateGameOver:
		prompt := ""
		if f.BlinkOn {
			prompt = "Press R to restart"
		}
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d", f.Score), prompt)
	}
}

// drawCenteredBox draws a centered message box. An empty prompt leaves its
// line blank.
func (g *Game) drawCenteredBox(dst *platformcore.Screen, title, subtitle, prompt string) {
	w := dst.Width()
	h := dst.Height()

	textW := max(len(title), len(subtitle), len("Press ENTER to continue"))
	boxW := textW + 4
	boxH := 6
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, platformcore.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+2, subtitle)
	if prompt != "" {
		dst.DrawText(boxX+(boxW-len(prompt))/2, boxY+4, prompt)
	}
}
