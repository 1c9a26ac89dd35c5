// Package sprites loads the glyph art used to draw crossing tiles and
// entities in the terminal.
package sprites

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"gopkg.in/yaml.v3"
)

// PlaceholderRune marks the center of a sprite that is missing from the sheet.
const PlaceholderRune = '?'

// ErrInvalidSheet is returned for sheets that cannot be used for drawing.
var ErrInvalidSheet = errors.New("invalid sprite sheet")

// yamlSheet is the on-disk layout of a sprite sheet.
type yamlSheet struct {
	Name       string                `yaml:"name"`
	CellWidth  int                   `yaml:"cell_width"`
	CellHeight int                   `yaml:"cell_height"`
	Sprites    map[string]yamlSprite `yaml:"sprites"`
}

type yamlSprite struct {
	Color  string   `yaml:"color"`
	Opaque bool     `yaml:"opaque"`
	Rows   []string `yaml:"rows"`
}

// Sprite is a fixed-size block of runes drawn in one color.
type Sprite struct {
	Rows   [][]rune
	Color  core.Color
	Opaque bool // spaces are drawn instead of skipped
}

// Draw puts the sprite's top-left corner at (x, y). Cells outside the
// screen are clipped by the screen.
func (s Sprite) Draw(scr *core.Screen, x, y int) {
	for dy, row := range s.Rows {
		for dx, r := range row {
			if r == ' ' && !s.Opaque {
				continue
			}
			scr.SetColored(x+dx, y+dy, r, s.Color)
		}
	}
}

// Sheet is a named set of sprites that share one cell size.
type Sheet struct {
	Name    string
	CellW   int
	CellH   int
	sprites map[string]Sprite
}

// Parse decodes a YAML sprite sheet. Rows are padded with spaces or cut to
// the cell size.
func Parse(data []byte) (*Sheet, error) {
	var ys yamlSheet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.CellWidth <= 0 || ys.CellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrInvalidSheet, ys.CellWidth, ys.CellHeight)
	}

	sheet := &Sheet{
		Name:    ys.Name,
		CellW:   ys.CellWidth,
		CellH:   ys.CellHeight,
		sprites: make(map[string]Sprite, len(ys.Sprites)),
	}
	for id, sp := range ys.Sprites {
		if len(sp.Rows) > ys.CellHeight {
			return nil, fmt.Errorf("%w: sprite %q has %d rows, cell height is %d", ErrInvalidSheet, id, len(sp.Rows), ys.CellHeight)
		}
		sheet.sprites[id] = Sprite{
			Rows:   fitRows(sp.Rows, ys.CellWidth, ys.CellHeight),
			Color:  core.ParseColor(sp.Color),
			Opaque: sp.Opaque,
		}
	}
	return sheet, nil
}

func fitRows(rows []string, w, h int) [][]rune {
	out := make([][]rune, h)
	for y := range out {
		line := make([]rune, w)
		for x := range line {
			line[x] = ' '
		}
		if y < len(rows) {
			copy(line, []rune(rows[y]))
		}
		out[y] = line
	}
	return out
}

// Lookup returns the sprite with the given id.
func (s *Sheet) Lookup(id string) (Sprite, bool) {
	sp, ok := s.sprites[id]
	return sp, ok
}

// Sprite returns the sprite with the given id, or a placeholder box with a
// question mark when the sheet has no such sprite.
func (s *Sheet) Sprite(id string) Sprite {
	if sp, ok := s.Lookup(id); ok {
		return sp
	}
	return s.Placeholder()
}

// Placeholder returns the box drawn for missing sprites.
func (s *Sheet) Placeholder() Sprite {
	rows := make([][]rune, s.CellH)
	for y := range rows {
		line := make([]rune, s.CellW)
		for x := range line {
			switch {
			case (y == 0 || y == s.CellH-1) && (x == 0 || x == s.CellW-1):
				line[x] = '+'
			case y == 0 || y == s.CellH-1:
				line[x] = '-'
			case x == 0 || x == s.CellW-1:
				line[x] = '|'
			default:
				line[x] = ' '
			}
		}
		rows[y] = line
	}
	rows[s.CellH/2][s.CellW/2] = PlaceholderRune
	return Sprite{Rows: rows, Color: core.ColorMagenta, Opaque: true}
}

// IDs returns the sprite ids in sorted order.
func (s *Sheet) IDs() []string {
	ids := make([]string, 0, len(s.sprites))
	for id := range s.sprites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Missing returns the ids from want that the sheet does not define.
func (s *Sheet) Missing(want []string) []string {
	var missing []string
	for _, id := range want {
		if _, ok := s.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
