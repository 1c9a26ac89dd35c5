package sprites

import (
	_ "embed"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

//go:embed defaults/sheet.yaml
var defaultSheetYAML []byte

// SpritesLoadedMsg is delivered when an asynchronous load finishes.
// Sheet is always usable: on error it holds the built-in sheet.
type SpritesLoadedMsg struct {
	Sheet *Sheet
	Path  string
	Err   error
}

// Default returns the built-in sprite sheet.
func Default() *Sheet {
	sheet, err := Parse(defaultSheetYAML)
	if err != nil {
		panic(fmt.Sprintf("sprites: embedded sheet: %v", err))
	}
	return sheet
}

// Load reads a sprite sheet from path. An empty path selects the built-in
// sheet.
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: reading %s: %w", path, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprites: parsing %s: %w", path, err)
	}
	return sheet, nil
}

// LoadCmd loads the sheet at path off the UI goroutine. A failed load
// reports the error together with the built-in sheet.
func LoadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		sheet, err := Load(path)
		if err != nil {
			return SpritesLoadedMsg{Sheet: Default(), Path: path, Err: err}
		}
		return SpritesLoadedMsg{Sheet: sheet, Path: path}
	}
}
