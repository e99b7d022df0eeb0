package typing

import "github.com/vovakirdan/typing-arcade/internal/core"

// Theme is the scenery drawn behind a level.
type Theme struct {
	Name  string
	Color core.Color
}

// DefaultThemes is one theme per level up to the boss.
var DefaultThemes = []Theme{
	{Name: "Terminal", Color: core.ColorGreen},
	{Name: "Compiler", Color: core.ColorCyan},
	{Name: "Linker", Color: core.ColorBlue},
	{Name: "Heap", Color: core.ColorMagenta},
	{Name: "Stack", Color: core.ColorYellow},
	{Name: "Kernel", Color: core.ColorOrange},
	{Name: "Scheduler", Color: core.ColorBrightBlue},
	{Name: "Cache", Color: core.ColorBrightCyan},
	{Name: "Bus", Color: core.ColorBrightMagenta},
	{Name: "Core Dump", Color: core.ColorRed},
}

// Backdrop follows the level and picks the matching theme. Levels without a
// theme fall back to the level-1 theme.
type Backdrop struct {
	themes  []Theme
	current Theme
}

// NewBackdrop creates a backdrop positioned at level 1.
func NewBackdrop(themes []Theme) *Backdrop {
	if len(themes) == 0 {
		themes = DefaultThemes
	}
	b := &Backdrop{themes: themes}
	b.OnLevelChanged(1)
	return b
}

// OnLevelChanged selects the theme for level.
func (b *Backdrop) OnLevelChanged(level int) {
	if level >= 1 && level <= len(b.themes) {
		b.current = b.themes[level-1]
		return
	}
	b.current = b.themes[0]
}

// Current returns the active theme.
func (b *Backdrop) Current() Theme {
	return b.current
}

var _ LevelObserver = (*Backdrop)(nil)
