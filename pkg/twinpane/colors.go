package twinpane

import (
	"path/filepath"
	"strings"

	"github.com/datatug/twinpane/pkg/files"
	"github.com/gdamore/tcell/v2"
)

const dirColor = tcell.ColorDodgerBlue

var extColors = map[tcell.Color][]string{
	tcell.ColorAqua:         {"go", "mod", "sum"},
	tcell.ColorYellow:       {"js", "ts", "jsx", "tsx"},
	tcell.ColorLightGreen:   {"py", "csv"},
	tcell.ColorGold:         {"json", "toml"},
	tcell.ColorLightYellow:  {"xml", "yaml", "yml"},
	tcell.ColorBisque:       {"md", "txt", "rst"},
	tcell.ColorGreen:        {"sh", "bash", "zsh", "xls", "xlsx"},
	tcell.ColorMediumPurple: {"jpg", "jpeg", "png", "gif", "webp", "svg"},
	tcell.ColorLightSalmon:  {"mov", "mp4", "mkv", "mp3"},
	tcell.ColorRed:          {"exe", "dll", "so"},
	tcell.ColorOrange:       {"rs", "zip", "gz", "tar"},
	tcell.ColorRosyBrown:    {"log"},
}

var colorByExt = func() map[string]tcell.Color {
	m := make(map[string]tcell.Color)
	for color, exts := range extColors {
		for _, ext := range exts {
			m[ext] = color
		}
	}
	return m
}()

func entryColor(entry files.Entry) tcell.Color {
	if entry.IsDir() {
		return dirColor
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name), "."))
	if color, ok := colorByExt[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
