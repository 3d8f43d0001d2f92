package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// blend mixes two hex colors. t=0 gives from, t=1 gives to.
func blend(from, to string, t float64) lipgloss.Color {
	a, err := colorful.Hex(from)
	if err != nil {
		return lipgloss.Color(to)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(a.BlendRgb(b, util.Clamp(t, 0, 1)).Clamped().Hex())
}

func pxToCols(px float64) int {
	return int(math.Round(px / config.ColumnWidthPx))
}

func pxToRows(px float64) int {
	return int(math.Round(px / config.RowHeightPx))
}

// shiftBlock offsets block by (dx, dy) cells inside a frame that is maxDX
// wider on each side and maxDY taller on each side, so the block's outer
// size never changes while it moves.
func shiftBlock(block string, dx, dy, maxDX, maxDY int, bg lipgloss.Color) string {
	dx = util.Clamp(dx, -maxDX, maxDX)
	dy = util.Clamp(dy, -maxDY, maxDY)
	return lipgloss.NewStyle().
		MarginLeft(maxDX + dx).
		MarginRight(maxDX - dx).
		MarginTop(maxDY + dy).
		MarginBottom(maxDY - dy).
		MarginBackground(bg).
		Render(block)
}

// overlay draws patch over base with its top-left corner at (col, row).
// Parts of the patch outside base are clipped.
func overlay(base, patch string, col, row int) string {
	lines := strings.Split(base, "\n")
	for i, pl := range strings.Split(patch, "\n") {
		r := row + i
		if r < 0 || r >= len(lines) {
			continue
		}
		c := col
		if c < 0 {
			pl = ansi.TruncateLeft(pl, -c, "")
			c = 0
		}
		line := lines[r]
		w := ansi.StringWidth(line)
		if c >= w {
			continue
		}
		if pw := ansi.StringWidth(pl); c+pw > w {
			pl = ansi.Truncate(pl, w-c, "")
		}
		pw := ansi.StringWidth(pl)
		lines[r] = ansi.Truncate(line, c, "") + pl + ansi.TruncateLeft(line, c+pw, "")
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or trims s to exactly height lines.
func fitLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
