package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#3C3C3C"))

// gridSize is the terminal pixel grid the canvas is sampled down to: one
// pixel per column across, two per row down.
func gridSize() (int, int) {
	return canvasWidth / columnUnits, 2 * canvasHeight / rowUnits
}

// downsample scales the full-resolution frame to the terminal pixel grid.
func downsample(src image.Image) *image.RGBA {
	w, h := gridSize()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func cellStyle(top, bottom color.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipColor(top)).Background(lipColor(bottom))
}

// renderCells turns a pixel grid into terminal rows, two pixel rows per line.
// Neighbouring cells with the same colors share one styled span.
func renderCells(img *image.RGBA) []string {
	b := img.Bounds()
	rows := make([]string, 0, b.Dy()/2)

	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var sb strings.Builder
		run := 0
		var top, bottom color.RGBA
		flush := func() {
			if run > 0 {
				sb.WriteString(cellStyle(top, bottom).Render(strings.Repeat(halfBlock, run)))
			}
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			t, bt := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			if run > 0 && t == top && bt == bottom {
				run++
				continue
			}
			flush()
			top, bottom, run = t, bt, 1
		}
		flush()
		rows = append(rows, sb.String())
	}
	return rows
}

func (m model) titleBar(width int) string {
	held := ""
	if m.state.Input.Held {
		held = " ●"
	}
	count := fmt.Sprintf("%d", m.state.Board.Len())
	if limit := m.state.Board.Limit(); limit > 0 {
		count = fmt.Sprintf("%d/%d", m.state.Board.Len(), limit)
	}
	text := fmt.Sprintf(" %s  %s%s  squares: %s", windowTitle, m.state.Input.Mode, held, count)
	return titleStyle.Width(width).Render(text)
}

func (m model) View() string {
	m.state.Board.Render(m.surface)
	rows := renderCells(downsample(m.surface.Frame()))

	gridW, _ := gridSize()
	lines := make([]string, 0, len(rows)+headerRows)
	lines = append(lines, m.titleBar(gridW))
	lines = append(lines, rows...)
	out := strings.Join(lines, "\n")

	crop := lipgloss.NewStyle()
	if m.width > 0 {
		crop = crop.MaxWidth(m.width)
	}
	if m.height > 0 {
		crop = crop.MaxHeight(m.height)
	}
	return crop.Render(out)
}
