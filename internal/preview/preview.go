// Package preview renders a frame as colored text for terminals.
//
// Every terminal cell shows two vertically stacked pixels with the upper
// half block character: the foreground color is the upper pixel and the
// background color the lower one.
package preview

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

const upperHalf = "▀"

// cell is the pair of pixels shown by one terminal cell. bottom is unset
// on the last row of an image with an odd height.
type cell struct {
	top, bottom color.RGBA
	hasBottom   bool
}

func (c cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(c.top)
	if c.hasBottom {
		s = s.Background(c.bottom)
	}
	return s
}

// Render converts img into lines of half-block cells joined by "\n".
// Consecutive cells with the same colors are rendered as one styled run.
// An empty image returns "".
func Render(img image.Image) string {
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	lines := make([]string, 0, (b.Dy()+1)/2)
	row := make([]cell, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for i := range row {
			x := b.Min.X + i
			c := cell{top: rgba(img.At(x, y))}
			if y+1 < b.Max.Y {
				c.bottom, c.hasBottom = rgba(img.At(x, y+1)), true
			}
			row[i] = c
		}
		lines = append(lines, renderRow(row))
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell) string {
	var sb strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x] == row[start] {
			continue
		}
		sb.WriteString(row[start].style().Render(strings.Repeat(upperHalf, x-start)))
		start = x
	}
	return sb.String()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
