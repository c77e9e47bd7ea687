package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
)

// solid glyphs are drawn as filled cells rather than text.
var solid = map[rune]bool{'▓': true, '█': true}

// BufferToSVG converts a frame to SVG. Each cell is scale wide and twice as
// tall, matching a terminal cell's aspect.
func BufferToSVG(buf *frame.Buffer, scale float64) string {
	if buf == nil || scale <= 0 {
		return ""
	}

	cw, ch := scale, scale*2
	width := float64(buf.Width) * cw
	height := float64(buf.Height) * ch

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle">
`, width, height, width, height, ch*0.8))

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			if c.Glyph == frame.Blank.Glyph || c.Glyph == 0 {
				continue
			}
			px, py := float64(x)*cw, float64(y)*ch
			if solid[c.Glyph] {
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, px, py, cw, ch, hex(c.Color)))
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, px+cw/2, py+ch*0.8, hex(c.Color), html.EscapeString(string(c.Glyph))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func hex(c palette.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
