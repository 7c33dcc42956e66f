// Package export writes rendered frames and sampled orbits as SVG.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/spaceengine/internal/viz"
	"github.com/san-kum/spaceengine/internal/vmath"
)

const (
	background   = "#0a0a0a"
	defaultInk   = "#00ff00"
	trackPadding = 0.1
)

// Track is one body's sampled path.
type Track struct {
	Name   string
	Color  colorful.Color
	Points []vmath.Vec3
}

// CanvasToSVG draws every lit braille dot of canvas as a circle filled
// with its cell's ink. scale is the size of one sub-pixel in SVG units.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelWidth(), canvas.PixelHeight()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	header(&sb, width, height)

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			ink := canvas.Ink[y/4][x/2]
			if ink == "" {
				ink = defaultInk
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, ink)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TracksToSVG plots tracks seen from above, x to the right and z down,
// on a shared equal-aspect scale. Tracks with fewer than two points are
// skipped and an empty string is returned when none remain.
func TracksToSVG(tracks []Track, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	drawn := 0
	for _, t := range tracks {
		if len(t.Points) < 2 {
			continue
		}
		drawn++
		for _, p := range t.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
		}
	}
	if drawn == 0 {
		return ""
	}

	span := math.Max(maxX-minX, maxZ-minZ)
	if span == 0 {
		span = 1
	}
	span *= 1 + 2*trackPadding
	cx, cz := (minX+maxX)/2, (minZ+maxZ)/2
	px := float64(min(width, height)) / span

	toScreen := func(p vmath.Vec3) (float64, float64) {
		return float64(width)/2 + (p.X-cx)*px, float64(height)/2 + (p.Z-cz)*px
	}

	var sb strings.Builder
	header(&sb, float64(width), float64(height))

	for _, t := range tracks {
		if len(t.Points) < 2 {
			continue
		}
		stroke := t.Color.Clamped().Hex()
		fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"", stroke)
		for i, p := range t.Points {
			x, y := toScreen(p)
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")

		x, y := toScreen(t.Points[len(t.Points)-1])
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", x, y, stroke)
		fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-family=\"monospace\" font-size=\"11\">%s</text>\n",
			x+5, y-5, stroke, escape(t.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }
