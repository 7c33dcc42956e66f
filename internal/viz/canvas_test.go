package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != blank+0x1 {
		t.Errorf("expected dot 1 in cell 0, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank+0x80 {
		t.Errorf("expected dot 8 in cell 1, got %U", c.Grid[0][1])
	}
	if !c.Lit(3, 3) || c.Lit(1, 1) {
		t.Error("Lit disagrees with Set")
	}
}

func TestCanvasPaintKeepsInk(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Paint(0, 0, "#ff0000")
	c.Set(1, 0)

	if c.Ink[0][0] != "#ff0000" {
		t.Errorf("Set should not clear ink, got %q", c.Ink[0][0])
	}

	c.Clear()
	if c.Grid[0][0] != blank || c.Ink[0][0] != "" {
		t.Error("Clear should reset glyph and ink")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, "")
	for x := 0; x < 8; x++ {
		if !c.Lit(x, 0) {
			t.Errorf("pixel %d not lit", x)
		}
	}
}

func TestCanvasFillDisc(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillDisc(10, 10, 3, "")

	if !c.Lit(10, 10) || !c.Lit(13, 10) || !c.Lit(10, 7) {
		t.Error("disc centre or rim missing")
	}
	if c.Lit(13, 13) {
		t.Error("corner outside the disc is lit")
	}

	c.Clear()
	c.FillDisc(5, 5, 0, "")
	if !c.Lit(5, 5) {
		t.Error("a sub-pixel disc should still light its centre")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if lines[0] != strings.Repeat(string(blank), 3) {
		t.Errorf("unexpected blank row %q", lines[0])
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 3); got != "───" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := SparklineChart([]float64{1, 2, 3}, 0); got != "" {
		t.Errorf("zero width sparkline = %q", got)
	}
}
