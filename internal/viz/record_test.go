package viz

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func litCanvas() *Canvas {
	c := NewCanvas(4, 2)
	c.Paint(1, 1, "#ff0000")
	return c
}

func TestRecorderStride(t *testing.T) {
	r := NewRecorder(WithStride(3))
	c := litCanvas()
	for i := 0; i < 10; i++ {
		r.Capture(c)
	}
	// Offers 1, 4, 7 and 10 are kept.
	if r.Len() != 4 {
		t.Errorf("expected 4 frames, got %d", r.Len())
	}
}

func TestRecorderFrameLimit(t *testing.T) {
	r := NewRecorder(WithMaxFrames(2))
	c := litCanvas()

	if !r.Capture(c) {
		t.Error("room should remain after the first frame")
	}
	if r.Capture(c) {
		t.Error("recorder should report full after the second frame")
	}
	if r.Capture(c) || r.Len() != 2 {
		t.Errorf("full recorder kept capturing: %d frames", r.Len())
	}

	r.Reset()
	if r.Len() != 0 || r.Full() {
		t.Error("reset should empty the recorder")
	}
}

func TestRecorderForFPS(t *testing.T) {
	r := NewRecorder(ForFPS(60))
	if r.stride != 3 || r.delay != 5 {
		t.Errorf("expected stride 3 delay 5, got %d and %d", r.stride, r.delay)
	}
	r = NewRecorder(ForFPS(10))
	if r.stride != 1 || r.delay != 10 {
		t.Errorf("expected stride 1 delay 10, got %d and %d", r.stride, r.delay)
	}
}

func TestRecorderSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	r := NewRecorder(WithDelay(7))
	if err := r.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty recording should not write a file")
	}

	r.Capture(litCanvas())
	r.Capture(litCanvas())
	if err := r.Save(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 2 || anim.Delay[0] != 7 {
		t.Errorf("expected 2 frames with delay 7, got %d frames %v", len(anim.Image), anim.Delay)
	}
}
