package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	charW = 8
	charH = 16

	// DefaultMaxFrames bounds a recording at roughly 75 MB of 80x24 frames.
	DefaultMaxFrames = 300
	// gifFPS is the frame rate recordings are thinned to.
	gifFPS = 20
)

// Recorder rasterises canvas frames for an animated GIF. Each braille dot
// becomes a block of charW/2 × charH/4 pixels in the cell's ink. Only every
// stride-th offered frame is kept, up to maxFrames.
type Recorder struct {
	frames    []*image.Paletted
	inks      map[string]color.Color
	stride    int
	maxFrames int
	delay     int
	offered   int
}

type RecorderOption func(*Recorder)

// WithStride keeps one frame in every n offered to Capture.
func WithStride(n int) RecorderOption {
	return func(r *Recorder) { r.stride = max(1, n) }
}

// WithMaxFrames caps the number of stored frames.
func WithMaxFrames(n int) RecorderOption {
	return func(r *Recorder) { r.maxFrames = max(1, n) }
}

// WithDelay sets the per-frame delay in hundredths of a second.
func WithDelay(d int) RecorderOption {
	return func(r *Recorder) { r.delay = max(1, d) }
}

// ForFPS keeps about gifFPS frames per second of a tick rate of fps.
func ForFPS(fps int) RecorderOption {
	return func(r *Recorder) {
		r.stride = max(1, fps/gifFPS)
		r.delay = max(1, 100*r.stride/max(1, fps))
	}
}

func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		inks:      make(map[string]color.Color),
		stride:    1,
		maxFrames: DefaultMaxFrames,
		delay:     2,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) Len() int   { return len(r.frames) }
func (r *Recorder) Full() bool { return len(r.frames) >= r.maxFrames }
func (r *Recorder) Reset()     { r.frames, r.offered = nil, 0 }

// Capture offers the canvas as a frame and reports whether the recorder
// still has room afterwards.
func (r *Recorder) Capture(c *Canvas) bool {
	r.offered++
	if r.Full() {
		return false
	}
	if (r.offered-1)%r.stride != 0 {
		return true
	}
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), palette.Plan9)
	black := uint8(img.Palette.Index(color.Black))
	for i := range img.Pix {
		img.Pix[i] = black
	}

	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if c.Grid[row][col] == blank {
				continue
			}
			idx := uint8(img.Palette.Index(r.ink(c.Ink[row][col])))
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !c.Lit(col*2+dx, row*4+dy) {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
	return !r.Full()
}

func (r *Recorder) ink(hex string) color.Color {
	if c, ok := r.inks[hex]; ok {
		return c
	}
	var out color.Color = color.White
	if c, err := colorful.Hex(hex); err == nil {
		out = c
	}
	r.inks[hex] = out
	return out
}

// Save writes the captured frames to path. Nothing is written when no
// frame was captured.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
