package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/sortviz/internal/frame"
)

var ErrEmptySequence = errors.New("export: empty sequence")

type GIFOptions struct {
	Width   int
	Height  int
	FPS     int
	Palette Palette
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		Width:   640,
		Height:  360,
		FPS:     25,
		Palette: DefaultPalette(),
	}
}

// GIF encodes seq as a looping animation, one image per frame.
func GIF(w io.Writer, seq frame.Sequence, opts GIFOptions) error {
	if seq.Len() == 0 {
		return ErrEmptySequence
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultGIFOptions().Width, DefaultGIFOptions().Height
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultGIFOptions().FPS
	}
	if opts.Palette.Roles == nil {
		opts.Palette = DefaultPalette()
	}

	pal := color.Palette{opts.Palette.Background}
	index := make(map[frame.Role]uint8)
	for _, r := range frame.Roles() {
		index[r] = uint8(len(pal))
		pal = append(pal, opts.Palette.Color(r))
	}

	// gif delays are in hundredths of a second.
	delay := max(100/opts.FPS, 1)
	lo, hi := valueRange(seq)

	anim := gif.GIF{LoopCount: 0}
	for _, f := range seq {
		anim.Image = append(anim.Image, renderFrame(f, opts.Width, opts.Height, pal, index, lo, hi))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func renderFrame(f frame.Frame, w, h int, pal color.Palette, index map[frame.Role]uint8, lo, hi int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	if len(f) == 0 {
		return img
	}

	for i, e := range f {
		x0 := i * w / len(f)
		x1 := (i + 1) * w / len(f)
		if x1-x0 > 2 {
			x1--
		}
		bh := barHeight(e.Value, lo, hi, h)
		ci := index[e.Role]
		for y := h - bh; y < h; y++ {
			for x := x0; x < x1; x++ {
				img.SetColorIndex(x, y, ci)
			}
		}
	}
	return img
}
