package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/combviz/internal/player"
	"github.com/san-kum/combviz/internal/trace"
	"github.com/san-kum/combviz/internal/viz"
)

// GIFOptions controls animated exports.
type GIFOptions struct {
	Width  int
	Height int
	// Speed uses the player's scale; the frame delay matches playback.
	Speed int
	Theme viz.Theme
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		Width:  480,
		Height: 240,
		Speed:  player.DefaultSpeed,
		Theme:  viz.ThemeIndigo,
	}
}

// palette indices
const (
	idxBackground = iota
	idxNeutral
	idxCompare
	idxSwap
	idxComplete
)

func palette(th viz.Theme) color.Palette {
	rgb := func(c string) color.Color {
		r, g, b := viz.ParseHex(c)
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return color.Palette{
		idxBackground: rgb(string(th.Background)),
		idxNeutral:    rgb(string(th.Neutral)),
		idxCompare:    rgb(string(th.Compare)),
		idxSwap:       rgb(string(th.Swap)),
		idxComplete:   rgb(string(th.Complete)),
	}
}

func roleIndex(r viz.Role) uint8 {
	switch r {
	case viz.RoleCompare:
		return idxCompare
	case viz.RoleSwap:
		return idxSwap
	case viz.RoleComplete:
		return idxComplete
	default:
		return idxNeutral
	}
}

// Frame draws one step as a paletted image.
func Frame(s trace.Step, opts GIFOptions) *image.Paletted {
	w, h := opts.Width, opts.Height
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette(opts.Theme))

	n := len(s.Array)
	if n == 0 {
		return img
	}
	lo, hi := viz.Bounds(s.Array)
	pad := h / 10
	plotH := h - 2*pad
	slot := w / n
	if slot < 1 {
		slot = 1
	}
	barW := slot * 4 / 5
	if barW < 1 {
		barW = 1
	}

	for i, v := range s.Array {
		barH := int((v - lo) / (hi - lo) * float64(plotH))
		if barH < 1 {
			barH = 1
		}
		x0 := i*slot + (slot-barW)/2
		idx := roleIndex(viz.Highlight(s, i))
		for y := h - pad - barH; y < h-pad; y++ {
			for x := x0; x < x0+barW && x < w; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	return img
}

// WriteGIF encodes every step of t as one frame of a looping animation.
func WriteGIF(w io.Writer, t trace.Trace, opts GIFOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultGIFOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Speed == 0 {
		opts.Speed = player.DefaultSpeed
	}
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeIndigo
	}
	delay := int(player.DelayFor(opts.Speed).Milliseconds() / 10)
	if delay < 2 {
		delay = 2
	}

	anim := gif.GIF{LoopCount: 0}
	for _, s := range t {
		anim.Image = append(anim.Image, Frame(s, opts))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
