package uidraw

import (
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Style is the theme handle the window system hands to a paint callback.
// A Context borrows it and never modifies it.
type Style struct {
	Foreground gg.RGBA
	Background gg.RGBA

	// Scale is the device pixels per logical pixel.
	Scale float64
}

// DefaultStyle returns a plain black-on-white style at scale 1.
func DefaultStyle() *Style {
	return &Style{
		Foreground: gg.FromColor(colornames.Black),
		Background: gg.FromColor(colornames.White),
		Scale:      1,
	}
}
