package uidraw

import "github.com/gogpu/gg"

// errorColor is substituted when the renderer cannot create a pattern.
// It is deliberately conspicuous.
var errorColor = gg.RGB(1, 0, 0)

// buildPaint creates the renderer pattern for b. It never fails: pattern
// creation errors are reported as implementation bugs and replaced by an
// opaque red pattern so that drawing continues visibly.
//
// The caller owns the returned pattern and must Close it.
func (c *Context) buildPaint(b *Brush) Pattern {
	var (
		pat Pattern
		err error
	)
	switch b.Type {
	case BrushTypeSolid:
		pat, err = c.r.NewSolidPattern(gg.RGBA{R: b.R, G: b.G, B: b.B, A: b.A})
	case BrushTypeLinearGradient:
		pat, err = c.r.NewLinearPattern(b.X0, b.Y0, b.X1, b.Y1)
	case BrushTypeRadialGradient:
		// The start circle is always a point.
		pat, err = c.r.NewRadialPattern(b.X0, b.Y0, 0, b.X1, b.Y1, b.OuterRadius)
	case BrushTypeImage:
		// TODO: implement image brushes once the toolkit defines their
		// image source; until then they paint nothing.
		pat, err = c.r.NewSolidPattern(gg.Transparent)
	default:
		pat, err = c.r.NewSolidPattern(gg.Transparent)
	}

	if pat == nil || err != nil {
		if err == nil {
			err = ErrInvalidPattern
		}
		c.bugs.ImplBug("error creating pattern for %v brush: %v", b.Type, err)
		if pat != nil {
			_ = pat.Close()
		}
		pat, _ = c.r.NewSolidPattern(errorColor)
		return pat
	}

	switch b.Type {
	case BrushTypeLinearGradient, BrushTypeRadialGradient:
		for _, s := range b.Stops {
			pat.AddColorStop(s.Pos, gg.RGBA{R: s.R, G: s.G, B: s.B, A: s.A})
		}
	}
	return pat
}
