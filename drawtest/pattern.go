package drawtest

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/uidraw"
)

// Pattern is the uidraw.Pattern created by a Recorder.
type Pattern struct {
	Kind   uidraw.BrushType
	Args   []any          // constructor arguments, as recorded
	Color  gg.RGBA        // solid patterns only
	Stops  []gg.ColorStop // in the order they were added
	Closes int            // number of Close calls
}

// AddColorStop implements uidraw.Pattern.
func (p *Pattern) AddColorStop(offset float64, c gg.RGBA) {
	p.Stops = append(p.Stops, gg.ColorStop{Offset: offset, Color: c})
}

// Brush implements uidraw.Pattern by building the equivalent gg brush.
func (p *Pattern) Brush() gg.Brush {
	switch p.Kind {
	case uidraw.BrushTypeLinearGradient:
		a := p.floats()
		g := gg.NewLinearGradientBrush(a[0], a[1], a[2], a[3])
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	case uidraw.BrushTypeRadialGradient:
		a := p.floats()
		g := gg.NewRadialGradientBrush(a[3], a[4], a[2], a[5]).SetFocus(a[0], a[1])
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	default:
		return gg.Solid(p.Color)
	}
}

// Close implements uidraw.Pattern.
func (p *Pattern) Close() error {
	p.Closes++
	return nil
}

// Closed reports whether Close has been called at least once.
func (p *Pattern) Closed() bool {
	return p.Closes > 0
}

func (p *Pattern) floats() []float64 {
	out := make([]float64, len(p.Args))
	for i, a := range p.Args {
		out[i], _ = a.(float64)
	}
	return out
}
