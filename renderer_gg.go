package uidraw

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidPattern is returned by GGRenderer when a pattern is requested
// with non-finite coordinates or colors, or a negative radius.
var ErrInvalidPattern = errors.New("uidraw: invalid pattern")

// GGState is a snapshot of the graphics state a GGRenderer tracks.
type GGState struct {
	Transform  gg.Matrix
	Source     gg.Brush
	LineWidth  float64
	LineCap    gg.LineCap
	LineJoin   gg.LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
	FillRule   gg.FillRule
}

func (s GGState) clone() GGState {
	if s.Dashes != nil {
		s.Dashes = append([]float64(nil), s.Dashes...)
	}
	return s
}

func (s GGState) stroke() gg.Stroke {
	st := gg.Stroke{
		Width:      s.LineWidth,
		Cap:        s.LineCap,
		Join:       s.LineJoin,
		MiterLimit: s.MiterLimit,
	}
	if d := gg.NewDash(s.Dashes...); d != nil {
		st.Dash = d.WithOffset(s.DashOffset)
	}
	return st
}

// GGRenderer implements Renderer on a borrowed *gg.Context.
//
// gg's Push and Pop only cover the transform, clip and mask, so
// GGRenderer keeps the rest of the graphics state (source, line style and
// fill rule) itself and saves it alongside.
//
// NewGGRenderer resets the line style and fill rule of dc to gg's
// defaults. The transform, clip and source brush of dc are kept.
//
// gg clips with the non-zero rule whatever the fill rule, so Clip on an
// even-odd path keeps the regions the even-odd rule would exclude.
type GGRenderer struct {
	dc    *gg.Context
	state GGState // Transform unused; read from dc
	stack []GGState
}

var _ Renderer = (*GGRenderer)(nil)

// NewGGRenderer wraps dc. The caller keeps ownership of dc.
func NewGGRenderer(dc *gg.Context) *GGRenderer {
	r := &GGRenderer{
		dc: dc,
		state: GGState{
			Source:     dc.FillBrush(),
			LineWidth:  1,
			LineCap:    gg.LineCapButt,
			LineJoin:   gg.LineJoinMiter,
			MiterLimit: DefaultMiterLimit,
			FillRule:   gg.FillRuleNonZero,
		},
		stack: make([]GGState, 0, 8),
	}
	r.applyStroke()
	dc.SetFillRule(r.state.FillRule)
	return r
}

// GG returns the wrapped gg context.
func (r *GGRenderer) GG() *gg.Context {
	return r.dc
}

// State returns a snapshot of the current graphics state.
func (r *GGRenderer) State() GGState {
	s := r.state.clone()
	s.Transform = r.dc.GetTransform()
	return s
}

// Depth returns the number of unmatched Save calls.
func (r *GGRenderer) Depth() int {
	return len(r.stack)
}

// Save pushes the graphics state.
func (r *GGRenderer) Save() {
	r.dc.Push()
	r.stack = append(r.stack, r.state.clone())
}

// Restore pops the graphics state. Unbalanced calls are ignored.
func (r *GGRenderer) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.dc.Pop()

	r.dc.SetFillBrush(r.state.Source)
	r.dc.SetFillRule(r.state.FillRule)
	r.applyStroke()
}

// NewPath implements Renderer.
func (r *GGRenderer) NewPath() {
	r.dc.ClearPath()
}

// AppendPath implements Renderer.
func (r *GGRenderer) AppendPath(elements []gg.PathElement) {
	for _, el := range elements {
		switch e := el.(type) {
		case gg.MoveTo:
			r.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			r.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			r.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			r.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			r.dc.ClosePath()
		}
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NewSolidPattern implements Renderer.
func (r *GGRenderer) NewSolidPattern(c gg.RGBA) (Pattern, error) {
	if !finite(c.R, c.G, c.B, c.A) {
		return nil, fmt.Errorf("%w: solid color %v", ErrInvalidPattern, c)
	}
	return &GGPattern{brush: gg.Solid(c)}, nil
}

// NewLinearPattern implements Renderer.
func (r *GGRenderer) NewLinearPattern(x0, y0, x1, y1 float64) (Pattern, error) {
	if !finite(x0, y0, x1, y1) {
		return nil, fmt.Errorf("%w: linear gradient (%g,%g)-(%g,%g)", ErrInvalidPattern, x0, y0, x1, y1)
	}
	g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	return &GGPattern{brush: g, linear: g}, nil
}

// NewRadialPattern implements Renderer. The gradient runs from the circle
// (x0, y0, r0) to the circle (x1, y1, r1). gg centers both circles on
// (x1, y1) and places the focal point at (x0, y0), so a start circle with
// a nonzero radius is only accepted when it is concentric with the end
// circle.
func (r *GGRenderer) NewRadialPattern(x0, y0, r0, x1, y1, r1 float64) (Pattern, error) {
	if !finite(x0, y0, r0, x1, y1, r1) || r0 < 0 || r1 < 0 ||
		(r0 != 0 && (x0 != x1 || y0 != y1)) {
		return nil, fmt.Errorf("%w: radial gradient (%g,%g,%g)-(%g,%g,%g)", ErrInvalidPattern, x0, y0, r0, x1, y1, r1)
	}
	g := gg.NewRadialGradientBrush(x1, y1, r0, r1).SetFocus(x0, y0)
	return &GGPattern{brush: g, radial: g}, nil
}

// SetSource implements Renderer. gg shares one brush between fill and
// stroke.
func (r *GGRenderer) SetSource(p Pattern) {
	var b gg.Brush = gg.Solid(gg.Transparent)
	if p != nil {
		b = p.Brush()
	}
	r.state.Source = b
	r.dc.SetFillBrush(b)
}

// SetLineCap implements Renderer.
func (r *GGRenderer) SetLineCap(lineCap gg.LineCap) {
	r.state.LineCap = lineCap
	r.applyStroke()
}

// SetLineJoin implements Renderer.
func (r *GGRenderer) SetLineJoin(join gg.LineJoin) {
	r.state.LineJoin = join
	r.applyStroke()
}

// SetMiterLimit implements Renderer.
func (r *GGRenderer) SetMiterLimit(limit float64) {
	r.state.MiterLimit = limit
	r.applyStroke()
}

// SetLineWidth implements Renderer.
func (r *GGRenderer) SetLineWidth(width float64) {
	r.state.LineWidth = width
	r.applyStroke()
}

// SetDash implements Renderer. An empty dash slice selects solid lines.
func (r *GGRenderer) SetDash(dashes []float64, offset float64) {
	r.state.Dashes = append([]float64(nil), dashes...)
	r.state.DashOffset = offset
	r.applyStroke()
}

// SetFillRule implements Renderer.
func (r *GGRenderer) SetFillRule(rule gg.FillRule) {
	r.state.FillRule = rule
	r.dc.SetFillRule(rule)
}

// applyStroke pushes the tracked line style to dc, both as a gg.Stroke
// and through the individual setters.
func (r *GGRenderer) applyStroke() {
	r.dc.SetStroke(r.state.stroke())
	r.dc.SetLineWidth(r.state.LineWidth)
	r.dc.SetLineCap(r.state.LineCap)
	r.dc.SetLineJoin(r.state.LineJoin)
	r.dc.SetMiterLimit(r.state.MiterLimit)
}

// Stroke implements Renderer.
func (r *GGRenderer) Stroke() error {
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("uidraw: stroke: %w", err)
	}
	return nil
}

// Fill implements Renderer.
func (r *GGRenderer) Fill() error {
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("uidraw: fill: %w", err)
	}
	return nil
}

// Clip implements Renderer. gg clips with the non-zero rule regardless
// of the fill rule.
func (r *GGRenderer) Clip() {
	r.dc.Clip()
}

// Transform implements Renderer.
func (r *GGRenderer) Transform(m gg.Matrix) {
	r.dc.Transform(m)
}

// GGPattern is the Pattern type created by GGRenderer.
type GGPattern struct {
	brush  gg.Brush
	linear *gg.LinearGradientBrush
	radial *gg.RadialGradientBrush
	closed bool
}

// AddColorStop implements Pattern.
func (p *GGPattern) AddColorStop(offset float64, c gg.RGBA) {
	switch {
	case p.linear != nil:
		p.linear.AddColorStop(offset, c)
	case p.radial != nil:
		p.radial.AddColorStop(offset, c)
	}
}

// Brush implements Pattern.
func (p *GGPattern) Brush() gg.Brush {
	return p.brush
}

// Closed reports whether Close has been called.
func (p *GGPattern) Closed() bool {
	return p.closed
}

// Close implements Pattern. The brush stays valid for any renderer still
// using it as its source.
func (p *GGPattern) Close() error {
	p.closed = true
	return nil
}
