package uidraw

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// FillMode determines which regions of a self-intersecting path are inside.
type FillMode int

const (
	// FillModeWinding uses the non-zero winding rule.
	FillModeWinding FillMode = iota
	// FillModeAlternate uses the even-odd rule.
	FillModeAlternate
)

var (
	// ErrPathNotEnded is returned when drawing with a path on which End
	// has not been called.
	ErrPathNotEnded = errors.New("uidraw: path has not been ended")

	// ErrPathEnded is recorded when a path is modified after End.
	ErrPathEnded = errors.New("uidraw: path has already been ended")
)

// Path is a sequence of figures built with the methods below and frozen
// with End. Only ended paths can be drawn.
//
// Coordinates are in user space: they are transformed by the renderer's
// current transform when the path is drawn.
type Path struct {
	mode  FillMode
	geom  *gg.Path
	ended bool
	err   error
}

// NewPath creates an empty path using the given fill mode.
func NewPath(mode FillMode) *Path {
	return &Path{
		mode: mode,
		geom: gg.NewPath(),
	}
}

// FillMode returns the fill mode the path was created with.
func (p *Path) FillMode() FillMode {
	return p.mode
}

// Ended reports whether End has been called.
func (p *Path) Ended() bool {
	return p.ended
}

// Err returns ErrPathEnded if the path was modified after End, nil
// otherwise. The offending modifications are discarded. The misuse is
// logged once to the package logger, and again as a user bug by every
// Context that draws the path.
func (p *Path) Err() error {
	return p.err
}

// End freezes the path. Further modifications are discarded.
func (p *Path) End() {
	p.ended = true
}

// mutable reports whether the path may still be modified, recording and
// logging the misuse if it may not. A Path has no Context, so the misuse
// goes to the package logger here; a Context drawing the path later also
// reports it to its BugReporter.
func (p *Path) mutable() bool {
	if !p.ended {
		return true
	}
	if p.err == nil {
		Logger().Warn("uidraw: path modified after End", "bug", "user")
	}
	p.err = ErrPathEnded
	return false
}

// NewFigure starts a new figure at (x, y).
func (p *Path) NewFigure(x, y float64) {
	if !p.mutable() {
		return
	}
	p.geom.MoveTo(x, y)
}

// NewFigureWithArc starts a new figure with an arc around (xCenter,
// yCenter). See ArcTo for the meaning of the angles.
func (p *Path) NewFigureWithArc(xCenter, yCenter, radius, startAngle, sweep float64, negative bool) {
	if !p.mutable() {
		return
	}
	p.arc(xCenter, yCenter, radius, startAngle, sweep, negative, true)
}

// LineTo adds a straight line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.mutable() {
		return
	}
	p.geom.LineTo(x, y)
}

// ArcTo adds a line from the current point to the start of the arc, then
// the arc itself. The arc starts at startAngle and ends at
// startAngle+sweep (radians); sweeps larger than a full turn are clamped.
// Positive arcs run in the direction of increasing angles, negative arcs
// in the direction of decreasing angles, as in cairo.
func (p *Path) ArcTo(xCenter, yCenter, radius, startAngle, sweep float64, negative bool) {
	if !p.mutable() {
		return
	}
	p.arc(xCenter, yCenter, radius, startAngle, sweep, negative, false)
}

// BezierTo adds a cubic Bezier curve from the current point to (endX, endY).
func (p *Path) BezierTo(c1x, c1y, c2x, c2y, endX, endY float64) {
	if !p.mutable() {
		return
	}
	p.geom.CubicTo(c1x, c1y, c2x, c2y, endX, endY)
}

// CloseFigure closes the current figure with a line back to its start.
func (p *Path) CloseFigure() {
	if !p.mutable() {
		return
	}
	p.geom.Close()
}

// AddRectangle adds a closed rectangular figure.
func (p *Path) AddRectangle(x, y, width, height float64) {
	if !p.mutable() {
		return
	}
	p.geom.Rectangle(x, y, width, height)
}

// Elements returns the path geometry. The slice must not be modified.
func (p *Path) Elements() []gg.PathElement {
	return p.geom.Elements()
}

func (p *Path) arc(xc, yc, r, start, sweep float64, negative, newFigure bool) {
	if !finite(xc, yc, r, start, sweep) {
		return
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	// Wrap the sweep into the arc's direction: [0, 2π) for positive arcs,
	// (-2π, 0] for negative ones.
	switch {
	case negative && sweep > 0:
		if sweep = math.Mod(sweep, 2*math.Pi); sweep > 0 {
			sweep -= 2 * math.Pi
		}
	case !negative && sweep < 0:
		if sweep = math.Mod(sweep, 2*math.Pi); sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	a1 := start
	a2 := start + sweep

	sx := xc + r*math.Cos(a1)
	sy := yc + r*math.Sin(a1)
	if newFigure || !p.geom.HasCurrentPoint() {
		p.geom.MoveTo(sx, sy)
	} else {
		p.geom.LineTo(sx, sy)
	}

	// At most a quarter turn per cubic segment.
	n := int(math.Ceil(math.Abs(a2-a1)/(math.Pi/2) - 1e-9))
	if n == 0 {
		return
	}
	step := (a2 - a1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		b1 := a1 + float64(i)*step
		b2 := b1 + step
		cos1, sin1 := math.Cos(b1), math.Sin(b1)
		cos2, sin2 := math.Cos(b2), math.Sin(b2)
		p.geom.CubicTo(
			xc+r*(cos1-k*sin1), yc+r*(sin1+k*cos1),
			xc+r*(cos2+k*sin2), yc+r*(sin2-k*cos2),
			xc+r*cos2, yc+r*sin2,
		)
	}
}
