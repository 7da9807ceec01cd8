package uidraw

import "github.com/gogpu/gg"

// Renderer is an immediate-mode vector renderer with an implicit graphics
// state stack, in the style of cairo.
//
// The persistent graphics state consists of the current transform, the
// clip region, the source pattern, the fill rule and the line style (width,
// cap, join, miter limit, dash). Save pushes all of it; Restore pops it.
// The current path is not part of the graphics state: it is consumed by
// Stroke, Fill and Clip, and discarded by NewPath.
//
// Renderers are not safe for concurrent use.
type Renderer interface {
	Save()
	Restore()

	// NewPath discards the current path.
	NewPath()

	// AppendPath adds elements to the current path, transforming them by
	// the current transform.
	AppendPath(elements []gg.PathElement)

	NewSolidPattern(c gg.RGBA) (Pattern, error)
	NewLinearPattern(x0, y0, x1, y1 float64) (Pattern, error)
	NewRadialPattern(x0, y0, r0, x1, y1, r1 float64) (Pattern, error)
	SetSource(p Pattern)

	SetLineCap(lineCap gg.LineCap)
	SetLineJoin(join gg.LineJoin)
	SetMiterLimit(limit float64)
	SetLineWidth(width float64)
	SetDash(dashes []float64, offset float64)
	SetFillRule(rule gg.FillRule)

	// Stroke, Fill and Clip consume the current path.
	Stroke() error
	Fill() error
	Clip()

	// Transform multiplies the current transform by m: m is applied to
	// user coordinates before the existing transform.
	Transform(m gg.Matrix)
}

// Pattern is a renderer-native paint source.
type Pattern interface {
	// AddColorStop appends a gradient stop. It has no effect on solid
	// patterns.
	AddColorStop(offset float64, c gg.RGBA)

	// Brush returns the gg brush equivalent of the pattern.
	Brush() gg.Brush

	// Close releases the pattern. A renderer that still uses the pattern
	// as its source keeps its own reference.
	Close() error
}
