package uidraw

import "fmt"

// BrushType selects which fields of a Brush are used.
type BrushType int

const (
	// BrushTypeSolid paints a single RGBA color.
	BrushTypeSolid BrushType = iota
	// BrushTypeLinearGradient paints a gradient along the line (X0,Y0)-(X1,Y1).
	BrushTypeLinearGradient
	// BrushTypeRadialGradient paints a gradient from the point (X0,Y0) out
	// to the circle centered at (X1,Y1) with radius OuterRadius.
	BrushTypeRadialGradient
	// BrushTypeImage is reserved for image brushes. It is not implemented
	// yet and paints nothing (fully transparent).
	BrushTypeImage
)

var brushTypeNames = [...]string{
	BrushTypeSolid:          "Solid",
	BrushTypeLinearGradient: "LinearGradient",
	BrushTypeRadialGradient: "RadialGradient",
	BrushTypeImage:          "Image",
}

// String returns the brush type name.
func (t BrushType) String() string {
	if t >= 0 && int(t) < len(brushTypeNames) {
		return brushTypeNames[t]
	}
	return fmt.Sprintf("BrushType(%d)", int(t))
}

// GradientStop is a single color stop of a gradient brush.
type GradientStop struct {
	Pos        float64 // Position along the gradient, 0 to 1
	R, G, B, A float64
}

// Brush describes how a filled or stroked region is colored.
//
// Brush is a tagged variant: Type selects which of the remaining fields
// are read. Components are in the range [0, 1].
type Brush struct {
	Type BrushType

	// Solid
	R, G, B, A float64

	// Gradients
	X0, Y0      float64 // linear: start point; radial: start point (radius 0)
	X1, Y1      float64 // linear: end point; radial: center of the outer circle
	OuterRadius float64 // radial only

	// Stops are applied in slice order. They are not sorted.
	Stops []GradientStop
}

// SolidBrush returns a solid brush of the given color.
func SolidBrush(r, g, b, a float64) *Brush {
	return &Brush{Type: BrushTypeSolid, R: r, G: g, B: b, A: a}
}

// LinearGradientBrush returns a linear gradient brush from (x0, y0) to
// (x1, y1) with the given stops.
func LinearGradientBrush(x0, y0, x1, y1 float64, stops ...GradientStop) *Brush {
	return &Brush{
		Type:  BrushTypeLinearGradient,
		X0:    x0,
		Y0:    y0,
		X1:    x1,
		Y1:    y1,
		Stops: stops,
	}
}

// RadialGradientBrush returns a radial gradient brush that starts at the
// point (x0, y0) and ends at the circle of radius outer around (x1, y1).
func RadialGradientBrush(x0, y0, x1, y1, outer float64, stops ...GradientStop) *Brush {
	return &Brush{
		Type:        BrushTypeRadialGradient,
		X0:          x0,
		Y0:          y0,
		X1:          x1,
		Y1:          y1,
		OuterRadius: outer,
		Stops:       stops,
	}
}
