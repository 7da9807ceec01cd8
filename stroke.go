package uidraw

// LineCap specifies the shape of open line endpoints.
type LineCap int

const (
	// LineCapFlat ends the line exactly at its endpoint.
	LineCapFlat LineCap = iota
	// LineCapRound ends the line with a half circle.
	LineCapRound
	// LineCapSquare extends the line by half its thickness.
	LineCapSquare
)

// LineJoin specifies the shape of the corner between two segments.
type LineJoin int

const (
	// LineJoinMiter draws sharp corners, limited by StrokeParams.MiterLimit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound draws rounded corners.
	LineJoinRound
	// LineJoinBevel cuts corners off.
	LineJoinBevel
)

// DefaultMiterLimit is the miter limit toolkits should use when they have
// no reason to pick another one.
const DefaultMiterLimit = 10.0

// StrokeParams describes how a path outline is stroked.
type StrokeParams struct {
	Cap  LineCap
	Join LineJoin

	// MiterLimit is only applied when Join is LineJoinMiter.
	MiterLimit float64

	Thickness float64

	// Dashes holds alternating dash and gap lengths. Empty means solid.
	Dashes    []float64
	DashPhase float64
}
