// Package drawtest provides a uidraw.Renderer that records calls instead
// of drawing, for testing code built on uidraw.
//
// The Recorder tracks the same graphics state a real renderer would
// (transform, clip depth, source, line style, fill rule) so tests can
// check that drawing code leaves it untouched, and it can be told to fail
// pattern creation to exercise error handling.
//
// Example:
//
//	rec := drawtest.NewRecorder()
//	c := uidraw.NewContext(rec, uidraw.DefaultStyle())
//	_ = c.Fill(path, brush)
//	for _, call := range rec.Calls() {
//	    fmt.Println(call)
//	}
//
// The Recorder is not safe for concurrent use.
package drawtest

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/uidraw"
)

// ErrInjected is returned by pattern constructors while failures are
// injected with FailPatterns.
var ErrInjected = errors.New("drawtest: injected pattern failure")

// Op names a recorded renderer call.
type Op string

// Recorded operations, one per uidraw.Renderer method.
const (
	OpSave             Op = "Save"
	OpRestore          Op = "Restore"
	OpNewPath          Op = "NewPath"
	OpAppendPath       Op = "AppendPath"
	OpNewSolidPattern  Op = "NewSolidPattern"
	OpNewLinearPattern Op = "NewLinearPattern"
	OpNewRadialPattern Op = "NewRadialPattern"
	OpSetSource        Op = "SetSource"
	OpSetLineCap       Op = "SetLineCap"
	OpSetLineJoin      Op = "SetLineJoin"
	OpSetMiterLimit    Op = "SetMiterLimit"
	OpSetLineWidth     Op = "SetLineWidth"
	OpSetDash          Op = "SetDash"
	OpSetFillRule      Op = "SetFillRule"
	OpStroke           Op = "Stroke"
	OpFill             Op = "Fill"
	OpClip             Op = "Clip"
	OpTransform        Op = "Transform"
)

// Call is a single recorded renderer call.
type Call struct {
	Op   Op
	Args []any
}

// String formats the call as Op(arg, arg, ...).
func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// State is the graphics state tracked by a Recorder.
type State struct {
	Transform  gg.Matrix
	Clips      int // number of clip paths intersected so far
	Source     *Pattern
	LineWidth  float64
	LineCap    gg.LineCap
	LineJoin   gg.LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
	FillRule   gg.FillRule
}

func (s State) clone() State {
	if s.Dashes != nil {
		s.Dashes = append([]float64(nil), s.Dashes...)
	}
	return s
}

// FailMode selects how injected pattern failures manifest.
type FailMode int

const (
	// FailWithError returns a nil pattern and ErrInjected.
	FailWithError FailMode = iota
	// FailWithNil returns a nil pattern and a nil error.
	FailWithNil
	// FailWithStatus returns a usable pattern together with ErrInjected,
	// like a cairo pattern in an error status.
	FailWithStatus
)

// Recorder is a uidraw.Renderer that records every call.
type Recorder struct {
	calls    []Call
	state    State
	stack    []State
	path     int // elements in the current path
	patterns []*Pattern

	failures int
	failMode FailMode
}

var _ uidraw.Renderer = (*Recorder)(nil)

// NewRecorder creates a Recorder in the default state: identity
// transform, no clip, 1px butt-capped miter-joined solid lines, non-zero
// fill rule and no source.
func NewRecorder() *Recorder {
	return &Recorder{
		calls: make([]Call, 0, 32),
		state: State{
			Transform:  gg.Identity(),
			LineWidth:  1,
			LineCap:    gg.LineCapButt,
			LineJoin:   gg.LineJoinMiter,
			MiterLimit: uidraw.DefaultMiterLimit,
			FillRule:   gg.FillRuleNonZero,
		},
		stack: make([]State, 0, 8),
	}
}

// FailPatterns makes the next n pattern creations fail in the given mode.
func (r *Recorder) FailPatterns(n int, mode FailMode) {
	r.failures = n
	r.failMode = mode
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Ops returns the recorded operations in order, without arguments.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Patterns returns every pattern the Recorder created, in creation order.
func (r *Recorder) Patterns() []*Pattern {
	return r.patterns
}

// State returns a snapshot of the current graphics state.
func (r *Recorder) State() State {
	return r.state.clone()
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// PathLen returns the number of elements in the current path.
func (r *Recorder) PathLen() int {
	return r.path
}

// Reset discards recorded calls and patterns. The graphics state is kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.patterns = nil
}

func (r *Recorder) record(op Op, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

// Save implements uidraw.Renderer.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state.clone())
	r.record(OpSave)
}

// Restore implements uidraw.Renderer. If the stack is empty, only the
// call is recorded.
func (r *Recorder) Restore() {
	r.record(OpRestore)
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// NewPath implements uidraw.Renderer.
func (r *Recorder) NewPath() {
	r.path = 0
	r.record(OpNewPath)
}

// AppendPath implements uidraw.Renderer.
func (r *Recorder) AppendPath(elements []gg.PathElement) {
	r.path += len(elements)
	r.record(OpAppendPath, len(elements))
}

func (r *Recorder) newPattern(kind uidraw.BrushType, op Op, args ...any) (uidraw.Pattern, error) {
	r.record(op, args...)
	p := &Pattern{Kind: kind, Args: args}
	if r.failures > 0 {
		r.failures--
		switch r.failMode {
		case FailWithNil:
			return nil, nil
		case FailWithStatus:
			r.patterns = append(r.patterns, p)
			return p, ErrInjected
		default:
			return nil, ErrInjected
		}
	}
	r.patterns = append(r.patterns, p)
	return p, nil
}

// NewSolidPattern implements uidraw.Renderer.
func (r *Recorder) NewSolidPattern(c gg.RGBA) (uidraw.Pattern, error) {
	p, err := r.newPattern(uidraw.BrushTypeSolid, OpNewSolidPattern, c)
	if sp, ok := p.(*Pattern); ok {
		sp.Color = c
	}
	return p, err
}

// NewLinearPattern implements uidraw.Renderer.
func (r *Recorder) NewLinearPattern(x0, y0, x1, y1 float64) (uidraw.Pattern, error) {
	return r.newPattern(uidraw.BrushTypeLinearGradient, OpNewLinearPattern, x0, y0, x1, y1)
}

// NewRadialPattern implements uidraw.Renderer.
func (r *Recorder) NewRadialPattern(x0, y0, r0, x1, y1, r1 float64) (uidraw.Pattern, error) {
	return r.newPattern(uidraw.BrushTypeRadialGradient, OpNewRadialPattern, x0, y0, r0, x1, y1, r1)
}

// SetSource implements uidraw.Renderer.
func (r *Recorder) SetSource(p uidraw.Pattern) {
	sp, _ := p.(*Pattern)
	r.state.Source = sp
	r.record(OpSetSource, sp)
}

// SetLineCap implements uidraw.Renderer.
func (r *Recorder) SetLineCap(lineCap gg.LineCap) {
	r.state.LineCap = lineCap
	r.record(OpSetLineCap, lineCap)
}

// SetLineJoin implements uidraw.Renderer.
func (r *Recorder) SetLineJoin(join gg.LineJoin) {
	r.state.LineJoin = join
	r.record(OpSetLineJoin, join)
}

// SetMiterLimit implements uidraw.Renderer.
func (r *Recorder) SetMiterLimit(limit float64) {
	r.state.MiterLimit = limit
	r.record(OpSetMiterLimit, limit)
}

// SetLineWidth implements uidraw.Renderer.
func (r *Recorder) SetLineWidth(width float64) {
	r.state.LineWidth = width
	r.record(OpSetLineWidth, width)
}

// SetDash implements uidraw.Renderer. The dash slice is copied.
func (r *Recorder) SetDash(dashes []float64, offset float64) {
	d := append([]float64{}, dashes...)
	r.state.Dashes = d
	r.state.DashOffset = offset
	r.record(OpSetDash, d, offset)
}

// SetFillRule implements uidraw.Renderer.
func (r *Recorder) SetFillRule(rule gg.FillRule) {
	r.state.FillRule = rule
	r.record(OpSetFillRule, rule)
}

// Stroke implements uidraw.Renderer.
func (r *Recorder) Stroke() error {
	r.path = 0
	r.record(OpStroke)
	return nil
}

// Fill implements uidraw.Renderer.
func (r *Recorder) Fill() error {
	r.path = 0
	r.record(OpFill)
	return nil
}

// Clip implements uidraw.Renderer.
func (r *Recorder) Clip() {
	r.path = 0
	r.state.Clips++
	r.record(OpClip)
}

// Transform implements uidraw.Renderer.
func (r *Recorder) Transform(m gg.Matrix) {
	r.state.Transform = r.state.Transform.Multiply(m)
	r.record(OpTransform, m)
}
