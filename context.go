package uidraw

import (
	"io"

	"github.com/gogpu/gg"
)

// Context is the drawing context handed to a paint callback.
//
// A Context borrows a Renderer and a Style for the duration of one paint
// operation. It does not own either: Close releases only the Context
// itself. A Context must only be used from the goroutine that owns the
// renderer's surface.
type Context struct {
	r     Renderer
	style *Style
	bugs  BugReporter
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext wraps the renderer r and the style s. Neither is validated
// and neither changes ownership.
func NewContext(r Renderer, s *Style, opts ...Option) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	bugs := options.bugs
	if bugs == nil {
		bugs = logReporter{logger: options.logger}
	}

	return &Context{
		r:     r,
		style: s,
		bugs:  bugs,
	}
}

// Renderer returns the borrowed renderer.
func (c *Context) Renderer() Renderer {
	return c.r
}

// Style returns the borrowed style.
func (c *Context) Style() *Style {
	return c.style
}

// Close releases the Context. The renderer and style are not closed: the
// caller owns them. Close is idempotent and always returns nil.
func (c *Context) Close() error {
	c.r = nil
	c.style = nil
	return nil
}

// runPath replaces the renderer's current path with p. A path that was
// modified after End is still drawn with its geometry as of End.
func (c *Context) runPath(p *Path) error {
	if !p.Ended() {
		c.bugs.UserBug("cannot draw with a path that has not been ended")
		return ErrPathNotEnded
	}
	if p.Err() != nil {
		c.bugs.UserBug("drawing with a path that was modified after End")
	}
	c.r.NewPath()
	c.r.AppendPath(p.Elements())
	return nil
}

func fillRule(m FillMode) gg.FillRule {
	switch m {
	case FillModeAlternate:
		return gg.FillRuleEvenOdd
	default:
		return gg.FillRuleNonZero
	}
}

func closePattern(p Pattern) {
	if p != nil {
		_ = p.Close()
	}
}

// Stroke strokes the outline of path with brush b.
// The renderer state is left unchanged.
func (c *Context) Stroke(path *Path, b *Brush, p *StrokeParams) error {
	c.r.Save()
	defer c.r.Restore()

	if err := c.runPath(path); err != nil {
		return err
	}
	pat := c.buildPaint(b)
	defer closePattern(pat)
	c.r.SetSource(pat)

	switch p.Cap {
	case LineCapFlat:
		c.r.SetLineCap(gg.LineCapButt)
	case LineCapRound:
		c.r.SetLineCap(gg.LineCapRound)
	case LineCapSquare:
		c.r.SetLineCap(gg.LineCapSquare)
	}
	switch p.Join {
	case LineJoinMiter:
		c.r.SetLineJoin(gg.LineJoinMiter)
		c.r.SetMiterLimit(p.MiterLimit)
	case LineJoinRound:
		c.r.SetLineJoin(gg.LineJoinRound)
	case LineJoinBevel:
		c.r.SetLineJoin(gg.LineJoinBevel)
	}
	c.r.SetLineWidth(p.Thickness)
	c.r.SetDash(p.Dashes, p.DashPhase)

	return c.r.Stroke()
}

// Fill fills the interior of path with brush b, using the path's fill
// mode. The renderer state is left unchanged.
func (c *Context) Fill(path *Path, b *Brush) error {
	c.r.Save()
	defer c.r.Restore()

	if err := c.runPath(path); err != nil {
		return err
	}
	pat := c.buildPaint(b)
	defer closePattern(pat)
	c.r.SetSource(pat)
	c.r.SetFillRule(fillRule(path.FillMode()))

	return c.r.Fill()
}

// Transform multiplies the renderer's current transform by m.
//
// Like every verb, Transform is bracketed by a save and a restore, so the
// new transform does not outlive the call.
func (c *Context) Transform(m *Matrix) {
	c.r.Save()
	defer c.r.Restore()

	c.r.Transform(m.Native())
}

// Clip intersects the renderer's clip region with path, using the path's
// fill mode.
//
// Like every verb, Clip is bracketed by a save and a restore, so the clip
// does not outlive the call.
func (c *Context) Clip(path *Path) error {
	c.r.Save()
	defer c.r.Restore()

	if err := c.runPath(path); err != nil {
		return err
	}
	c.r.SetFillRule(fillRule(path.FillMode()))
	c.r.Clip()
	return nil
}

// Save pushes the renderer's graphics state. Every Save must be matched
// by a Restore.
func (c *Context) Save() {
	c.r.Save()
}

// Restore pops the graphics state pushed by the matching Save.
func (c *Context) Restore() {
	c.r.Restore()
}
