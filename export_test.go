package uidraw

// BuildPaint exposes buildPaint to the external tests.
func (c *Context) BuildPaint(b *Brush) Pattern {
	return c.buildPaint(b)
}
