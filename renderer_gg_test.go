package uidraw

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/gg"
)

func newGGContext(t *testing.T, w, h int) (*Context, *GGRenderer) {
	t.Helper()
	dc := gg.NewContext(w, h)
	t.Cleanup(func() { _ = dc.Close() })
	r := NewGGRenderer(dc)
	return NewContext(r, DefaultStyle()), r
}

// alphaAt returns the 16-bit alpha of the pixel at (x, y).
func alphaAt(r *GGRenderer, x, y int) uint32 {
	_, _, _, a := r.GG().Image().At(x, y).RGBA()
	return a
}

func colorAt(r *GGRenderer, x, y int) (red, green, blue, alpha uint32) {
	return r.GG().Image().At(x, y).RGBA()
}

// starPath builds a self-intersecting five-pointed star centered at
// (50, 50) with outer radius 40.
func starPath(mode FillMode) *Path {
	p := NewPath(mode)
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*4*math.Pi/5
		x := 50 + 40*math.Cos(a)
		y := 50 + 40*math.Sin(a)
		if i == 0 {
			p.NewFigure(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.CloseFigure()
	p.End()
	return p
}

// TestFillStarFillRule rasterizes a self-intersecting star with both fill
// modes and samples the center pentagon and one arm.
func TestFillStarFillRule(t *testing.T) {
	tests := []struct {
		name         string
		mode         FillMode
		centerFilled bool
	}{
		{"winding", FillModeWinding, true},
		{"alternate", FillModeAlternate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newGGContext(t, 100, 100)
			if err := c.Fill(starPath(tt.mode), SolidBrush(0, 0, 0, 1)); err != nil {
				t.Fatalf("Fill() error = %v", err)
			}

			if a := alphaAt(r, 50, 25); a < 0xf000 {
				t.Errorf("arm alpha = %#x, want opaque", a)
			}
			center := alphaAt(r, 50, 50)
			if tt.centerFilled && center < 0xf000 {
				t.Errorf("center alpha = %#x, want opaque", center)
			}
			if !tt.centerFilled && center != 0 {
				t.Errorf("center alpha = %#x, want transparent", center)
			}
			if a := alphaAt(r, 2, 2); a != 0 {
				t.Errorf("outside alpha = %#x, want transparent", a)
			}
		})
	}
}

func TestFillSolidColor(t *testing.T) {
	c, r := newGGContext(t, 40, 40)
	p := NewPath(FillModeWinding)
	p.AddRectangle(5, 5, 30, 30)
	p.End()

	if err := c.Fill(p, SolidBrush(0, 0, 1, 1)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	red, green, blue, alpha := colorAt(r, 20, 20)
	if red > 0x0fff || green > 0x0fff || blue < 0xf000 || alpha < 0xf000 {
		t.Errorf("pixel = (%#x, %#x, %#x, %#x), want opaque blue", red, green, blue, alpha)
	}
}

// TestFillInvalidPatternIsRed checks the visible fallback end to end: a
// gradient the renderer rejects paints opaque red.
func TestFillInvalidPatternIsRed(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer func() { _ = dc.Close() }()
	r := NewGGRenderer(dc)

	var reports []string
	c := NewContext(r, DefaultStyle(), WithBugReporter(bugFunc(func(s string) {
		reports = append(reports, s)
	})))

	p := NewPath(FillModeWinding)
	p.AddRectangle(5, 5, 30, 30)
	p.End()

	if err := c.Fill(p, LinearGradientBrush(0, 0, math.NaN(), 10)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	red, green, blue, alpha := colorAt(r, 20, 20)
	if red < 0xf000 || green > 0x0fff || blue > 0x0fff || alpha < 0xf000 {
		t.Errorf("pixel = (%#x, %#x, %#x, %#x), want opaque red", red, green, blue, alpha)
	}
	if len(reports) != 1 {
		t.Errorf("reports = %d, want 1", len(reports))
	}
}

// TestFillDiscardsPendingPath leaves a rectangle on dc without drawing it
// and checks that a fill only covers the uidraw path.
func TestFillDiscardsPendingPath(t *testing.T) {
	verbs := []struct {
		name string
		run  func(c *Context, p *Path) error
	}{
		{"fill", func(c *Context, p *Path) error {
			return c.Fill(p, SolidBrush(0, 0, 0, 1))
		}},
		{"stroke", func(c *Context, p *Path) error {
			return c.Stroke(p, SolidBrush(0, 0, 0, 1), &StrokeParams{Thickness: 2})
		}},
	}

	for _, tt := range verbs {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newGGContext(t, 50, 50)
			r.GG().DrawRectangle(30, 30, 10, 10)

			p := NewPath(FillModeWinding)
			p.AddRectangle(2, 2, 10, 10)
			p.End()
			if err := tt.run(c, p); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}

			for _, pt := range [][2]int{{30, 30}, {35, 30}, {30, 35}, {35, 35}} {
				if a := alphaAt(r, pt[0], pt[1]); a != 0 {
					t.Errorf("alpha at %v = %#x, want 0 outside the drawn path", pt, a)
				}
			}
			if a := alphaAt(r, 2, 7); a == 0 {
				t.Error("drawn path left no pixels")
			}
		})
	}
}

type bugFunc func(string)

func (f bugFunc) ImplBug(format string, _ ...any) { f(format) }
func (f bugFunc) UserBug(format string, _ ...any) { f(format) }

func TestStrokeDrawsOutlineOnly(t *testing.T) {
	c, r := newGGContext(t, 60, 60)
	p := NewPath(FillModeWinding)
	p.AddRectangle(10, 10, 40, 40)
	p.End()

	err := c.Stroke(p, SolidBrush(0, 0, 0, 1), &StrokeParams{
		Cap:       LineCapFlat,
		Join:      LineJoinMiter,
		Thickness: 4,
	})
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	if a := alphaAt(r, 10, 30); a < 0xf000 {
		t.Errorf("edge alpha = %#x, want opaque", a)
	}
	if a := alphaAt(r, 30, 30); a != 0 {
		t.Errorf("interior alpha = %#x, want transparent", a)
	}
}

// TestGGVerbsLeaveStateUnchanged checks the transactional property against
// the gg-backed renderer.
func TestGGVerbsLeaveStateUnchanged(t *testing.T) {
	m := Identity()
	m.Translate(4, 4)
	m.Rotate(0, 0, 0.3)

	verbs := []struct {
		name string
		run  func(c *Context) error
	}{
		{"stroke", func(c *Context) error {
			return c.Stroke(starPath(FillModeAlternate), SolidBrush(1, 0, 0, 1), &StrokeParams{
				Cap:        LineCapRound,
				Join:       LineJoinMiter,
				MiterLimit: 2,
				Thickness:  3,
				Dashes:     []float64{3, 1},
				DashPhase:  1,
			})
		}},
		{"fill", func(c *Context) error {
			return c.Fill(starPath(FillModeAlternate), RadialGradientBrush(50, 50, 50, 50, 40,
				GradientStop{Pos: 0, R: 1, A: 1},
				GradientStop{Pos: 1, B: 1, A: 1},
			))
		}},
		{"transform", func(c *Context) error {
			c.Transform(&m)
			return nil
		}},
		{"clip", func(c *Context) error {
			return c.Clip(starPath(FillModeAlternate))
		}},
	}

	for _, v := range verbs {
		t.Run(v.name, func(t *testing.T) {
			c, r := newGGContext(t, 100, 100)
			r.Transform(gg.Scale(2, 2))
			r.SetLineWidth(5)
			r.SetDash([]float64{2}, 0.5)

			before := r.State()
			if err := v.run(c); err != nil {
				t.Fatalf("verb error = %v", err)
			}
			after := r.State()

			if !reflect.DeepEqual(before, after) {
				t.Errorf("state changed:\nbefore %+v\nafter  %+v", before, after)
			}
			if r.Depth() != 0 {
				t.Errorf("Depth() = %d, want 0", r.Depth())
			}
		})
	}
}

// TestClipDoesNotPersist checks that a clip applied through the Context is
// gone once Clip returns.
func TestClipDoesNotPersist(t *testing.T) {
	c, r := newGGContext(t, 40, 40)

	small := NewPath(FillModeWinding)
	small.AddRectangle(0, 0, 5, 5)
	small.End()
	if err := c.Clip(small); err != nil {
		t.Fatalf("Clip() error = %v", err)
	}

	all := NewPath(FillModeWinding)
	all.AddRectangle(0, 0, 40, 40)
	all.End()
	if err := c.Fill(all, SolidBrush(0, 0, 0, 1)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if a := alphaAt(r, 30, 30); a < 0xf000 {
		t.Errorf("alpha outside the old clip = %#x, want opaque", a)
	}
}

func TestGGRendererSaveRestore(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer func() { _ = dc.Close() }()
	r := NewGGRenderer(dc)

	initial := r.State()
	r.Save()
	r.SetLineWidth(7)
	r.SetLineCap(gg.LineCapSquare)
	r.SetLineJoin(gg.LineJoinBevel)
	r.SetMiterLimit(3)
	r.SetDash([]float64{1, 2}, 3)
	r.SetFillRule(gg.FillRuleEvenOdd)
	r.Transform(gg.Translate(1, 2))
	pat, err := r.NewSolidPattern(gg.Green)
	if err != nil {
		t.Fatalf("NewSolidPattern() error = %v", err)
	}
	r.SetSource(pat)

	changed := r.State()
	if changed.LineWidth != 7 || changed.FillRule != gg.FillRuleEvenOdd || changed.Transform != gg.Translate(1, 2) {
		t.Errorf("state after setters = %+v", changed)
	}
	if got := dc.GetStroke().Width; got != 7 {
		t.Errorf("gg stroke width = %v, want 7", got)
	}

	r.Restore()
	if got := r.State(); !reflect.DeepEqual(got, initial) {
		t.Errorf("state after Restore = %+v, want %+v", got, initial)
	}
	if got := dc.GetStroke().Width; got != 1 {
		t.Errorf("gg stroke width after Restore = %v, want 1", got)
	}

	// Unbalanced Restore is ignored.
	r.Restore()
	if r.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", r.Depth())
	}
}

func TestGGRendererInvalidPatterns(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer func() { _ = dc.Close() }()
	r := NewGGRenderer(dc)

	nan := math.NaN()
	inf := math.Inf(1)
	tests := []struct {
		name string
		make func() (Pattern, error)
	}{
		{"solid nan", func() (Pattern, error) { return r.NewSolidPattern(gg.RGBA{R: nan, A: 1}) }},
		{"linear inf", func() (Pattern, error) { return r.NewLinearPattern(0, 0, inf, 0) }},
		{"radial negative", func() (Pattern, error) { return r.NewRadialPattern(0, 0, 0, 1, 1, -1) }},
		{"radial nan", func() (Pattern, error) { return r.NewRadialPattern(nan, 0, 0, 1, 1, 1) }},
		{"radial offset start circle", func() (Pattern, error) { return r.NewRadialPattern(0, 0, 2, 1, 1, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.make()
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("error = %v, want ErrInvalidPattern", err)
			}
			if p != nil {
				t.Errorf("pattern = %v, want nil", p)
			}
		})
	}
}

func TestGGPatternStops(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer func() { _ = dc.Close() }()
	r := NewGGRenderer(dc)

	p, err := r.NewLinearPattern(0, 0, 100, 0)
	if err != nil {
		t.Fatalf("NewLinearPattern() error = %v", err)
	}
	p.AddColorStop(0, gg.Red)
	p.AddColorStop(1, gg.Blue)

	g, ok := p.Brush().(*gg.LinearGradientBrush)
	if !ok {
		t.Fatalf("Brush() = %T, want *gg.LinearGradientBrush", p.Brush())
	}
	if len(g.Stops) != 2 || g.Stops[0].Color != gg.Red || g.Stops[1].Color != gg.Blue {
		t.Errorf("stops = %v", g.Stops)
	}

	rp, err := r.NewRadialPattern(1, 2, 0, 3, 4, 5)
	if err != nil {
		t.Fatalf("NewRadialPattern() error = %v", err)
	}
	rg, ok := rp.Brush().(*gg.RadialGradientBrush)
	if !ok {
		t.Fatalf("Brush() = %T, want *gg.RadialGradientBrush", rp.Brush())
	}
	if rg.StartRadius != 0 || rg.EndRadius != 5 {
		t.Errorf("radii = %v, %v, want 0, 5", rg.StartRadius, rg.EndRadius)
	}
	if rg.Focus != gg.Pt(1, 2) || rg.Center != gg.Pt(3, 4) {
		t.Errorf("focus = %v, center = %v", rg.Focus, rg.Center)
	}

	cp, err := r.NewRadialPattern(3, 4, 2, 3, 4, 5)
	if err != nil {
		t.Fatalf("NewRadialPattern() concentric error = %v", err)
	}
	if cg := cp.Brush().(*gg.RadialGradientBrush); cg.StartRadius != 2 || cg.Center != gg.Pt(3, 4) {
		t.Errorf("concentric start radius = %v, center = %v", cg.StartRadius, cg.Center)
	}

	sp, _ := r.NewSolidPattern(gg.Red)
	sp.AddColorStop(0.5, gg.Blue)
	if got := sp.Brush().ColorAt(0, 0); got != gg.Red {
		t.Errorf("solid ColorAt = %v, want red", got)
	}
	if err := sp.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !sp.(*GGPattern).Closed() {
		t.Error("Closed() = false after Close")
	}
}
