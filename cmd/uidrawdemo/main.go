// Command uidrawdemo renders a sample scene through the uidraw adapter.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/uidraw"
	"golang.org/x/image/colornames"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "uidraw.png", "output file")
		bg      = flag.String("bg", "midnightblue", "background color name (SVG 1.1 keywords)")
		verbose = flag.Bool("v", false, "log toolkit diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		uidraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bgColor, ok := colornames.Map[*bg]
	if !ok {
		log.Fatalf("Unknown color %q", *bg)
	}

	dc := gg.NewContext(*width, *height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.FromColor(bgColor))

	r := uidraw.NewGGRenderer(dc)
	style := uidraw.DefaultStyle()
	style.Background = gg.FromColor(bgColor)

	// One Context per paint pass, as a toolkit would create for each
	// widget paint callback.
	for _, paint := range []func(*uidraw.Context, *uidraw.GGRenderer, float64, float64) error{
		drawBackground,
		drawShapes,
		drawTransforms,
		drawPaths,
	} {
		c := uidraw.NewContext(r, style)
		err := paint(c, r, float64(*width), float64(*height))
		_ = c.Close()
		if err != nil {
			log.Fatalf("Failed to draw: %v", err)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func rect(x, y, w, h float64) *uidraw.Path {
	p := uidraw.NewPath(uidraw.FillModeWinding)
	p.AddRectangle(x, y, w, h)
	p.End()
	return p
}

func circle(cx, cy, r float64) *uidraw.Path {
	p := uidraw.NewPath(uidraw.FillModeWinding)
	p.NewFigureWithArc(cx, cy, r, 0, 2*math.Pi, false)
	p.CloseFigure()
	p.End()
	return p
}

func drawBackground(c *uidraw.Context, _ *uidraw.GGRenderer, w, h float64) error {
	fg := c.Style().Foreground
	return c.Fill(rect(0, h*0.75, w, h*0.25), uidraw.LinearGradientBrush(0, h*0.75, 0, h,
		uidraw.GradientStop{Pos: 0, A: 0},
		uidraw.GradientStop{Pos: 1, R: fg.R, G: fg.G, B: fg.B, A: 0.6},
	))
}

func drawShapes(c *uidraw.Context, _ *uidraw.GGRenderer, _, _ float64) error {
	// Overlapping circles
	colors := [][4]float64{
		{1, 0.3, 0.3, 0.8},
		{0.3, 1, 0.3, 0.8},
		{0.3, 0.3, 1, 0.8},
	}
	centers := [][2]float64{{150, 150}, {200, 150}, {175, 200}}
	for i, col := range colors {
		b := uidraw.SolidBrush(col[0], col[1], col[2], col[3])
		if err := c.Fill(circle(centers[i][0], centers[i][1], 60), b); err != nil {
			return err
		}
	}

	// Radial gradient sphere
	sphere := uidraw.RadialGradientBrush(330, 120, 350, 140, 70,
		uidraw.GradientStop{Pos: 0, R: 1, G: 1, B: 1, A: 1},
		uidraw.GradientStop{Pos: 1, R: 1, G: 0.6, B: 0, A: 1},
	)
	if err := c.Fill(circle(350, 140, 70), sphere); err != nil {
		return err
	}

	// Image brushes are not implemented and paint nothing.
	if err := c.Fill(rect(450, 80, 100, 100), &uidraw.Brush{Type: uidraw.BrushTypeImage}); err != nil {
		return err
	}
	return c.Stroke(rect(450, 80, 100, 100), uidraw.SolidBrush(1, 1, 1, 1), &uidraw.StrokeParams{
		Cap:        uidraw.LineCapFlat,
		Join:       uidraw.LineJoinMiter,
		MiterLimit: uidraw.DefaultMiterLimit,
		Thickness:  4,
	})
}

func drawTransforms(c *uidraw.Context, r *uidraw.GGRenderer, _, _ float64) error {
	// Context.Transform does not outlive the call, so a persistent
	// transform is applied on the renderer inside an explicit Save/Restore.
	for i := 0; i < 8; i++ {
		m := uidraw.Identity()
		m.Translate(650, 150)
		m.Rotate(0, 0, float64(i)*math.Pi/4)

		c.Save()
		r.Transform(m.Native())
		hsl := gg.HSL(float64(i)*45, 0.8, 0.6)
		err := c.Fill(rect(-30, -30, 60, 60), uidraw.SolidBrush(hsl.R, hsl.G, hsl.B, 0.7))
		c.Restore()
		if err != nil {
			return err
		}
	}
	return nil
}

func drawPaths(c *uidraw.Context, _ *uidraw.GGRenderer, _, _ float64) error {
	// Dashed wave
	wave := uidraw.NewPath(uidraw.FillModeWinding)
	wave.NewFigure(150, 400)
	wave.BezierTo(200, 350, 250, 450, 300, 400)
	wave.BezierTo(350, 370, 400, 430, 450, 400)
	wave.End()
	err := c.Stroke(wave, uidraw.SolidBrush(1, 0.5, 0, 1), &uidraw.StrokeParams{
		Cap:       uidraw.LineCapRound,
		Join:      uidraw.LineJoinRound,
		Thickness: 6,
		Dashes:    []float64{18, 10},
		DashPhase: 4,
	})
	if err != nil {
		return err
	}

	// Self-intersecting star: the alternate fill mode leaves the center
	// pentagon empty.
	star := uidraw.NewPath(uidraw.FillModeAlternate)
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*4*math.Pi/5
		x := 620 + 70*math.Cos(a)
		y := 400 + 70*math.Sin(a)
		if i == 0 {
			star.NewFigure(x, y)
		} else {
			star.LineTo(x, y)
		}
	}
	star.CloseFigure()
	star.End()
	if err := c.Fill(star, uidraw.SolidBrush(1, 1, 0, 1)); err != nil {
		return err
	}

	// Pie slice
	pie := uidraw.NewPath(uidraw.FillModeWinding)
	pie.NewFigure(300, 520)
	pie.ArcTo(300, 520, 50, -math.Pi/2, 1.5*math.Pi, false)
	pie.CloseFigure()
	pie.End()
	return c.Stroke(pie, uidraw.SolidBrush(0.8, 0.8, 1, 1), &uidraw.StrokeParams{
		Cap:        uidraw.LineCapSquare,
		Join:       uidraw.LineJoinBevel,
		MiterLimit: uidraw.DefaultMiterLimit,
		Thickness:  3,
	})
}
