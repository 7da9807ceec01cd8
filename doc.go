// Package uidraw is the drawing backend of a cross-platform GUI toolkit.
//
// # Overview
//
// uidraw translates the toolkit's platform-independent 2D vector model
// (paths, brushes, stroke parameters, transforms and clipping) into calls
// on an immediate-mode vector renderer. The default renderer is backed by
// github.com/gogpu/gg; any type implementing [Renderer] can be used.
//
// # Quick Start
//
//	dc := gg.NewContext(256, 256)
//	c := uidraw.NewContext(uidraw.NewGGRenderer(dc), uidraw.DefaultStyle())
//	defer c.Close()
//
//	p := uidraw.NewPath(uidraw.FillModeWinding)
//	p.AddRectangle(16, 16, 224, 224)
//	p.End()
//
//	_ = c.Fill(p, uidraw.SolidBrush(0.2, 0.4, 0.8, 1))
//
// # Transactions
//
// Every drawing verb (Stroke, Fill, Transform, Clip) is a complete,
// self-contained paint transaction: the renderer state is saved on entry
// and restored on exit. A transform or clip therefore does not outlive the
// call that applied it. Callers that need a persistent transform or clip
// bracket their work with [Context.Save] and [Context.Restore] and apply
// it on the renderer directly.
//
// # Threading
//
// A Context and its renderer must only be used from the goroutine that
// owns the drawing surface, usually the UI event loop. uidraw does no
// locking of its own.
//
// # Ownership
//
// A Context borrows its renderer and style. Closing the Context releases
// neither.
package uidraw
