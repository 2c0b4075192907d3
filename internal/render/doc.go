// Package render draws the animated model canvas.
//
// Drawing routines work in logical coordinates (nominally 500×300) against a
// [Surface]. The terminal implementation is [Canvas], a braille grid with one
// color per cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Each cell packs 2×4 sub-pixels, so a 100×30 canvas resolves 200×120 dots.
//
// [Renderer.Render] picks exactly one routine per variant through a fixed
// table indexed by [variant.Variant]; a missing entry panics at init.
package render
