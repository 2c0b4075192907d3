package render

// Surface is the drawing target for model routines. Coordinates are logical
// pixels with the origin top-left; out-of-range drawing is clipped.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Plot(x, y float64, ink string)
	Line(x0, y0, x1, y1 float64, ink string)
	Disc(cx, cy, r float64, ink string)
}

// Polyline joins consecutive points with lines.
func Polyline(s Surface, xs, ys []float64, ink string) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 1; i < n; i++ {
		s.Line(xs[i-1], ys[i-1], xs[i], ys[i], ink)
	}
}
