package render

import (
	"math"
	"math/rand"
)

const (
	inkCyan    = "#22d3ee"
	inkRed     = "#f87171"
	inkGreen   = "#10b981"
	inkTeal    = "#06b6d4"
	inkYellow  = "#facc15"
	inkPink    = "#ec4899"
	inkPurple  = "#9333ea"
	inkIndigo  = "#818cf8"
	inkBlue    = "#60a5fa"
	inkLavende = "#c4b5fd"
)

const logisticPoints = 80

func drawLogistic(s Surface, frame int, rng *rand.Rand) {
	w, h := s.Size()
	f := float64(frame)
	shift := math.Sin(f/20) * 50

	for i := 0; i < logisticPoints; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		ink := inkRed
		if x+shift > y {
			ink = inkCyan
		}
		s.Disc(x, y, 3, ink)
	}

	tilt := math.Sin(f/30) * 20
	s.Line(0, h/2+tilt, w, h/2-tilt, inkGreen)
}

const (
	forestTrees  = 5
	forestDepths = 5
)

func drawForest(s Surface, frame int, _ *rand.Rand) {
	w, h := s.Size()
	f := float64(frame)
	rise := float64(frame % 40)

	for t := 0; t < forestTrees; t++ {
		baseX := float64(t+1) * w / (forestTrees + 1)
		px, py := baseX, h
		for depth := 0; depth < forestDepths; depth++ {
			d := float64(depth)
			bx := baseX + math.Sin(f/10+d)*20
			by := h - d*40 - rise
			s.Line(px, py, bx, by, inkTeal)
			px, py = bx, by
		}
	}
}

func drawBoosting(s Surface, frame int, _ *rand.Rand) {
	w, h := s.Size()
	f := float64(frame)

	curve := func(x float64) float64 {
		return h/2 + math.Sin((x+f*5)/40)*30 - math.Log(x+1)/4*10
	}
	trace(s, w, curve, inkYellow)
}

var neuralLayers = []int{4, 6, 4}

func drawNeural(s Surface, frame int, _ *rand.Rand) {
	w, h := s.Size()
	pulse := math.Sin(float64(frame)/10)*0.5 + 0.5
	gapX := w / float64(len(neuralLayers)+1)

	pos := func(layer, node int) (float64, float64) {
		n := neuralLayers[layer]
		gapY := h / float64(n+1)
		return gapX * float64(layer+1), gapY * float64(node+1)
	}

	edge := Fade(inkPurple, 0.3+0.7*pulse)
	for l := 0; l < len(neuralLayers)-1; l++ {
		for i := 0; i < neuralLayers[l]; i++ {
			x0, y0 := pos(l, i)
			for j := 0; j < neuralLayers[l+1]; j++ {
				x1, y1 := pos(l+1, j)
				s.Line(x0, y0, x1, y1, edge)
			}
		}
	}

	node := Fade(inkPink, 0.4+0.6*pulse)
	for l, n := range neuralLayers {
		for i := 0; i < n; i++ {
			x, y := pos(l, i)
			s.Disc(x, y, 8, node)
		}
	}
}

func drawAutoencoder(s Surface, frame int, _ *rand.Rand) {
	w, h := s.Size()
	f := float64(frame)

	curve := func(x float64) float64 {
		wave := math.Sin((x+f)/20)*40 + math.Sin((x+f)/40)*20
		compress := 0.0
		if off := x - w/2; math.Abs(off) < 60 {
			compress = off / 4
		}
		return h/2 + wave/2 + compress
	}
	trace(s, w, curve, inkPink)
}

// trace samples curve every two pixels across the surface width.
func trace(s Surface, w float64, curve func(float64) float64, ink string) {
	xs := make([]float64, 0, int(w/2)+1)
	ys := make([]float64, 0, cap(xs))
	for x := 0.0; x <= w; x += 2 {
		xs = append(xs, x)
		ys = append(ys, curve(x))
	}
	Polyline(s, xs, ys, ink)
}

const (
	quantumWires   = 4
	flickerChance  = 0.3
	flickerArmSize = 4
)

func drawQuantum(s Surface, frame int, rng *rand.Rand) {
	w, _ := s.Size()
	span := w - 100
	if span <= 0 {
		return
	}

	for i := 0; i < quantumWires; i++ {
		y := 50 + float64(i)*50
		s.Line(50, y, w-50, y, inkIndigo)

		qx := math.Mod(float64(frame*4+i*40), span) + 50
		s.Disc(qx, y, 8, inkBlue)

		if rng.Float64() < flickerChance {
			mx := 50 + rng.Float64()*span
			s.Line(mx-flickerArmSize, y-flickerArmSize, mx+flickerArmSize, y+flickerArmSize, inkLavende)
			s.Line(mx-flickerArmSize, y+flickerArmSize, mx+flickerArmSize, y-flickerArmSize, inkLavende)
		}
	}
}
