package render

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/fraudsim/internal/variant"
)

// DrawFunc draws one frame of a model animation. Routines must only touch s
// and rng.
type DrawFunc func(s Surface, frame int, rng *rand.Rand)

var routines = [variant.Count]DrawFunc{
	variant.LogisticRegression: drawLogistic,
	variant.RandomForest:       drawForest,
	variant.XGBoost:            drawBoosting,
	variant.DeepMLP:            drawNeural,
	variant.Autoencoder:        drawAutoencoder,
	variant.QuantumSVM:         drawQuantum,
}

func init() {
	for _, v := range variant.All() {
		if routines[v] == nil {
			panic(fmt.Sprintf("render: no routine for variant %s", v))
		}
	}
}

// Routine returns the drawing routine for v.
func Routine(v variant.Variant) (DrawFunc, bool) {
	if !v.Valid() {
		return nil, false
	}
	return routines[v], true
}

type Renderer struct {
	rng *rand.Rand
}

// NewRenderer returns a renderer drawing from rng. A nil rng is seeded from
// the global source.
func NewRenderer(rng *rand.Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Renderer{rng: rng}
}

// Render clears s and draws frame of v. An invalid variant leaves s blank.
func (r *Renderer) Render(s Surface, v variant.Variant, frame int) {
	s.Clear()
	draw, ok := Routine(v)
	if !ok {
		return
	}
	draw(s, frame, r.rng)
}
