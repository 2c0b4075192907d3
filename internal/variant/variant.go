package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for names outside the closed set.
var ErrUnknown = errors.New("variant: unknown model")

type Variant int

const (
	None Variant = iota
	LogisticRegression
	RandomForest
	XGBoost
	DeepMLP
	Autoencoder
	QuantumSVM

	// Count is one past the last real variant; lookup tables are sized by it.
	Count
)

type Family int

const (
	Classical Family = iota
	Deep
	Quantum
)

func (f Family) String() string {
	switch f {
	case Deep:
		return "deep learning"
	case Quantum:
		return "quantum hybrid"
	default:
		return "classical ml"
	}
}

// Info is the display metadata attached to each variant.
type Info struct {
	Tag         string
	Name        string
	Description string
	Family      Family
	Accent      string // hex color
	Secondary   string
}

var infos = [Count]Info{
	None: {Tag: "None", Name: "none"},
	LogisticRegression: {
		Tag:         "LogisticRegression",
		Name:        "Logistic Regression",
		Description: "Interpretable model estimating fraud probability via logistic function mapping.",
		Family:      Classical,
		Accent:      "#34d399",
		Secondary:   "#f87171",
	},
	RandomForest: {
		Tag:         "RandomForest",
		Name:        "Random Forest",
		Description: "Ensemble of decision trees combining multiple weak learners for robust detection.",
		Family:      Classical,
		Accent:      "#06b6d4",
		Secondary:   "#2563eb",
	},
	XGBoost: {
		Tag:         "XGBoost",
		Name:        "XGBoost",
		Description: "Boosted gradient trees refining predictions iteratively for superior performance.",
		Family:      Classical,
		Accent:      "#facc15",
		Secondary:   "#f97316",
	},
	DeepMLP: {
		Tag:         "DeepMLP",
		Name:        "Deep Learning (MLP)",
		Description: "Multi-layer network learning complex transaction embeddings in latent space.",
		Family:      Deep,
		Accent:      "#ec4899",
		Secondary:   "#9333ea",
	},
	Autoencoder: {
		Tag:         "Autoencoder",
		Name:        "Autoencoder",
		Description: "Unsupervised reconstruction model detecting anomalies via reconstruction loss.",
		Family:      Deep,
		Accent:      "#ec4899",
		Secondary:   "#8b5cf6",
	},
	QuantumSVM: {
		Tag:         "QuantumSVM",
		Name:        "Quantum SVM",
		Description: "Quantum-classical hybrid SVM leveraging kernel mapping in high-dimensional spaces.",
		Family:      Quantum,
		Accent:      "#818cf8",
		Secondary:   "#60a5fa",
	},
}

// All returns the selectable variants in display order.
func All() []Variant {
	out := make([]Variant, 0, Count-1)
	for v := None + 1; v < Count; v++ {
		out = append(out, v)
	}
	return out
}

func (v Variant) Valid() bool { return v > None && v < Count }

func (v Variant) Info() Info {
	if v < None || v >= Count {
		return infos[None]
	}
	return infos[v]
}

func (v Variant) String() string { return v.Info().Tag }

// Name is the human readable label, e.g. "Deep Learning (MLP)".
func (v Variant) Name() string { return v.Info().Name }

// Parse accepts the tag, the display name or a dashed/underscored alias,
// case-insensitively.
func Parse(s string) (Variant, error) {
	key := normalize(s)
	if key == "" {
		return None, fmt.Errorf("%w: empty name", ErrUnknown)
	}
	for _, v := range All() {
		info := v.Info()
		if key == normalize(info.Tag) || key == normalize(info.Name) {
			return v, nil
		}
	}
	if v, ok := aliases[key]; ok {
		return v, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknown, s)
}

var aliases = map[string]Variant{
	"logistic": LogisticRegression,
	"lr":       LogisticRegression,
	"forest":   RandomForest,
	"rf":       RandomForest,
	"xgb":      XGBoost,
	"mlp":      DeepMLP,
	"deep":     DeepMLP,
	"ae":       Autoencoder,
	"quantum":  QuantumSVM,
	"qsvm":     QuantumSVM,
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Names returns the tags of every selectable variant.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.String()
	}
	return names
}
