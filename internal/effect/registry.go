package effect

import (
	"fmt"
	"math/rand"
	"sort"
)

// Registry maps style names, and their legacy aliases, to constructors.
// Every Get returns a fresh effect, since zoom laws carry state.
type Registry struct {
	styles  map[string]func() Effect
	aliases map[string]string
	rng     *rand.Rand
}

func NewRegistry() *Registry {
	r := &Registry{
		styles:  make(map[string]func() Effect),
		aliases: make(map[string]string),
	}

	r.styles["sweep"] = func() Effect { return NewSweep() }
	r.styles["burst"] = func() Effect { return NewBurst(r.rng) }
	r.styles["wave"] = func() Effect { return NewWave() }
	r.styles["wave-gradient"] = func() Effect { return NewGradientWave() }
	r.styles["fractal"] = func() Effect { return NewFractal() }
	r.styles["fractal-oscillating"] = func() Effect { return NewOscillatingFractal() }
	r.styles["fractal-fast"] = func() Effect { return NewFastFractal() }

	r.aliases["rainbow"] = "sweep"
	r.aliases["explosion"] = "burst"
	r.aliases["waves"] = "wave"
	r.aliases["waves-gradient"] = "wave-gradient"
	r.aliases["mandelbrot"] = "fractal"
	r.aliases["mandelbrot-matrix"] = "fractal-oscillating"
	r.aliases["mandelbrot-fast"] = "fractal-fast"

	return r
}

// WithRand makes burst colours reproducible.
func (r *Registry) WithRand(rng *rand.Rand) *Registry {
	r.rng = rng
	return r
}

// Resolve turns an alias into its canonical style name.
func (r *Registry) Resolve(name string) (string, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	if _, ok := r.styles[name]; !ok {
		return "", fmt.Errorf("unknown style: %s", name)
	}
	return name, nil
}

func (r *Registry) Get(name string) (Effect, error) {
	canonical, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return r.styles[canonical](), nil
}

// List returns canonical style names in display order.
func (r *Registry) List() []string {
	return []string{"sweep", "burst", "wave", "wave-gradient", "fractal", "fractal-oscillating", "fractal-fast"}
}

// Aliases returns the legacy names that resolve to style.
func (r *Registry) Aliases(style string) []string {
	var out []string
	for alias, canonical := range r.aliases {
		if canonical == style {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
