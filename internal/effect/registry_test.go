package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryStyles(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		e, err := r.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, e.Name())
	}
}

func TestRegistryAliases(t *testing.T) {
	r := NewRegistry()
	tests := map[string]string{
		"rainbow":           "sweep",
		"explosion":         "burst",
		"waves":             "wave",
		"waves-gradient":    "wave-gradient",
		"mandelbrot":        "fractal",
		"mandelbrot-matrix": "fractal-oscillating",
		"mandelbrot-fast":   "fractal-fast",
	}
	for alias, want := range tests {
		got, err := r.Resolve(alias)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Contains(t, r.Aliases(want), alias)
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Get("plasma")
	assert.EqualError(t, err, "unknown style: plasma")
}

func TestRegistryFreshInstances(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Get("fractal")
	b, _ := r.Get("fractal")
	assert.NotSame(t, a, b)
}
