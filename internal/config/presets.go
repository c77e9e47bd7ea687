package config

import "sort"

var Presets = map[string]*Config{
	"intro": {
		Style: "burst", Text: "welcome", DurationMs: 3000, Backend: "ansi",
	},
	"rainbow": {
		Style: "sweep", Text: "", DurationMs: 5000, Backend: "ansi",
	},
	"ocean": {
		Style: "wave", Text: "~ ocean ~", DurationMs: 10000, Backend: "ansi",
	},
	"aurora": {
		Style: "wave-gradient", Text: "", DurationMs: 10000, Backend: "ansi",
	},
	"screensaver": {
		Style: "fractal-oscillating", Text: "", DurationMs: 0, Backend: "ansi",
	},
	"deep-zoom": {
		Style: "fractal", Text: "", DurationMs: 20000, Backend: "ansi",
	},
	"pulse": {
		Style: "fractal-fast", Text: "", DurationMs: 8000, Backend: "tcell",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
