package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Algorithm: "insertion_sort", Dataset: "random", Count: 8,
		FrameInterval: 200, FPS: 5,
	},
	"classic": {
		Algorithm: "quick_sort", Dataset: "random", Count: 32,
		FrameInterval: 50, FPS: 25,
	},
	"few-unique": {
		Algorithm: "merge_sort", Dataset: "few-unique", Count: 40,
		FrameInterval: 40, FPS: 25,
	},
	"nearly": {
		Algorithm: "bubble_sort", Dataset: "almost-sorted", Count: 48,
		FrameInterval: 30, FPS: 30,
	},
	"stress": {
		Algorithm: "heap_sort", Dataset: "reversed", Count: 128,
		FrameInterval: 10, FPS: 50, Compact: true,
	},
	"bogo": {
		Algorithm: "monkey_sort", Dataset: "random", Count: 5,
		FrameInterval: 100, FPS: 10, MaxAttempts: 5000,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from DefaultConfig, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Dataset = p.Dataset
	cfg.Count = p.Count
	cfg.FrameInterval = p.FrameInterval
	cfg.FPS = p.FPS
	cfg.Compact = p.Compact
	if p.MaxAttempts > 0 {
		cfg.MaxAttempts = p.MaxAttempts
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
