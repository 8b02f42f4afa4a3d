package config

import (
	"sort"

	"github.com/san-kum/decidiag/internal/decision"
)

type Preset struct {
	Description string
	Params      decision.Params
}

var Presets = map[string]*Preset{
	"balanced": {
		Description: "slider defaults",
		Params:      decision.Params{P: 0.5, C: -10.0},
	},
	"skeptic": {
		Description: "item is probably generated",
		Params:      decision.Params{P: 0.2, C: -10.0},
	},
	"trusting": {
		Description: "item is probably a real photo",
		Params:      decision.Params{P: 0.9, C: -10.0},
	},
	"costly": {
		Description: "being deceived must be avoided at all costs",
		Params:      decision.Params{P: 0.5, C: -20.0},
	},
	"cheap": {
		Description: "being deceived barely matters",
		Params:      decision.Params{P: 0.5, C: -2.5},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
