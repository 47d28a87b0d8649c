package config

import (
	"sort"

	"github.com/san-kum/projsim/internal/projectile"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"vacuum": {
		Launch: LaunchConfig{X: 0, Y: 1, VX: DefaultVX, VY: DefaultVY},
		Drag:   0, Dt: 0.1, Method: projectile.ExplicitEuler,
	},
	"drop": {
		Launch: LaunchConfig{X: 0, Y: 5, VX: 0, VY: 0},
		Drag:   0, Dt: 0.1, Method: projectile.ExplicitEuler,
	},
	"lob": {
		Launch: LaunchConfig{X: 0, Y: 0, VX: 5, VY: 20},
		Drag:   0.1, Dt: 0.05, Method: projectile.SemiImplicitEuler,
	},
	"mortar": {
		Launch: LaunchConfig{X: 0, Y: 0, VX: 70.7, VY: 70.7},
		Drag:   0.05, Dt: 0.05, Method: projectile.SemiImplicitEuler,
	},
	"graze": {
		Launch: LaunchConfig{X: 0, Y: 0, VX: 0, VY: 0.01},
		Drag:   0, Dt: 1.0, Method: projectile.ExplicitEuler,
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
