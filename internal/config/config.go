package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/projectile"
)

const (
	DefaultX    = 0.0
	DefaultY    = 1.0
	DefaultVX   = 2 * physics.StandardGravity
	DefaultVY   = physics.StandardGravity
	DefaultDrag = 0.43
	DefaultDt   = 0.1
)

type Config struct {
	Launch   LaunchConfig      `yaml:"launch" toml:"launch" json:"launch"`
	Drag     float64           `yaml:"drag" toml:"drag" json:"drag"`
	Dt       float64           `yaml:"dt" toml:"dt" json:"dt"`
	Method   projectile.Method `yaml:"method" toml:"method" json:"method"`
	MaxSteps int               `yaml:"max_steps,omitempty" toml:"max_steps,omitempty" json:"max_steps,omitempty"`
}

type LaunchConfig struct {
	X  float64 `yaml:"x" toml:"x" json:"x"`
	Y  float64 `yaml:"y" toml:"y" json:"y"`
	VX float64 `yaml:"vx" toml:"vx" json:"vx"`
	VY float64 `yaml:"vy" toml:"vy" json:"vy"`
}

func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			X:  DefaultX,
			Y:  DefaultY,
			VX: DefaultVX,
			VY: DefaultVY,
		},
		Drag:   DefaultDrag,
		Dt:     DefaultDt,
		Method: projectile.ExplicitEuler,
	}
}

// Load decodes a yaml or toml file (chosen by extension) over the defaults.
// LoadOver decodes the file at path on top of a copy of base, so fields the
// file omits keep base's values. base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	c := *base
	cfg := &c

	if isTOML(path) {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Projectile converts the file representation into integrator input.
func (c *Config) Projectile() projectile.Config {
	return projectile.Config{
		X0:       c.Launch.X,
		Y0:       c.Launch.Y,
		VX0:      c.Launch.VX,
		VY0:      c.Launch.VY,
		Drag:     c.Drag,
		Dt:       c.Dt,
		Method:   c.Method,
		MaxSteps: c.MaxSteps,
	}
}

func FromProjectile(p projectile.Config) *Config {
	return &Config{
		Launch:   LaunchConfig{X: p.X0, Y: p.Y0, VX: p.VX0, VY: p.VY0},
		Drag:     p.Drag,
		Dt:       p.Dt,
		Method:   p.Method,
		MaxSteps: p.MaxSteps,
	}
}

func (c *Config) Validate() error {
	return c.Projectile().Validate()
}
