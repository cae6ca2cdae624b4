package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"narrow": preset(func(c *Config) {
		c.Physics.DpOverP = 0.05
	}),
	"wide": preset(func(c *Config) {
		c.Physics.DpOverP = 0.2
	}),
	"single": preset(func(c *Config) {
		c.Physics.B = Amplitude{}
	}),
	"antiphase": preset(func(c *Config) {
		c.Physics.B = Amplitude{Re: -1}
	}),
	"heavy": preset(func(c *Config) {
		c.Physics.M = 10
		c.Animation.TMax = 400
		c.Animation.Dt = 0.5
	}),
}

func preset(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
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
