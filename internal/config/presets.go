package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"default": preset(func(c *Config) {}),
	"bouncy": preset(func(c *Config) {
		c.Physics.Restitution = 0.96
		c.Physics.GroundFriction = 0.02
	}),
	"syrup": preset(func(c *Config) {
		c.Physics.AirDrag = 0.002
		c.Physics.Restitution = 0.3
	}),
	"crowded": preset(func(c *Config) {
		c.Spawn.InitialBodies = 40
		c.Spawn.MaxBodies = 120
		c.Spawn.IntervalMin = 0.1
		c.Spawn.IntervalMax = 0.4
		c.Spawn.RadiusMin = 6
		c.Spawn.RadiusMax = 16
	}),
	"moon": preset(func(c *Config) {
		c.Physics.Gravity = 300
		c.Physics.AirDrag = 0
	}),
	"hail": preset(func(c *Config) {
		c.Physics.Substeps = 4
		c.Spawn.RadiusMin = 4
		c.Spawn.RadiusMax = 8
		c.Spawn.DropJitter = 200
	}),
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
