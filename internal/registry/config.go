package registry

import (
	"fmt"
	"sort"
	"strings"
)

// RawConfig holds the unparsed settings the registry depends on, as read
// from the environment or a config file.
type RawConfig struct {
	DirectMode      string
	EnabledEntities string
	LogLevel        string
}

// Config controls which entities are exposed and how.
type Config struct {
	DirectMode      bool
	EnabledEntities map[EntityType]bool
	LogLevel        string
}

// DefaultConfig is the configuration used when nothing is set.
func DefaultConfig() Config {
	cfg, _ := ParseConfig(RawConfig{})
	return cfg
}

// ParseConfig turns raw settings into a Config. It never fails: unknown
// entity names are dropped and reported in the returned warnings, and an
// empty entity set falls back to {account}.
func ParseConfig(raw RawConfig) (Config, []string) {
	var warnings []string

	cfg := Config{
		DirectMode:      ParseBool(raw.DirectMode),
		EnabledEntities: make(map[EntityType]bool),
		LogLevel:        strings.ToUpper(strings.TrimSpace(raw.LogLevel)),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
	}

	value := raw.EnabledEntities
	if strings.TrimSpace(value) == "" {
		value = string(EntityAccount)
	}

	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "all" {
			for _, e := range entityTypes {
				cfg.EnabledEntities[e] = true
			}
			continue
		}
		e, err := ParseEntityType(name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring unknown entity type %q", name))
			continue
		}
		cfg.EnabledEntities[e] = true
	}

	if len(cfg.EnabledEntities) == 0 {
		warnings = append(warnings, "no valid entities enabled, defaulting to account")
		cfg.EnabledEntities[EntityAccount] = true
	}

	return cfg, warnings
}

// ParseBool accepts true, 1, yes and on (case-insensitive). Anything else,
// including the empty string, is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// Enabled reports whether e is in the enabled set.
func (c Config) Enabled(e EntityType) bool {
	return c.EnabledEntities[e]
}

// Entities returns the enabled entity types in declaration order.
func (c Config) Entities() []EntityType {
	out := make([]EntityType, 0, len(c.EnabledEntities))
	for e := range c.EnabledEntities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return entityIndex(out[i]) < entityIndex(out[j])
	})
	return out
}

// EntityNames is Entities as strings.
func (c Config) EntityNames() []string {
	entities := c.Entities()
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = string(e)
	}
	return out
}
