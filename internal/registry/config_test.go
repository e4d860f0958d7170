package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, warnings := ParseConfig(RawConfig{})

	assert.False(t, cfg.DirectMode)
	assert.Equal(t, []EntityType{EntityAccount}, cfg.Entities())
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, warnings)
}

func TestParseConfigEntities(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []string
		warnings int
	}{
		{name: "single", raw: "budget", want: []string{"budget"}},
		{name: "mixed case and spaces", raw: " Account , TAG ", want: []string{"account", "tag"}},
		{name: "all", raw: "all", want: entityNames()},
		{name: "all with others", raw: "tag,ALL", want: entityNames()},
		{name: "unknown dropped", raw: "account,bogus", want: []string{"account"}, warnings: 1},
		{name: "only unknown falls back", raw: "bogus", want: []string{"account"}, warnings: 2},
		{name: "blank", raw: "   ", want: []string{"account"}},
		{name: "declaration order", raw: "piggy_bank,account,rule_group", want: []string{"account", "rule_group", "piggy_bank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, warnings := ParseConfig(RawConfig{EnabledEntities: tt.raw})
			assert.Equal(t, tt.want, cfg.EntityNames())
			assert.Len(t, warnings, tt.warnings)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "On", " on "} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"", "false", "0", "no", "off", "enabled"} {
		assert.False(t, ParseBool(v), v)
	}
}

func TestParseConfigDirectMode(t *testing.T) {
	cfg, _ := ParseConfig(RawConfig{DirectMode: "yes", LogLevel: "debug"})
	assert.True(t, cfg.DirectMode)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}
