package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Mode
	}{
		{"bool true is all", true, ModeAll},
		{"bool false is off", false, ModeOff},
		{"on alias is all", "on", ModeAll},
		{"off", "off", ModeOff},
		{"all", "all", ModeAll},
		{"trailing", "trailing", ModeTrailing},
		{"leading", "leading", ModeLeading},
		{"between", "between", ModeBetween},
		{"progressive", "progressive", ModeProgressive},
		{"dynamic", "dynamic", ModeDynamic},
		{"mode value passes through", ModeBetween, ModeBetween},
		{"mode alias normalizes", Mode("on"), ModeAll},
		{"nonsense string falls back to off", "nonsense", ModeOff},
		{"unsupported type falls back to off", 42, ModeOff},
		{"nil falls back to off", nil, ModeOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.value))
		})
	}
}

func TestParseMode_AliasIdentity(t *testing.T) {
	// true, "on", and "all" must all resolve to one policy.
	assert.Equal(t, ParseMode(true), ParseMode("all"))
	assert.Equal(t, ParseMode("on"), ParseMode("all"))
	assert.Equal(t, ParseMode(false), ParseMode("off"))
	assert.Equal(t, ParseMode("nonsense"), ParseMode("off"))
}

func TestMode_Valid(t *testing.T) {
	for _, m := range []Mode{ModeOff, ModeAll, ModeTrailing, ModeLeading, ModeBetween, ModeProgressive, ModeDynamic} {
		assert.True(t, m.Valid(), "mode %s", m)
	}

	assert.False(t, Mode("on").Valid(), "aliases are not canonical")
	assert.False(t, Mode("nonsense").Valid())
	assert.False(t, Mode("").Valid())
}
