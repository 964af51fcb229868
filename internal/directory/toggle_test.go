package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	state := ParseRawState("")
	assert.Equal(t, RawCollapsed, state, "initial state")

	state = Toggle(state)
	assert.Equal(t, RawExpanded, state)
	assert.True(t, state.Expanded())
	assert.Equal(t, "Hide raw JSON", state.Label())

	state = Toggle(state)
	assert.Equal(t, RawCollapsed, state)
	assert.False(t, state.Expanded())
	assert.Equal(t, "View raw JSON", state.Label())
}

func TestParseRawState(t *testing.T) {
	tests := map[string]RawState{
		"collapsed": RawCollapsed,
		"expanded":  RawExpanded,
		"EXPANDED":  RawCollapsed,
		"open":      RawCollapsed,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseRawState(in), in)
	}
}
