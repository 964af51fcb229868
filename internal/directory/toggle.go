package directory

// RawState is the visibility of a card's raw JSON block.
type RawState string

const (
	RawCollapsed RawState = "collapsed"
	RawExpanded  RawState = "expanded"
)

// ParseRawState reads the page's raw query value. Anything unrecognised is
// collapsed, the initial state.
func ParseRawState(s string) RawState {
	if RawState(s) == RawExpanded {
		return RawExpanded
	}
	return RawCollapsed
}

// Toggle is the only transition: collapsed <-> expanded.
func Toggle(s RawState) RawState {
	if s == RawExpanded {
		return RawCollapsed
	}
	return RawExpanded
}

func (s RawState) Expanded() bool { return s == RawExpanded }

// Label is the toggle button text for the state.
func (s RawState) Label() string {
	if s.Expanded() {
		return "Hide raw JSON"
	}
	return "View raw JSON"
}
