package eventportal

import (
	"strconv"
	"strings"
)

// State is the lifecycle state of a version. The service owns transitions;
// they only move forward: DRAFT → RELEASED → DEPRECATED → RETIRED.
type State int

const (
	// StateUnknown is returned for missing or unrecognized state ids. It is
	// never treated as DRAFT.
	StateUnknown State = iota
	StateDraft
	StateReleased
	StateDeprecated
	StateRetired
)

var stateLabels = map[State]string{
	StateDraft:      "DRAFT",
	StateReleased:   "RELEASED",
	StateDeprecated: "DEPRECATED",
	StateRetired:    "RETIRED",
}

// ParseState maps a service state id ("1".."4") to a State. Any other
// input, including the empty string, yields StateUnknown.
func ParseState(stateID string) State {
	switch stateID {
	case "1":
		return StateDraft
	case "2":
		return StateReleased
	case "3":
		return StateDeprecated
	case "4":
		return StateRetired
	}
	return StateUnknown
}

// ParseStateLabel maps a label such as "draft" or "RELEASED" to a State,
// ignoring case. Numeric ids are accepted too.
func ParseStateLabel(label string) State {
	label = strings.ToUpper(strings.TrimSpace(label))
	for s, l := range stateLabels {
		if l == label {
			return s
		}
	}
	return ParseState(label)
}

// String returns the upper-case label, or "UNKNOWN".
func (s State) String() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "UNKNOWN"
}

// ID returns the service state id, or "" for StateUnknown.
func (s State) ID() string {
	if !s.Known() {
		return ""
	}
	return strconv.Itoa(int(s))
}

// Known reports whether s is one of the four lifecycle states.
func (s State) Known() bool {
	_, ok := stateLabels[s]
	return ok
}

// Mutable reports whether a version in state s may be patched.
func (s State) Mutable() bool {
	return s == StateDraft
}
