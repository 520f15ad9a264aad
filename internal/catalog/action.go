package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

// Action is one of the CRUD operations a permission can cover.
type Action string

const (
	// Create allows adding new records.
	Create Action = "create"
	// Read allows listing and viewing records.
	Read Action = "read"
	// Update allows changing records.
	Update Action = "update"
	// Delete allows removing records.
	Delete Action = "delete"
	// All is input shorthand for create, read, update and delete. It is never stored.
	All Action = "all"
)

// CRUD lists the storable actions in canonical order.
var CRUD = []Action{Create, Read, Update, Delete} //nolint:gochecknoglobals

// ParseAction converts a case-insensitive action name.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))

	switch a {
	case Create, Read, Update, Delete, All:
		return a, nil
	default:
		return "", errors.Wrapf(ErrUnknownAction, "action %q", s)
	}
}

func (a Action) bit() ActionSet {
	switch a {
	case Create:
		return 1 << 0
	case Read:
		return 1 << 1
	case Update:
		return 1 << 2
	case Delete:
		return 1 << 3
	case All:
		return fullSet
	default:
		return 0
	}
}

// ActionSet is a set of CRUD actions. The zero value is empty.
type ActionSet uint8

const fullSet ActionSet = 0b1111

// NewActionSet builds a set from the given actions, expanding All.
// Unknown actions are ignored.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s |= a.bit()
	}

	return s
}

// Has reports whether a is in the set. Has(All) is true only for a full set.
func (s ActionSet) Has(a Action) bool {
	b := a.bit()
	return b != 0 && s&b == b
}

// With returns a copy of s including the given actions.
func (s ActionSet) With(actions ...Action) ActionSet {
	return s | NewActionSet(actions...)
}

// Union returns the actions present in s or o.
func (s ActionSet) Union(o ActionSet) ActionSet {
	return s | o
}

// IsFull reports whether all four CRUD actions are present.
func (s ActionSet) IsFull() bool {
	return s&fullSet == fullSet
}

// IsEmpty reports whether no action is present.
func (s ActionSet) IsEmpty() bool {
	return s&fullSet == 0
}

// Len returns the number of actions in the set.
func (s ActionSet) Len() int {
	n := 0
	for _, a := range CRUD {
		if s.Has(a) {
			n++
		}
	}

	return n
}

// Actions returns the members in canonical CRUD order.
func (s ActionSet) Actions() []Action {
	out := make([]Action, 0, len(CRUD))
	for _, a := range CRUD {
		if s.Has(a) {
			out = append(out, a)
		}
	}

	return out
}

// String renders the set as a comma separated list.
func (s ActionSet) String() string {
	names := make([]string, 0, len(CRUD))
	for _, a := range s.Actions() {
		names = append(names, string(a))
	}

	return strings.Join(names, ",")
}
