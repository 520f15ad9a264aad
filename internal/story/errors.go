package story

import "errors"

var (
	// ErrNoActor is returned when a story without a user type is serialised.
	ErrNoActor = errors.New("user story has no user type")

	// ErrNoWant is returned when a story with an empty want clause is serialised.
	ErrNoWant = errors.New("user story has no want clause")
)
