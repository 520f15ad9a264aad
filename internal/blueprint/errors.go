package blueprint

import "errors"

var (
	// ErrUnknownUserType is returned when a blueprint references an undeclared user type.
	ErrUnknownUserType = errors.New("unknown user type")
	// ErrUnknownModel is returned when a blueprint references an undeclared model.
	ErrUnknownModel = errors.New("unknown model")
	// ErrDuplicateName is returned when two user types or two models share a name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidBlueprint is returned when a blueprint fails validation.
	ErrInvalidBlueprint = errors.New("invalid blueprint")
)
