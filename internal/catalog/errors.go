package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionConflict is returned when a user type would be both allowed and denied the same
	// action on one model.
	ErrPermissionConflict = errors.New("conflicting permission")

	// ErrSelfRelation is returned when a model is related to itself.
	ErrSelfRelation = errors.New("model can not relate to itself")

	// ErrMissingUserType is returned when a permission has no resolvable user type, or when a user
	// type without a default permission is used as a permission shorthand.
	ErrMissingUserType = errors.New("missing user type")

	// ErrPermissionFrozen is returned when a permission is changed after it was added to a model.
	ErrPermissionFrozen = errors.New("permission is attached to a model and can not be changed")

	// ErrForeignEntity is returned when entities of two different registries are combined.
	ErrForeignEntity = errors.New("entity belongs to another registry")

	// ErrInvalidPermissionSource is returned for a zero PermissionSource or one wrapping nil.
	ErrInvalidPermissionSource = errors.New("invalid permission source")

	// ErrUnknownAction is returned when an action name can not be parsed.
	ErrUnknownAction = errors.New("unknown action")
)

// PermissionConflictError describes which action, user type and model a rejected permission
// collided on.
type PermissionConflictError struct {
	Action    Action
	UserType  string
	Model     string
	Existing  PermissionID
	Candidate PermissionID
}

// Error implements the error interface.
func (e *PermissionConflictError) Error() string {
	return fmt.Sprintf(
		"permission for action %s has the opposite permission for %s on model %s",
		e.Action, e.UserType, e.Model,
	)
}

// Unwrap makes errors.Is(err, ErrPermissionConflict) work.
func (e *PermissionConflictError) Unwrap() error {
	return ErrPermissionConflict
}
