package catalog

import "github.com/rs/zerolog/log"

// unknownUserTypeName stands in for the user type name of unbound permissions in errors.
const unknownUserTypeName = "unknown user type"

// CheckConflict validates candidate against the permissions already on m.
//
// For every existing permission of the same user type (unbound permissions share the empty
// user type) and every action of candidate, the existing permission must not cover that
// action with the opposite Can. The first offending pair in insertion order is reported.
// CheckConflict never mutates m.
func CheckConflict(m *Model, candidate *Permission) error {
	for _, existing := range m.Permissions() {
		if existing.userType != candidate.userType {
			continue
		}

		for _, action := range candidate.actions.Actions() {
			if !existing.actions.Has(action) || existing.can == candidate.can {
				continue
			}

			name := m.registry.userTypeName(candidate.userType)
			if name == "" {
				name = unknownUserTypeName
			}

			log.Debug().
				Str("model", m.Name).
				Str("userType", name).
				Str("action", string(action)).
				Str("existing", string(existing.ID)).
				Msg("permission conflict")

			return &PermissionConflictError{
				Action:    action,
				UserType:  name,
				Model:     m.Name,
				Existing:  existing.ID,
				Candidate: candidate.ID,
			}
		}
	}

	return nil
}
