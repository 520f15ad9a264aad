package catalog

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ModelParams configures Registry.NewModel.
type ModelParams struct {
	Name        string
	Description string
	Permissions []PermissionSource
	Relations   []*Model
}

// Model is a data entity stories are generated for.
type Model struct {
	ID          ModelID
	Name        string
	Description string

	permissions   []PermissionID
	permissionSet map[PermissionID]struct{}
	userTypes     []UserTypeID
	userTypeSet   map[UserTypeID]struct{}
	relations     []ModelID
	relationSet   map[ModelID]struct{}
	registry      *Registry
}

type sourceKind uint8

const (
	sourcePermission sourceKind = iota + 1
	sourceUserType
)

// PermissionSource is something a model can take a permission from: either a Permission or a
// UserType carrying a default permission.
type PermissionSource struct {
	kind       sourceKind
	permission *Permission
	userType   *UserType
}

// FromPermission wraps a permission.
func FromPermission(p *Permission) PermissionSource {
	return PermissionSource{kind: sourcePermission, permission: p}
}

// FromUserType wraps a user type; the model will use its default permission.
func FromUserType(u *UserType) PermissionSource {
	return PermissionSource{kind: sourceUserType, userType: u}
}

// Permissions wraps several permissions.
func Permissions(ps ...*Permission) []PermissionSource {
	out := make([]PermissionSource, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPermission(p))
	}

	return out
}

// UserTypes wraps several user types.
func UserTypes(us ...*UserType) []PermissionSource {
	out := make([]PermissionSource, 0, len(us))
	for _, u := range us {
		out = append(out, FromUserType(u))
	}

	return out
}

// Registry returns the owning registry.
func (m *Model) Registry() *Registry {
	return m.registry
}

// resolve normalises a source into the permission to add and the user type attached directly.
func (m *Model) resolve(src PermissionSource) (*Permission, *UserType, error) {
	switch src.kind {
	case sourcePermission:
		if src.permission == nil {
			return nil, nil, ErrInvalidPermissionSource
		}

		if src.permission.registry != m.registry {
			return nil, nil, errors.Wrapf(ErrForeignEntity, "permission %s on model %s", src.permission.ID, m.Name)
		}

		return src.permission, nil, nil
	case sourceUserType:
		if src.userType == nil {
			return nil, nil, ErrInvalidPermissionSource
		}

		if src.userType.registry != m.registry {
			return nil, nil, errors.Wrapf(ErrForeignEntity, "user type %s on model %s", src.userType.Name, m.Name)
		}

		p, ok := src.userType.DefaultPermission()
		if !ok {
			return nil, nil, errors.Wrapf(ErrMissingUserType,
				"user type %s does not have a default permission", src.userType.Name)
		}

		return p, src.userType, nil
	default:
		return nil, nil, ErrInvalidPermissionSource
	}
}

// AddPermission adds permissions in order. A permission already on the model is skipped.
// Each new permission is checked with CheckConflict and frozen once added.
// Processing stops at the first error; earlier sources stay applied.
func (m *Model) AddPermission(sources ...PermissionSource) error {
	for _, src := range sources {
		p, direct, err := m.resolve(src)
		if err != nil {
			return err
		}

		if _, ok := m.permissionSet[p.ID]; !ok {
			if err = CheckConflict(m, p); err != nil {
				return err
			}

			m.permissionSet[p.ID] = struct{}{}
			m.permissions = append(m.permissions, p.ID)
			p.frozen = true

			log.Trace().
				Str("model", m.Name).
				Str("permission", string(p.ID)).
				Str("actions", p.actions.String()).
				Bool("can", p.can).
				Msg("permission added")
		}

		if p.userType != "" {
			m.addUserType(p.userType)
		}

		if direct != nil {
			m.addUserType(direct.ID)
		}
	}

	return nil
}

func (m *Model) addUserType(id UserTypeID) {
	if _, ok := m.userTypeSet[id]; ok {
		return
	}

	m.userTypeSet[id] = struct{}{}
	m.userTypes = append(m.userTypes, id)
}

// AddRelation relates m to other models. Relating a model to itself fails with ErrSelfRelation.
func (m *Model) AddRelation(models ...*Model) error {
	for _, other := range models {
		if other == nil {
			continue
		}

		if other.ID == m.ID {
			return errors.Wrapf(ErrSelfRelation, "model %s", m.Name)
		}

		if other.registry != m.registry {
			return errors.Wrapf(ErrForeignEntity, "model %s related to %s", other.Name, m.Name)
		}

		if _, ok := m.relationSet[other.ID]; ok {
			continue
		}

		m.relationSet[other.ID] = struct{}{}
		m.relations = append(m.relations, other.ID)
	}

	return nil
}

// HasPermission reports whether p was added to m.
func (m *Model) HasPermission(p *Permission) bool {
	if p == nil {
		return false
	}

	_, ok := m.permissionSet[p.ID]

	return ok
}

// Permissions returns the permissions in insertion order.
func (m *Model) Permissions() []*Permission {
	out := make([]*Permission, 0, len(m.permissions))
	for _, id := range m.permissions {
		if p, ok := m.registry.Permission(id); ok {
			out = append(out, p)
		}
	}

	return out
}

// UserTypes returns every user type referenced by the permissions or attached directly,
// in the order they were first seen.
func (m *Model) UserTypes() []*UserType {
	out := make([]*UserType, 0, len(m.userTypes))
	for _, id := range m.userTypes {
		if u, ok := m.registry.UserType(id); ok {
			out = append(out, u)
		}
	}

	return out
}

// Relations returns the related models in insertion order.
func (m *Model) Relations() []*Model {
	out := make([]*Model, 0, len(m.relations))
	for _, id := range m.relations {
		if other, ok := m.registry.Model(id); ok {
			out = append(out, other)
		}
	}

	return out
}

// IsRelatedTo reports whether other was added with AddRelation.
func (m *Model) IsRelatedTo(other *Model) bool {
	if other == nil {
		return false
	}

	_, ok := m.relationSet[other.ID]

	return ok
}

// Actions is the union of the actions of all allowing permissions, computed on every call.
func (m *Model) Actions() ActionSet {
	var s ActionSet

	for _, p := range m.Permissions() {
		if p.can {
			s = s.Union(p.actions)
		}
	}

	return s
}

// ModelOutput is the serialisable form of a Model.
type ModelOutput struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Actions     []Action           `json:"actions"`
	Permissions []PermissionOutput `json:"permissions"`
	UserTypes   []UserTypeOutput   `json:"userTypes"`
	Relations   []string           `json:"relations,omitempty"`
}

// Output returns the serialisable form.
func (m *Model) Output() ModelOutput {
	out := ModelOutput{
		ID:          string(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Actions:     m.Actions().Actions(),
		Permissions: make([]PermissionOutput, 0, len(m.permissions)),
		UserTypes:   make([]UserTypeOutput, 0, len(m.userTypes)),
	}

	for _, p := range m.Permissions() {
		out.Permissions = append(out.Permissions, p.Output())
	}

	for _, u := range m.UserTypes() {
		out.UserTypes = append(out.UserTypes, u.Output())
	}

	for _, other := range m.Relations() {
		out.Relations = append(out.Relations, other.Name)
	}

	return out
}
