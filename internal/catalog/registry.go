package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type (
	// UserTypeID identifies a UserType within its Registry.
	UserTypeID string
	// PermissionID identifies a Permission within its Registry.
	PermissionID string
	// ModelID identifies a Model within its Registry.
	ModelID string
)

// Registry owns user types, permissions and models and resolves ids between them.
// A Registry is not safe for concurrent use.
type Registry struct {
	userTypes       map[UserTypeID]*UserType
	userTypeOrder   []UserTypeID
	permissions     map[PermissionID]*Permission
	permissionOrder []PermissionID
	models          map[ModelID]*Model
	modelOrder      []ModelID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		userTypes:   make(map[UserTypeID]*UserType),
		permissions: make(map[PermissionID]*Permission),
		models:      make(map[ModelID]*Model),
	}
}

// NewUserType creates a user type without a default permission.
func (r *Registry) NewUserType(name string) *UserType {
	u := &UserType{
		ID:       UserTypeID(uuid.NewString()),
		Name:     name,
		registry: r,
	}

	r.userTypes[u.ID] = u
	r.userTypeOrder = append(r.userTypeOrder, u.ID)

	return u
}

// NewPermission creates a detached permission.
// A UserType from another registry is ignored and logged.
func (r *Registry) NewPermission(params PermissionParams) *Permission {
	p := &Permission{
		ID:          PermissionID(uuid.NewString()),
		Name:        params.Name,
		Description: params.Description,
		actions:     NewActionSet(params.Actions...),
		can:         !params.Deny,
		scope:       params.Scope,
		registry:    r,
	}

	if params.UserType != nil {
		if params.UserType.registry == r {
			p.userType = params.UserType.ID
		} else {
			log.Warn().Str("userType", params.UserType.Name).Msg("ignoring user type of another registry")
		}
	}

	r.permissions[p.ID] = p
	r.permissionOrder = append(r.permissionOrder, p.ID)

	return p
}

// NewModel creates a model and applies the initial relations and permissions in that order.
// On error the model stays registered with whatever was applied before the failure.
func (r *Registry) NewModel(params ModelParams) (*Model, error) {
	m := &Model{
		ID:            ModelID(uuid.NewString()),
		Name:          params.Name,
		Description:   params.Description,
		permissionSet: make(map[PermissionID]struct{}),
		userTypeSet:   make(map[UserTypeID]struct{}),
		relationSet:   make(map[ModelID]struct{}),
		registry:      r,
	}

	r.models[m.ID] = m
	r.modelOrder = append(r.modelOrder, m.ID)

	if err := m.AddRelation(params.Relations...); err != nil {
		return m, err
	}

	if err := m.AddPermission(params.Permissions...); err != nil {
		return m, err
	}

	return m, nil
}

// UserType looks up a user type by id.
func (r *Registry) UserType(id UserTypeID) (*UserType, bool) {
	u, ok := r.userTypes[id]
	return u, ok
}

// Permission looks up a permission by id.
func (r *Registry) Permission(id PermissionID) (*Permission, bool) {
	p, ok := r.permissions[id]
	return p, ok
}

// Model looks up a model by id.
func (r *Registry) Model(id ModelID) (*Model, bool) {
	m, ok := r.models[id]
	return m, ok
}

// UserTypeByName returns the first user type with the given name, ignoring case.
func (r *Registry) UserTypeByName(name string) (*UserType, bool) {
	for _, id := range r.userTypeOrder {
		if u := r.userTypes[id]; strings.EqualFold(u.Name, name) {
			return u, true
		}
	}

	return nil, false
}

// ModelByName returns the first model with the given name, ignoring case.
func (r *Registry) ModelByName(name string) (*Model, bool) {
	for _, id := range r.modelOrder {
		if m := r.models[id]; strings.EqualFold(m.Name, name) {
			return m, true
		}
	}

	return nil, false
}

// UserTypes returns all user types in creation order.
func (r *Registry) UserTypes() []*UserType {
	out := make([]*UserType, 0, len(r.userTypeOrder))
	for _, id := range r.userTypeOrder {
		out = append(out, r.userTypes[id])
	}

	return out
}

// Permissions returns all permissions in creation order.
func (r *Registry) Permissions() []*Permission {
	out := make([]*Permission, 0, len(r.permissionOrder))
	for _, id := range r.permissionOrder {
		out = append(out, r.permissions[id])
	}

	return out
}

// Models returns all models in creation order.
func (r *Registry) Models() []*Model {
	out := make([]*Model, 0, len(r.modelOrder))
	for _, id := range r.modelOrder {
		out = append(out, r.models[id])
	}

	return out
}

// userTypeName resolves a user type id to its name, or "" when unknown.
func (r *Registry) userTypeName(id UserTypeID) string {
	if u, ok := r.userTypes[id]; ok {
		return u.Name
	}

	return ""
}
