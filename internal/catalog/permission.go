package catalog

// PermissionParams configures Registry.NewPermission.
type PermissionParams struct {
	Name        string
	Description string
	// Actions may contain All, which expands to the four CRUD actions.
	Actions []Action
	// Deny turns the permission into an explicit refusal. The default is allow.
	Deny bool
	// Scope is unscoped when left zero.
	Scope    Scope
	UserType *UserType
}

// Permission grants or refuses a user type a set of actions on a model.
type Permission struct {
	ID          PermissionID
	Name        string
	Description string

	actions  ActionSet
	can      bool
	scope    Scope
	userType UserTypeID
	frozen   bool
	registry *Registry
}

// Actions returns the covered actions.
func (p *Permission) Actions() ActionSet {
	return p.actions
}

// Can reports whether the permission allows (true) or refuses (false) its actions.
func (p *Permission) Can() bool {
	return p.can
}

// Scope returns the belongs-to qualifier.
func (p *Permission) Scope() Scope {
	return p.scope
}

// UserTypeID returns the id of the bound user type, "" when unbound.
func (p *Permission) UserTypeID() UserTypeID {
	return p.userType
}

// UserType resolves the bound user type through the registry.
func (p *Permission) UserType() (*UserType, bool) {
	if p.userType == "" {
		return nil, false
	}

	return p.registry.UserType(p.userType)
}

// Frozen reports whether the permission was added to a model.
func (p *Permission) Frozen() bool {
	return p.frozen
}

// AddActions adds actions to the permission, expanding All.
func (p *Permission) AddActions(actions ...Action) error {
	if p.frozen {
		return ErrPermissionFrozen
	}

	p.actions = p.actions.With(actions...)

	return nil
}

// SetCan switches between allow and deny.
func (p *Permission) SetCan(can bool) error {
	if p.frozen {
		return ErrPermissionFrozen
	}

	p.can = can

	return nil
}

// SetScope replaces the belongs-to qualifier.
func (p *Permission) SetScope(s Scope) error {
	if p.frozen {
		return ErrPermissionFrozen
	}

	p.scope = s

	return nil
}

// SetUserType binds the permission to u.
func (p *Permission) SetUserType(u *UserType) error {
	if p.frozen {
		return ErrPermissionFrozen
	}

	if u == nil {
		return ErrMissingUserType
	}

	if u.registry != p.registry {
		return ErrForeignEntity
	}

	p.userType = u.ID

	return nil
}

// PermissionOutput is the serialisable form of a Permission.
type PermissionOutput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UserType    string   `json:"userType,omitempty"`
	UserTypeID  string   `json:"userTypeId,omitempty"`
	BelongsTo   string   `json:"belongsTo,omitempty"`
	Can         bool     `json:"can"`
	Actions     []Action `json:"actions"`
}

// Output returns the serialisable form. BelongsTo holds "owner" or the related model name.
func (p *Permission) Output() PermissionOutput {
	out := PermissionOutput{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		UserTypeID:  string(p.userType),
		UserType:    p.registry.userTypeName(p.userType),
		Can:         p.can,
		Actions:     p.actions.Actions(),
	}

	switch p.scope.Kind() {
	case ScopeOwner:
		out.BelongsTo = OwnerKeyword
	case ScopeRelation:
		if m, ok := p.registry.Model(p.scope.model); ok {
			out.BelongsTo = m.Name
		}
	case ScopeNone:
	}

	return out
}
