package catalog

// UserType is an actor category, e.g. "Admin" or "Business Owner".
type UserType struct {
	ID          UserTypeID
	Name        string
	Description string

	defaultPermission PermissionID
	registry          *Registry
}

// AddPermission binds p to this user type and makes it the default permission used when the
// user type is attached to a model directly. The last call wins.
func (u *UserType) AddPermission(p *Permission) error {
	if p == nil {
		return ErrInvalidPermissionSource
	}

	if err := p.SetUserType(u); err != nil {
		return err
	}

	u.defaultPermission = p.ID

	return nil
}

// DefaultPermission returns the default permission, if any.
func (u *UserType) DefaultPermission() (*Permission, bool) {
	if u.defaultPermission == "" {
		return nil, false
	}

	return u.registry.Permission(u.defaultPermission)
}

// UserTypeOutput is the serialisable form of a UserType.
type UserTypeOutput struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	DefaultPermission string `json:"defaultPermission,omitempty"`
}

// Output returns the serialisable form.
func (u *UserType) Output() UserTypeOutput {
	return UserTypeOutput{
		ID:                string(u.ID),
		Name:              u.Name,
		Description:       u.Description,
		DefaultPermission: string(u.defaultPermission),
	}
}
