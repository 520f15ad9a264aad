package blueprint

// Document is the root of a blueprint file.
type Document struct {
	Name        string     `yaml:"name"        validate:"required"`
	Description string     `yaml:"description"`
	UserTypes   []UserType `yaml:"userTypes"   validate:"dive"`
	Models      []Model    `yaml:"models"      validate:"required,min=1,dive"`
	OWASP       *OWASP     `yaml:"owasp"`
}

// OWASP enables the security stories. An empty UserType uses the default owasp actor.
type OWASP struct {
	UserType string `yaml:"userType"`
}

// UserType declares a user type and its optional default permission.
type UserType struct {
	Name        string      `yaml:"name"        validate:"required"`
	Description string      `yaml:"description"`
	Permission  *Permission `yaml:"permission"`
}

// Model declares a model.
type Model struct {
	Name        string       `yaml:"name"        validate:"required"`
	Description string       `yaml:"description"`
	Relations   []string     `yaml:"relations"   validate:"dive,required"`
	UserTypes   []string     `yaml:"userTypes"   validate:"dive,required"`
	Permissions []Permission `yaml:"permissions" validate:"dive"`
}

// Permission declares a permission. UserType is ignored for default permissions of user types.
// Actions are matched case-insensitively when the blueprint is built.
type Permission struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	UserType    string   `yaml:"userType"`
	Actions     []string `yaml:"actions"     validate:"dive,required"`
	// Can defaults to true.
	Can       *bool  `yaml:"can"`
	BelongsTo string `yaml:"belongsTo"`
}
