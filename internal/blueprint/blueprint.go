package blueprint

import (
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/storiesascode/storiesascode/internal/catalog"
	"github.com/storiesascode/storiesascode/internal/project"
)

// Result is what a blueprint builds.
type Result struct {
	Registry *catalog.Registry
	Project  *project.Project
}

// Load reads and builds the blueprint at path.
func Load(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to open blueprint")
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Result{}, errors.Wrapf(err, "blueprint %s", path)
	}

	return Build(doc)
}

// Decode parses and validates a blueprint document. Unknown fields are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Wrap(err, "failed to decode blueprint")
	}

	if err := Validate(doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Validate checks the structure of doc. References are checked by Build.
func Validate(doc Document) error {
	if err := validator.New().Struct(doc); err != nil {
		return errors.Wrap(ErrInvalidBlueprint, err.Error())
	}

	return nil
}

// Build creates a registry, the declared user types and models, and a project holding them.
func Build(doc Document) (Result, error) {
	b := builder{reg: catalog.NewRegistry()}

	models, err := b.declareModels(doc.Models)
	if err != nil {
		return Result{}, err
	}

	if err = b.userTypes(doc.UserTypes); err != nil {
		return Result{}, err
	}

	for i, d := range doc.Models {
		if err = b.fill(models[i], d); err != nil {
			return Result{}, errors.Wrapf(err, "model %s", d.Name)
		}
	}

	prj := project.New(doc.Name)
	prj.Description = doc.Description
	prj.AddUserTypes(b.reg.UserTypes()...).AddModels(models...)

	if err = b.owasp(prj, doc.OWASP); err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("project", doc.Name).
		Int("userTypes", len(doc.UserTypes)).
		Int("models", len(models)).
		Msg("blueprint built")

	return Result{Registry: b.reg, Project: prj}, nil
}

type builder struct {
	reg *catalog.Registry
}

func (b *builder) owasp(prj *project.Project, d *OWASP) error {
	if d == nil {
		return nil
	}

	if d.UserType == "" {
		prj.AddOWASPStories(nil)
		return nil
	}

	u, ok := b.reg.UserTypeByName(d.UserType)
	if !ok {
		return errors.Wrapf(ErrUnknownUserType, "owasp %q", d.UserType)
	}

	prj.AddOWASPStories(u)

	return nil
}

func (b *builder) userTypes(docs []UserType) error {
	for _, d := range docs {
		if _, ok := b.reg.UserTypeByName(d.Name); ok {
			return errors.Wrapf(ErrDuplicateName, "user type %s", d.Name)
		}

		u := b.reg.NewUserType(d.Name)
		u.Description = d.Description

		if d.Permission == nil {
			continue
		}

		p, err := b.permission(*d.Permission, nil)
		if err != nil {
			return errors.Wrapf(err, "default permission of user type %s", d.Name)
		}

		if err = u.AddPermission(p); err != nil {
			return errors.Wrapf(err, "user type %s", d.Name)
		}
	}

	return nil
}

// declareModels creates every model up front so relations and scopes may reference later ones.
func (b *builder) declareModels(docs []Model) ([]*catalog.Model, error) {
	models := make([]*catalog.Model, 0, len(docs))

	for _, d := range docs {
		if _, ok := b.reg.ModelByName(d.Name); ok {
			return nil, errors.Wrapf(ErrDuplicateName, "model %s", d.Name)
		}

		m, err := b.reg.NewModel(catalog.ModelParams{Name: d.Name, Description: d.Description})
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", d.Name)
		}

		models = append(models, m)
	}

	return models, nil
}

func (b *builder) fill(m *catalog.Model, d Model) error {
	for _, name := range d.Relations {
		related, ok := b.reg.ModelByName(name)
		if !ok {
			return errors.Wrapf(ErrUnknownModel, "relation %s", name)
		}

		if err := m.AddRelation(related); err != nil {
			return err //nolint: wrapcheck
		}
	}

	for _, name := range d.UserTypes {
		u, ok := b.reg.UserTypeByName(name)
		if !ok {
			return errors.Wrap(ErrUnknownUserType, name)
		}

		if err := m.AddPermission(catalog.FromUserType(u)); err != nil {
			return err //nolint: wrapcheck
		}
	}

	for _, pd := range d.Permissions {
		u, ok := b.reg.UserTypeByName(pd.UserType)
		if !ok {
			return errors.Wrapf(ErrUnknownUserType, "permission %q: %q", pd.Name, pd.UserType)
		}

		p, err := b.permission(pd, u)
		if err != nil {
			return err
		}

		if err = m.AddPermission(catalog.FromPermission(p)); err != nil {
			return err //nolint: wrapcheck
		}
	}

	return nil
}

func (b *builder) permission(d Permission, u *catalog.UserType) (*catalog.Permission, error) {
	actions := make([]catalog.Action, 0, len(d.Actions))

	for _, raw := range d.Actions {
		a, err := catalog.ParseAction(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "permission %q", d.Name)
		}

		actions = append(actions, a)
	}

	scope, err := b.scope(d.BelongsTo)
	if err != nil {
		return nil, err
	}

	return b.reg.NewPermission(catalog.PermissionParams{
		Name:        d.Name,
		Description: d.Description,
		Actions:     actions,
		Deny:        d.Can != nil && !*d.Can,
		Scope:       scope,
		UserType:    u,
	}), nil
}

func (b *builder) scope(belongsTo string) (catalog.Scope, error) {
	switch {
	case belongsTo == "":
		return catalog.Scope{}, nil
	case strings.EqualFold(belongsTo, catalog.OwnerKeyword):
		return catalog.OwnerScope(), nil
	}

	m, ok := b.reg.ModelByName(belongsTo)
	if !ok {
		return catalog.Scope{}, errors.Wrapf(ErrUnknownModel, "belongsTo %s", belongsTo)
	}

	return catalog.RelationScope(m), nil
}
