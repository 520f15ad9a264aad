package project

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/storiesascode/storiesascode/internal/catalog"
	"github.com/storiesascode/storiesascode/internal/crud"
	"github.com/storiesascode/storiesascode/internal/owasp"
	"github.com/storiesascode/storiesascode/internal/story"
)

// Project collects the artifacts of one product. All collections keep insertion order and
// ignore duplicates.
type Project struct {
	ID          string
	Name        string
	Description string

	userTypes []*catalog.UserType
	models    []*catalog.Model
	stories   []*story.UserStory
	seen      map[string]struct{}
}

// New creates an empty project.
func New(name string) *Project {
	return &Project{
		ID:   uuid.NewString(),
		Name: name,
		seen: make(map[string]struct{}),
	}
}

// mark records key and reports whether it was new.
func (p *Project) mark(kind, id string) bool {
	key := kind + ":" + id
	if _, ok := p.seen[key]; ok {
		return false
	}

	p.seen[key] = struct{}{}

	return true
}

// AddUserTypes adds user types.
func (p *Project) AddUserTypes(userTypes ...*catalog.UserType) *Project {
	for _, u := range userTypes {
		if u != nil && p.mark("userType", string(u.ID)) {
			p.userTypes = append(p.userTypes, u)
		}
	}

	return p
}

// AddModels adds models together with the user types their permissions reference.
func (p *Project) AddModels(models ...*catalog.Model) *Project {
	for _, m := range models {
		if m == nil || !p.mark("model", string(m.ID)) {
			continue
		}

		p.models = append(p.models, m)
		p.AddUserTypes(m.UserTypes()...)
	}

	return p
}

// AddStories adds stories.
func (p *Project) AddStories(stories ...*story.UserStory) *Project {
	for _, s := range stories {
		if s != nil && p.mark("story", s.ID) {
			p.stories = append(p.stories, s)
		}
	}

	return p
}

// UserTypes returns the user types in insertion order.
func (p *Project) UserTypes() []*catalog.UserType {
	return append([]*catalog.UserType(nil), p.userTypes...)
}

// Models returns the models in insertion order.
func (p *Project) Models() []*catalog.Model {
	return append([]*catalog.Model(nil), p.models...)
}

// Stories returns the stories in insertion order.
func (p *Project) Stories() []*story.UserStory {
	return append([]*story.UserStory(nil), p.stories...)
}

// GenerateCRUDStories runs a fresh generator over the project models and adds its stories.
func (p *Project) GenerateCRUDStories(opts crud.Options) error {
	g := crud.New(opts)

	if err := g.AddModel(p.models...); err != nil {
		return errors.Wrapf(err, "project %s", p.Name)
	}

	stories, err := g.Generate()
	if err != nil {
		return errors.Wrapf(err, "project %s", p.Name)
	}

	p.AddStories(stories...)

	log.Debug().Str("project", p.Name).Int("stories", len(stories)).Msg("crud stories added")

	return nil
}

// AddOWASPStories adds the security stories acting as asA, or as the default owasp user type when
// asA is nil. The stories are added once per project; later calls are no-ops.
func (p *Project) AddOWASPStories(asA *catalog.UserType) *Project {
	if !p.mark("owasp", owasp.Label) {
		return p
	}

	stories := owasp.New(asA)

	p.AddUserTypes(stories[0].AsA())
	p.AddStories(stories...)

	log.Debug().Str("project", p.Name).Int("stories", len(stories)).Msg("owasp stories added")

	return p
}

// Output is the serialisable form of a Project.
type Output struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	UserTypes   []catalog.UserTypeOutput `json:"userTypes"`
	Models      []catalog.ModelOutput    `json:"models"`
	Stories     []story.Output           `json:"stories"`
}

// Output returns the serialisable form. It fails when a story cannot be serialised.
func (p *Project) Output() (Output, error) {
	out := Output{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UserTypes:   make([]catalog.UserTypeOutput, 0, len(p.userTypes)),
		Models:      make([]catalog.ModelOutput, 0, len(p.models)),
		Stories:     make([]story.Output, 0, len(p.stories)),
	}

	for _, u := range p.userTypes {
		out.UserTypes = append(out.UserTypes, u.Output())
	}

	for _, m := range p.models {
		out.Models = append(out.Models, m.Output())
	}

	for _, s := range p.stories {
		so, err := s.Output()
		if err != nil {
			return Output{}, errors.Wrapf(err, "story %s", s.ID)
		}

		out.Stories = append(out.Stories, so)
	}

	return out, nil
}
