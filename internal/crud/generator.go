package crud

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/storiesascode/storiesascode/internal/catalog"
	"github.com/storiesascode/storiesascode/internal/story"
)

// Options toggles optional stories.
type Options struct {
	CanFilterList    bool `json:"canFilterList"`
	CanSortList      bool `json:"canSortList"`
	CanPaginateList  bool `json:"canPaginateList"`
	ShouldSoftDelete bool `json:"shouldSoftDelete"`
}

// DefaultOptions enables the list affordances and keeps hard deletes.
func DefaultOptions() Options {
	return Options{
		CanFilterList:   true,
		CanSortList:     true,
		CanPaginateList: true,
	}
}

// Generator produces CRUD user stories for a set of models.
// A Generator is not safe for concurrent use.
type Generator struct {
	opts     Options
	models   []*catalog.Model
	modelSet map[catalog.ModelID]struct{}
	stories  []*story.UserStory
}

// New creates a generator without models.
func New(opts Options) *Generator {
	return &Generator{
		opts:     opts,
		modelSet: make(map[catalog.ModelID]struct{}),
	}
}

// Options returns the options the generator was created with.
func (g *Generator) Options() Options {
	return g.opts
}

// AddModel queues models for generation. Every permission of every model must be bound to a user
// type; otherwise ErrMissingUserType is returned and none of the models are added.
func (g *Generator) AddModel(models ...*catalog.Model) error {
	for _, m := range models {
		if m == nil {
			continue
		}

		for _, p := range m.Permissions() {
			if _, ok := p.UserType(); !ok {
				return errors.Wrapf(catalog.ErrMissingUserType, "permission %q of model %s", p.Name, m.Name)
			}
		}
	}

	for _, m := range models {
		if m == nil {
			continue
		}

		if _, ok := g.modelSet[m.ID]; ok {
			continue
		}

		g.modelSet[m.ID] = struct{}{}
		g.models = append(g.models, m)
	}

	return nil
}

// Models returns the queued models in insertion order.
func (g *Generator) Models() []*catalog.Model {
	return append([]*catalog.Model(nil), g.models...)
}

// Stories returns every story generated so far.
func (g *Generator) Stories() []*story.UserStory {
	return append([]*story.UserStory(nil), g.stories...)
}

// Generate emits the stories of all queued models and returns the accumulated list.
// Calling it again appends a fresh set of stories.
func (g *Generator) Generate() ([]*story.UserStory, error) {
	if len(g.models) == 0 {
		return nil, ErrNoModels
	}

	log.Debug().Int("models", len(g.models)).Interface("options", g.opts).Msg("generating crud stories")

	for _, m := range g.models {
		before := len(g.stories)

		for _, p := range m.Permissions() {
			g.permissionStories(m, p)
		}

		log.Trace().Str("model", m.Name).Int("stories", len(g.stories)-before).Msg("model stories generated")
	}

	return g.Stories(), nil
}

// permissionStories runs the handler of every covered action in CRUD order. A full action set
// goes through the same four handlers.
func (g *Generator) permissionStories(m *catalog.Model, p *catalog.Permission) {
	actor, ok := p.UserType()
	if !ok {
		log.Warn().Str("model", m.Name).Str("permission", p.Name).Msg("skipping permission without user type")
		return
	}

	subj := g.subject(m, p, actor)
	can := p.Can()
	actions := p.Actions()

	var phrases []phrase

	for _, a := range catalog.CRUD {
		if !actions.Has(a) {
			continue
		}

		switch a {
		case catalog.Create:
			phrases = append(phrases, createPhrases(subj, can)...)
		case catalog.Read:
			phrases = append(phrases, readPhrases(subj, can, listing{
				filter:   g.opts.CanFilterList,
				sort:     g.opts.CanSortList,
				paginate: g.opts.CanPaginateList,
			})...)
		case catalog.Update:
			phrases = append(phrases, updatePhrases(subj, can)...)
		case catalog.Delete:
			phrases = append(phrases, deletePhrases(subj, can, g.opts.ShouldSoftDelete)...)
		}
	}

	phrases = append(phrases, sharePhrase(subj))

	for _, ph := range phrases {
		g.emit(actor, ph)
	}
}

func (g *Generator) subject(m *catalog.Model, p *catalog.Permission, actor *catalog.UserType) subject {
	s := subject{
		model: m.Name,
		actor: actor.Name,
		scope: p.Scope().Kind(),
	}

	if s.scope != catalog.ScopeRelation {
		return s
	}

	id, _ := p.Scope().Model()

	related, ok := m.Registry().Model(id)
	if !ok {
		log.Warn().Str("model", m.Name).Str("permission", p.Name).Msg("relation scope does not resolve, treating as unscoped")

		s.scope = catalog.ScopeNone

		return s
	}

	s.belongsTo = related.Name

	return s
}

func (g *Generator) emit(actor *catalog.UserType, ph phrase) {
	us := story.New(story.Params{
		AsA:    actor,
		IWant:  ph.iWant,
		SoICan: ph.soICan,
	})

	for _, title := range ph.tasks {
		story.NewTask(story.TaskParams{Title: title}).AddTo(us)
	}

	g.stories = append(g.stories, us)
}
