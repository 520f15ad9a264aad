package story

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/storiesascode/storiesascode/internal/catalog"
)

// DefaultIWant is the want clause of a story created without one.
const DefaultIWant = "New User Story"

// Params configures New.
type Params struct {
	AsA                *catalog.UserType
	IWant              string
	SoICan             string
	Description        string
	Key                string
	Points             int
	Labels             []string
	DueDate            time.Time
	Tasks              []*Task
	AcceptanceCriteria *AcceptanceCriteria
}

// UserStory is a generated or hand written "As a ..., I want ..., so I can ..." artifact.
type UserStory struct {
	ID                 string
	Description        string
	Key                string
	Points             int
	DueDate            time.Time
	AcceptanceCriteria *AcceptanceCriteria

	asA    *catalog.UserType
	iWant  string
	soICan string
	labels []string
	tasks  []*Task
}

// New creates a story with a fresh id.
func New(params Params) *UserStory {
	s := &UserStory{
		ID:                 uuid.NewString(),
		Description:        params.Description,
		Key:                params.Key,
		Points:             params.Points,
		DueDate:            params.DueDate,
		AcceptanceCriteria: params.AcceptanceCriteria,
		asA:                params.AsA,
		iWant:              params.IWant,
		soICan:             params.SoICan,
	}

	if s.iWant == "" {
		s.iWant = DefaultIWant
	}

	s.AddLabel(params.Labels...)
	s.AddTask(params.Tasks...)

	return s
}

// AsA returns the acting user type.
func (s *UserStory) AsA() *catalog.UserType { return s.asA }

// IWant returns the want clause.
func (s *UserStory) IWant() string { return s.iWant }

// SoICan returns the justification clause.
func (s *UserStory) SoICan() string { return s.soICan }

// SetAsA replaces the acting user type.
func (s *UserStory) SetAsA(u *catalog.UserType) *UserStory {
	s.asA = u
	return s
}

// SetIWant replaces the want clause.
func (s *UserStory) SetIWant(want string) *UserStory {
	s.iWant = want
	return s
}

// SetSoICan replaces the justification clause. An empty value drops it from the summary.
func (s *UserStory) SetSoICan(why string) *UserStory {
	s.soICan = why
	return s
}

// Summary renders "As a {name}, I want {iWant}[, so I can {soICan}]" with a capital first letter.
func (s *UserStory) Summary() string {
	parts := make([]string, 0, 3) //nolint:mnd

	if s.asA != nil && s.asA.Name != "" {
		parts = append(parts, "As a "+s.asA.Name)
	}

	if s.iWant != "" {
		parts = append(parts, "I want "+s.iWant)
	}

	if s.soICan != "" {
		parts = append(parts, "so I can "+s.soICan)
	}

	return capitalise(strings.Join(parts, ", "))
}

func capitalise(in string) string {
	r, size := utf8.DecodeRuneInString(in)
	if r == utf8.RuneError {
		return in
	}

	return string(unicode.ToUpper(r)) + in[size:]
}

// AddTask attaches tasks, ignoring ones already attached.
func (s *UserStory) AddTask(tasks ...*Task) *UserStory {
	for _, t := range tasks {
		if t == nil || s.hasTask(t) {
			continue
		}

		s.tasks = append(s.tasks, t)
	}

	return s
}

func (s *UserStory) hasTask(t *Task) bool {
	for _, existing := range s.tasks {
		if existing.ID == t.ID {
			return true
		}
	}

	return false
}

// Tasks returns the attached tasks in insertion order.
func (s *UserStory) Tasks() []*Task {
	return append([]*Task(nil), s.tasks...)
}

// AddLabel adds labels, ignoring duplicates.
func (s *UserStory) AddLabel(labels ...string) *UserStory {
	for _, l := range labels {
		if !contains(s.labels, l) {
			s.labels = append(s.labels, l)
		}
	}

	return s
}

// Labels returns the labels in insertion order.
func (s *UserStory) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Output is the serialisable form of a UserStory.
type Output struct {
	ID                 string                  `json:"id"`
	Key                string                  `json:"key,omitempty"`
	Summary            string                  `json:"summary"`
	Description        string                  `json:"description"`
	AcceptanceCriteria string                  `json:"acceptanceCriteria"`
	UserType           *catalog.UserTypeOutput `json:"userType,omitempty"`
	AsA                string                  `json:"asA"`
	IWant              string                  `json:"iWant"`
	SoICan             string                  `json:"soICan"`
	Points             int                     `json:"points"`
	Labels             []string                `json:"labels"`
	DueDate            *time.Time              `json:"dueDate,omitempty"`
	Tasks              []TaskOutput            `json:"tasks"`
}

// Output returns the serialisable form. It fails for stories without a user type or want clause.
func (s *UserStory) Output() (Output, error) {
	if s.asA == nil {
		return Output{}, ErrNoActor
	}

	if s.iWant == "" {
		return Output{}, ErrNoWant
	}

	userType := s.asA.Output()

	out := Output{
		ID:          s.ID,
		Key:         s.Key,
		Summary:     s.Summary(),
		Description: s.Description,
		UserType:    &userType,
		AsA:         s.asA.Name,
		IWant:       s.iWant,
		SoICan:      s.soICan,
		Points:      s.Points,
		Labels:      s.Labels(),
		Tasks:       make([]TaskOutput, 0, len(s.tasks)),
	}

	if out.Labels == nil {
		out.Labels = []string{}
	}

	if s.AcceptanceCriteria != nil {
		out.AcceptanceCriteria = s.AcceptanceCriteria.Generate()
	}

	if !s.DueDate.IsZero() {
		due := s.DueDate
		out.DueDate = &due
	}

	for _, t := range s.tasks {
		out.Tasks = append(out.Tasks, t.Output())
	}

	return out, nil
}
