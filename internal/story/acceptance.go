package story

import "strings"

// Scenario is a single Gherkin scenario.
type Scenario struct {
	Title string
	Given string
	When  string
	Then  string

	ands []string
	buts []string
}

// NewScenario creates a scenario with the given title.
func NewScenario(title string) *Scenario {
	return &Scenario{Title: title}
}

// AddAnd adds steps continuing the Given step.
func (s *Scenario) AddAnd(steps ...string) *Scenario {
	for _, step := range steps {
		if !contains(s.ands, step) {
			s.ands = append(s.ands, step)
		}
	}

	return s
}

// AddBut adds exceptions following the Then step.
func (s *Scenario) AddBut(steps ...string) *Scenario {
	for _, step := range steps {
		if !contains(s.buts, step) {
			s.buts = append(s.buts, step)
		}
	}

	return s
}

// Generate renders the scenario as indented Gherkin text.
func (s *Scenario) Generate() string {
	var b strings.Builder

	b.WriteString("Scenario: " + s.Title + "\n")
	writeStep(&b, "Given", s.Given)

	for _, and := range s.ands {
		writeStep(&b, "And", and)
	}

	writeStep(&b, "When", s.When)
	writeStep(&b, "Then", s.Then)

	for _, but := range s.buts {
		writeStep(&b, "But", but)
	}

	return b.String()
}

func writeStep(b *strings.Builder, keyword, text string) {
	if text == "" {
		return
	}

	b.WriteString("  " + keyword + " " + text + "\n")
}

// AcceptanceCriteria groups scenarios under one feature.
type AcceptanceCriteria struct {
	Feature string

	scenarios []*Scenario
}

// NewAcceptanceCriteria creates acceptance criteria for a feature.
func NewAcceptanceCriteria(feature string, scenarios ...*Scenario) *AcceptanceCriteria {
	ac := &AcceptanceCriteria{Feature: feature}
	ac.AddScenario(scenarios...)

	return ac
}

// AddScenario adds scenarios, ignoring ones already present.
func (ac *AcceptanceCriteria) AddScenario(scenarios ...*Scenario) *AcceptanceCriteria {
	for _, s := range scenarios {
		if s == nil || ac.has(s) {
			continue
		}

		ac.scenarios = append(ac.scenarios, s)
	}

	return ac
}

func (ac *AcceptanceCriteria) has(s *Scenario) bool {
	for _, existing := range ac.scenarios {
		if existing == s {
			return true
		}
	}

	return false
}

// Scenarios returns the scenarios in insertion order.
func (ac *AcceptanceCriteria) Scenarios() []*Scenario {
	return append([]*Scenario(nil), ac.scenarios...)
}

// Generate renders the feature with all scenarios.
func (ac *AcceptanceCriteria) Generate() string {
	var b strings.Builder

	b.WriteString("Feature: " + ac.Feature + "\n")

	for _, s := range ac.scenarios {
		b.WriteString("\n  ")
		b.WriteString(strings.ReplaceAll(strings.TrimSuffix(s.Generate(), "\n"), "\n", "\n  "))
		b.WriteString("\n")
	}

	return b.String()
}
