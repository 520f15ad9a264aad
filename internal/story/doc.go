// Package story contains the output value objects of the generators: user stories, the tasks
// attached to them and optional Gherkin style acceptance criteria.
//
// A UserStory reads "As a {user type}, I want {i want}, so I can {so i can}". Summary is derived
// from those three parts on every call, so it always reflects the latest values.
package story
