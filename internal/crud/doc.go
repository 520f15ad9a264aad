// Package crud turns models and their permissions into CRUD user stories.
//
// The Generator walks its models in insertion order and, for every permission of a model, emits
// the stories of each covered action (create, read, update, delete, in that order) followed by
// one share-link story. The text of every story comes from the pure functions in templates.go,
// keyed on the action, the Can polarity, the scope kind and the generator options.
//
// Stories are never merged: two permissions granting overlapping actions to the same user type
// yield two sets of stories.
package crud
