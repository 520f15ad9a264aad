// Package blueprint reads a YAML description of a project and builds its registry, models and
// project from it.
//
// A blueprint lists user types (each optionally with a default permission) and models. A model
// names its relations, the user types whose default permission it takes, and its own
// permissions. Model and user type names are resolved case-insensitively and may be referenced
// before they are declared.
package blueprint
