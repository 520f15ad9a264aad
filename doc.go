// Package main provides the entry point of stories, a generator of agile user stories.
// It reads a YAML blueprint describing user types, data models and their permissions and
// writes the project, including every derived create, read, update and delete story, as JSON.
package main
