package crud

import (
	"strings"

	"github.com/storiesascode/storiesascode/internal/catalog"
)

// softDeleteWant prefixes the want clause of an unscoped delete when soft deletes are enabled.
const softDeleteWant = "to be able to soft delete "

// phrase is the text of one story: the want clause, the optional so-I-can clause and the
// titles of tasks to attach.
type phrase struct {
	iWant  string
	soICan string
	tasks  []string
}

// subject carries the names a phrase is built from.
type subject struct {
	model     string
	actor     string
	scope     catalog.ScopeKind
	belongsTo string // name of the related model for ScopeRelation
}

// listing holds the list affordance flags of the read stories.
type listing struct {
	filter   bool
	sort     bool
	paginate bool
}

const newRecord = "create a new record"

func createPhrases(s subject, can bool) []phrase {
	related := s.scope == catalog.ScopeRelation

	switch {
	case can && related:
		return []phrase{{
			iWant:  "create " + s.model + "s on " + s.belongsTo + "s that I can access",
			soICan: newRecord,
		}}
	case can:
		return []phrase{{iWant: "Create " + s.model + "s", soICan: newRecord}}
	case related:
		return []phrase{{iWant: "to be blocked from creating " + s.model + "s on " + s.belongsTo}}
	default:
		return []phrase{{iWant: "to be denied access to creating " + s.model}}
	}
}

func readPhrases(s subject, can bool, l listing) []phrase {
	if !can {
		return []phrase{{iWant: "to NOT see any " + s.model}}
	}

	var out []phrase

	switch s.scope {
	case catalog.ScopeRelation:
		parent := strings.ToLower(s.belongsTo)
		out = append(out, phrase{
			iWant: "to only read " + s.model + "s that are connected to my " + parent,
			tasks: []string{"Reject requests for " + s.model + " if the user is not part of " + parent},
		})
	case catalog.ScopeOwner:
		out = append(out,
			phrase{
				iWant:  "to be able to view " + s.model + "s that belong to me",
				soICan: "view all records",
				tasks:  []string{"Reject requests for " + s.model + " if the user is not the owner"},
			},
			phrase{
				iWant:  "See a single " + s.model + " if I am the owner",
				soICan: "see more in depth information",
			},
			phrase{
				iWant:  "See a permission denied message for " + s.model + " if I am not owner",
				soICan: "know I dont have access",
			},
		)
	case catalog.ScopeNone:
		out = append(out, phrase{
			iWant:  "to see a list of all " + s.model + "s",
			soICan: "see an overview of all " + s.model + "s",
		})
	}

	if l.filter {
		out = append(out, phrase{
			iWant:  "to be able to filter " + s.model + "s",
			soICan: "easily find the " + s.model + " I am looking for",
		})
	}

	if l.sort {
		out = append(out, phrase{iWant: "to be able to sort " + s.model + "s"})
	}

	if l.paginate {
		out = append(out, phrase{iWant: "to be able to paginate " + s.model + "s"})
	}

	return append(out, phrase{
		iWant:  "to see a single " + strings.ToLower(s.model),
		soICan: "see more in depth information",
	})
}

func updatePhrases(s subject, can bool) []phrase {
	if !can {
		return []phrase{{
			iWant: "to be denied from updating " + s.model + "s",
			tasks: []string{
				"Make sure an error is shown to the " + s.actor + " when attempting to update " + s.model,
			},
		}}
	}

	switch s.scope {
	case catalog.ScopeOwner:
		return []phrase{{
			iWant:  "update " + s.model + "s that I own",
			soICan: "make changes to my " + s.model,
		}}
	case catalog.ScopeRelation:
		return []phrase{{
			iWant:  "update " + s.model + "s that belong to " + s.belongsTo,
			soICan: "make changes to " + s.model,
			tasks: []string{
				"Make sure an error is shown to the " + s.actor + " when attempting to update " + s.model +
					" that does not belong to " + s.belongsTo,
				"Reject requests to update " + s.model + "s that don't belong to the users " + s.belongsTo,
			},
		}}
	default:
		return []phrase{{
			iWant:  "update all " + s.model + "s on the system",
			soICan: "make changes on any " + s.model,
		}}
	}
}

func deletePhrases(s subject, can, softDelete bool) []phrase {
	if !can {
		return []phrase{{iWant: "to not be able to delete " + s.model + "s"}}
	}

	switch s.scope {
	case catalog.ScopeOwner:
		return []phrase{{
			iWant:  "to be able to delete " + s.model + "s that belong to me",
			soICan: "delete records",
		}}
	case catalog.ScopeRelation:
		return []phrase{{
			iWant:  "to delete " + s.model + "s that belong to my " + s.belongsTo,
			soICan: "remove unwanted " + s.model + "s",
		}}
	default:
		p := phrase{iWant: "to delete " + s.model + "s", soICan: "remove unwanted " + s.model + "s"}
		if softDelete {
			p.iWant = softDeleteWant + s.model + "s"
		}

		return []phrase{p}
	}
}

// sharePhrase is emitted once per permission whatever its actions.
func sharePhrase(s subject) phrase {
	return phrase{
		iWant:  "to be able to link others directly to " + s.model,
		soICan: "share links on other platforms",
	}
}
