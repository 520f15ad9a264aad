package owasp

import (
	"github.com/rs/zerolog/log"

	"github.com/storiesascode/storiesascode/internal/catalog"
	"github.com/storiesascode/storiesascode/internal/story"
)

const (
	// Label marks every security story.
	Label = "owasp"
	// DefaultUserTypeName names the actor used when none is given.
	DefaultUserTypeName = "Software Development Company"
)

// Count is the number of stories New returns.
func Count() int {
	return len(requirements)
}

// New returns fresh security stories acting as asA. A nil asA is replaced by a user type named
// DefaultUserTypeName in a registry of its own.
func New(asA *catalog.UserType) []*story.UserStory {
	if asA == nil {
		asA = catalog.NewRegistry().NewUserType(DefaultUserTypeName)
	}

	stories := make([]*story.UserStory, 0, len(requirements))

	for _, r := range requirements {
		stories = append(stories, story.New(story.Params{
			AsA:         asA,
			IWant:       r.iWant,
			Description: r.description,
			Labels:      []string{Label},
		}))
	}

	log.Debug().Str("userType", asA.Name).Int("stories", len(stories)).Msg("owasp stories created")

	return stories
}
