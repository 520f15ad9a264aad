package owasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storiesascode/storiesascode/internal/catalog"
)

func TestNew_DefaultUserType(t *testing.T) {
	stories := New(nil)
	require.Len(t, stories, 35)
	assert.Equal(t, 35, Count())

	actor := stories[0].AsA()
	require.NotNil(t, actor)
	assert.Equal(t, DefaultUserTypeName, actor.Name)

	for _, s := range stories {
		assert.Same(t, actor, s.AsA())
		assert.Equal(t, []string{Label}, s.Labels())
		assert.NotEmpty(t, s.IWant())
		assert.NotEmpty(t, s.Description)
	}

	assert.Equal(t,
		"As a Software Development Company, I want my data must be protected from unintentional "+
			"disclosure to other customers or external parties.",
		stories[0].Summary())
	assert.Equal(t,
		"Validate all data input from an external entity or client.",
		stories[10].Description)
	assert.Equal(t,
		"the application secured and hardened by default so that user changes do not expose security "+
			"vulnerabilities or flaws with underlying systems.",
		stories[34].IWant())
}

func TestNew_GivenUserType(t *testing.T) {
	admin := catalog.NewRegistry().NewUserType("Admin")

	stories := New(admin)
	require.Len(t, stories, Count())

	out, err := stories[1].Output()
	require.NoError(t, err)
	assert.Equal(t, "As a Admin, I want the application to allow passphrases and/or difficult passwords.", out.Summary)
	assert.Equal(t, []string{"owasp"}, out.Labels)
}

func TestNew_FreshStoriesPerCall(t *testing.T) {
	first, second := New(nil), New(nil)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotSame(t, first[0].AsA(), second[0].AsA())
}
