package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionSet(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    []Action
		full    bool
	}{
		{"empty", nil, []Action{}, false},
		{"single read", []Action{Read}, []Action{Read}, false},
		{"canonical order", []Action{Delete, Create}, []Action{Create, Delete}, false},
		{"duplicates collapse", []Action{Update, Update}, []Action{Update}, false},
		{"all expands", []Action{All}, []Action{Create, Read, Update, Delete}, true},
		{"explicit four", []Action{Create, Read, Update, Delete}, []Action{Create, Read, Update, Delete}, true},
		{"unknown ignored", []Action{"archive", Read}, []Action{Read}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewActionSet(tt.actions...)

			assert.Equal(t, tt.want, s.Actions())
			assert.Equal(t, tt.full, s.IsFull())
			assert.Equal(t, tt.full, s.Has(All))
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestActionSet_With(t *testing.T) {
	s := NewActionSet(Read)

	assert.True(t, s.With(Create).Has(Create))
	assert.False(t, s.Has(Create), "With must not modify the receiver")
	assert.True(t, s.With(All).IsFull())
	assert.True(t, NewActionSet().IsEmpty())
	assert.Equal(t, "read,update", NewActionSet(Update, Read).String())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" READ ")
	require.NoError(t, err)
	assert.Equal(t, Read, a)

	a, err = ParseAction("all")
	require.NoError(t, err)
	assert.Equal(t, All, a)

	_, err = ParseAction("archive")
	require.ErrorIs(t, err, ErrUnknownAction)
}
