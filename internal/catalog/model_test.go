package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	reg := NewRegistry()

	m, err := reg.NewModel(ModelParams{Name: "Model Test", Description: "a model"})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Model Test", m.Name)
	assert.Empty(t, m.Permissions())
	assert.Empty(t, m.UserTypes())
	assert.Empty(t, m.Relations())
	assert.True(t, m.Actions().IsEmpty())
	assert.Same(t, reg, m.Registry())

	out := m.Output()
	assert.Equal(t, "Model Test", out.Name)
	assert.Equal(t, string(m.ID), out.ID)
}

func TestModel_AddPermissionDeduplicates(t *testing.T) {
	reg := NewRegistry()
	restricted := reg.NewUserType("RestrictedUser")
	read := reg.NewPermission(PermissionParams{UserType: restricted, Actions: []Action{Read}})
	all := reg.NewPermission(PermissionParams{UserType: restricted, Actions: []Action{All}})

	model, err := reg.NewModel(ModelParams{Name: "Model Test", Permissions: Permissions(read)})
	require.NoError(t, err)
	assert.Len(t, model.Permissions(), 1)
	assert.True(t, model.HasPermission(read))

	user, err := reg.NewModel(ModelParams{Name: "User"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, user.AddPermission(FromPermission(read)))
	}

	require.NoError(t, user.AddPermission(FromPermission(all), FromPermission(all)))

	assert.Len(t, user.Permissions(), 2)
	assert.Len(t, user.Output().Permissions, 2)
	assert.Len(t, user.UserTypes(), 1)
}

func TestModel_UserTypesFromPermissions(t *testing.T) {
	reg := NewRegistry()
	u1 := reg.NewUserType("RestrictedUser")
	u2 := reg.NewUserType("RestrictedUser 2")
	u3 := reg.NewUserType("RestrictedUser 4")

	p1 := reg.NewPermission(PermissionParams{UserType: u1, Actions: []Action{Read}})
	p2 := reg.NewPermission(PermissionParams{UserType: u2, Actions: []Action{All}})
	p3 := reg.NewPermission(PermissionParams{Actions: []Action{All}})
	require.NoError(t, p3.SetUserType(u3))

	m, err := reg.NewModel(ModelParams{Name: "Model Test", Permissions: Permissions(p1, p2, p3)})
	require.NoError(t, err)

	assert.Len(t, m.Permissions(), 3)
	assert.Equal(t, []*UserType{u1, u2, u3}, m.UserTypes())
}

func TestModel_AddUserTypeShorthand(t *testing.T) {
	reg := NewRegistry()
	perms := reg.NewPermission(PermissionParams{Actions: []Action{Read, Create}})
	userType := reg.NewUserType("UserType 1")
	require.NoError(t, userType.AddPermission(perms))

	m, err := reg.NewModel(ModelParams{Name: "Model Test", Permissions: UserTypes(userType)})
	require.NoError(t, err)
	assert.True(t, m.HasPermission(perms))
	assert.Equal(t, []*UserType{userType}, m.UserTypes())

	m2, err := reg.NewModel(ModelParams{Name: "Model Test 2"})
	require.NoError(t, err)
	require.NoError(t, m2.AddPermission(FromUserType(userType)))
	assert.True(t, m2.HasPermission(perms))
}

func TestModel_AddUserTypeWithoutDefault(t *testing.T) {
	reg := NewRegistry()
	bare := reg.NewUserType("Bare")

	m, err := reg.NewModel(ModelParams{Name: "Thing"})
	require.NoError(t, err)

	err = m.AddPermission(FromUserType(bare))
	require.ErrorIs(t, err, ErrMissingUserType)
	assert.Contains(t, err.Error(), "Bare")
	assert.Empty(t, m.Permissions())
}

func TestModel_Actions(t *testing.T) {
	reg := NewRegistry()
	admin := reg.NewUserType("Admin")
	guest := reg.NewUserType("Guest")

	m, err := reg.NewModel(ModelParams{
		Name: "Product",
		Permissions: Permissions(
			reg.NewPermission(PermissionParams{UserType: admin, Actions: []Action{Read}}),
			reg.NewPermission(PermissionParams{UserType: admin, Actions: []Action{Delete}, Deny: true}),
			reg.NewPermission(PermissionParams{UserType: guest, Actions: []Action{Update}}),
		),
	})
	require.NoError(t, err)

	assert.Equal(t, []Action{Read, Update}, m.Actions().Actions())
	assert.Equal(t, []Action{Read, Update}, m.Output().Actions)
}

func TestModel_Conflicts(t *testing.T) {
	reg := NewRegistry()
	userType := reg.NewUserType("User")

	model, err := reg.NewModel(ModelParams{
		Name:        "Model Test",
		Permissions: Permissions(reg.NewPermission(PermissionParams{UserType: userType, Actions: []Action{Read}})),
	})
	require.NoError(t, err)

	conflicting := reg.NewPermission(PermissionParams{UserType: userType, Actions: []Action{Read}, Deny: true})

	err = model.AddPermission(FromPermission(conflicting))
	require.ErrorIs(t, err, ErrPermissionConflict)
	assert.EqualError(t, err, "permission for action read has the opposite permission for User on model Model Test")

	var conflict *PermissionConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, Read, conflict.Action)
	assert.Equal(t, conflicting.ID, conflict.Candidate)

	assert.False(t, model.HasPermission(conflicting))
	assert.False(t, conflicting.Frozen())
	assert.Len(t, model.Permissions(), 1)

	// different action for the same user type is fine
	create := reg.NewPermission(PermissionParams{UserType: userType, Actions: []Action{Create}, Deny: true})
	require.NoError(t, model.AddPermission(FromPermission(create)))
	assert.Len(t, model.Permissions(), 2)
}

func TestModel_AddPermissionStopsAtFirstError(t *testing.T) {
	reg := NewRegistry()
	u := reg.NewUserType("Reader")
	ok1 := reg.NewPermission(PermissionParams{UserType: u, Actions: []Action{Read}})
	bad := reg.NewPermission(PermissionParams{UserType: u, Actions: []Action{Read}, Deny: true})
	ok2 := reg.NewPermission(PermissionParams{UserType: u, Actions: []Action{Update}})

	m, err := reg.NewModel(ModelParams{Name: "Doc"})
	require.NoError(t, err)

	err = m.AddPermission(FromPermission(ok1), FromPermission(bad), FromPermission(ok2))
	require.ErrorIs(t, err, ErrPermissionConflict)
	assert.Equal(t, []*Permission{ok1}, m.Permissions())
}

func TestModel_AddPermissionInvalidSources(t *testing.T) {
	reg := NewRegistry()
	m, err := reg.NewModel(ModelParams{Name: "Doc"})
	require.NoError(t, err)

	require.ErrorIs(t, m.AddPermission(PermissionSource{}), ErrInvalidPermissionSource)
	require.ErrorIs(t, m.AddPermission(FromPermission(nil)), ErrInvalidPermissionSource)
	require.ErrorIs(t, m.AddPermission(FromUserType(nil)), ErrInvalidPermissionSource)

	foreign := NewRegistry().NewPermission(PermissionParams{Actions: []Action{Read}})
	require.ErrorIs(t, m.AddPermission(FromPermission(foreign)), ErrForeignEntity)
}

func TestModel_AddRelation(t *testing.T) {
	reg := NewRegistry()
	book, err := reg.NewModel(ModelParams{Name: "Book"})
	require.NoError(t, err)
	author, err := reg.NewModel(ModelParams{Name: "Author"})
	require.NoError(t, err)

	comment, err := reg.NewModel(ModelParams{Name: "Comment", Relations: []*Model{book}})
	require.NoError(t, err)

	require.NoError(t, comment.AddRelation(author, book, nil))
	assert.Equal(t, []*Model{book, author}, comment.Relations())
	assert.True(t, comment.IsRelatedTo(book))
	assert.False(t, book.IsRelatedTo(comment))
	assert.Equal(t, []string{"Book", "Author"}, comment.Output().Relations)

	err = comment.AddRelation(comment)
	require.ErrorIs(t, err, ErrSelfRelation)
	assert.Len(t, comment.Relations(), 2)

	foreign, err := NewRegistry().NewModel(ModelParams{Name: "Elsewhere"})
	require.NoError(t, err)
	require.ErrorIs(t, comment.AddRelation(foreign), ErrForeignEntity)
}
