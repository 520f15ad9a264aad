// Package catalog holds the declarative object graph the story generators work on.
//
// A Registry owns every UserType, Permission and Model by id. Entities never point at each
// other directly; a Permission stores the id of its user type and, when relation scoped, the id
// of the model it belongs to. Lookups always go through the owning Registry:
//
//	reg := catalog.NewRegistry()
//	admin := reg.NewUserType("Admin")
//	todo, err := reg.NewModel(catalog.ModelParams{Name: "Todo"})
//	err = todo.AddPermission(catalog.FromPermission(reg.NewPermission(catalog.PermissionParams{
//	    UserType: admin,
//	    Actions:  []catalog.Action{catalog.All},
//	})))
//
// # Permissions
//
// A Permission grants (or, with Deny, explicitly refuses) a set of CRUD actions. The input
// action "all" expands to create, read, update and delete. A Scope narrows the permission to
// records owned by the acting user (OwnerScope) or to records connected to another model
// (RelationScope).
//
// # Conflicts
//
// Within one Model, every permission of a user type must agree on Can for each action. Adding a
// permission that disagrees with one already present fails with a *PermissionConflictError and
// leaves the model untouched. Once a permission is attached to a model it is frozen.
package catalog
