package catalog

// ScopeKind tells how a permission is narrowed.
type ScopeKind uint8

const (
	// ScopeNone applies the permission to every record of the model.
	ScopeNone ScopeKind = iota
	// ScopeOwner applies the permission to records owned by the acting user.
	ScopeOwner
	// ScopeRelation applies the permission to records connected to another model.
	ScopeRelation
)

// OwnerKeyword is the textual form of an owner scope in blueprints and output records.
const OwnerKeyword = "owner"

// String returns a short name for the kind.
func (k ScopeKind) String() string {
	switch k {
	case ScopeOwner:
		return "owner"
	case ScopeRelation:
		return "relation"
	default:
		return "none"
	}
}

// Scope is the belongs-to qualifier of a permission. The zero value is unscoped.
type Scope struct {
	kind  ScopeKind
	model ModelID
}

// OwnerScope restricts a permission to records owned by the acting user.
func OwnerScope() Scope {
	return Scope{kind: ScopeOwner}
}

// RelationScope restricts a permission to records connected to m.
func RelationScope(m *Model) Scope {
	if m == nil {
		return Scope{}
	}

	return Scope{kind: ScopeRelation, model: m.ID}
}

// RelationScopeID is RelationScope for a model known only by id.
func RelationScopeID(id ModelID) Scope {
	if id == "" {
		return Scope{}
	}

	return Scope{kind: ScopeRelation, model: id}
}

// Kind returns the scope kind.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// IsOwner reports whether this is an owner scope.
func (s Scope) IsOwner() bool {
	return s.kind == ScopeOwner
}

// Model returns the related model id of a relation scope.
func (s Scope) Model() (ModelID, bool) {
	if s.kind != ScopeRelation {
		return "", false
	}

	return s.model, true
}
