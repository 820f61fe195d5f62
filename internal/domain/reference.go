package domain

// refKind tags the three encodings a relationship can arrive in from the
// remote API: a fully embedded object, a bare numeric id, or nothing.
type refKind int

const (
	refUnresolved refKind = iota
	refByID
	refResolved
)

// Reference points at a related entity. The remote API encodes relationships
// inconsistently, so a Reference starts out either resolved (embedded object),
// by-id (numeric reference), or unresolved (field absent), and the reconciler
// upgrades by-id references to resolved ones exactly once per load.
type Reference[T any] struct {
	entity *T
	id     int64
	kind   refKind
}

// Resolved creates a Reference holding a full entity.
func Resolved[T any](entity *T) Reference[T] {
	return Reference[T]{entity: entity, kind: refResolved}
}

// ByID creates a Reference holding only a numeric id.
func ByID[T any](id int64) Reference[T] {
	return Reference[T]{id: id, kind: refByID}
}

// Unresolved creates an empty Reference (no relationship present).
func Unresolved[T any]() Reference[T] {
	return Reference[T]{kind: refUnresolved}
}

// Entity returns the resolved entity, if any.
func (r Reference[T]) Entity() (*T, bool) {
	if r.kind == refResolved {
		return r.entity, true
	}
	return nil, false
}

// ID returns the referenced id, if the reference holds one.
func (r Reference[T]) ID() (int64, bool) {
	if r.kind == refByID {
		return r.id, true
	}
	return 0, false
}

// IsResolved returns true if the reference holds a full entity.
func (r Reference[T]) IsResolved() bool {
	return r.kind == refResolved
}

// IsUnresolved returns true if no relationship is present at all.
func (r Reference[T]) IsUnresolved() bool {
	return r.kind == refUnresolved
}
