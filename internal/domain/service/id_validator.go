package service

// IDValidator tells well-formed user identifiers apart from garbage, so that
// malformed requests are rejected before the store is queried.
type IDValidator interface {
	IsValid(id string) bool
}
