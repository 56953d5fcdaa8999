package repository

// Package repository contains data access layer abstractions.
// The PostgreSQL implementations live in the postgres subpackage.

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// ListQuery narrows a catalog listing.
type ListQuery struct {
	PageQuery
	// ActiveOnly restricts the listing to rows flagged active. Kinds without an
	// active flag ignore it.
	ActiveOnly bool
}
