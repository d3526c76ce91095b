// Package service holds the business logic between the HTTP handlers and the
// Mongo repositories. Failures surface as sentinel errors which the handlers
// map onto the HTTP status taxonomy.
package service

import "errors"

var (
	// ErrNotFound covers missing records and, for candidate-facing interview
	// lookups, ownership mismatches (no existence leakage).
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is a uniqueness conflict within a single principal
	// collection; emails are not cross-checked between roles.
	ErrEmailTaken = errors.New("email already exists")

	// ErrCompanyExists is the company-name uniqueness conflict.
	ErrCompanyExists = errors.New("company already exists")

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike, so callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
