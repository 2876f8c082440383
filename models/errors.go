package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

var (
	ErrMissingListId = errors.Wrap(BadParameterError, "the target list id is required")
	ErrMissingItemId = errors.Wrap(BadParameterError, "the item id is required")
)
