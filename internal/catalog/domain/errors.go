package domain

import "errors"

var (
	// ErrProductNotFound is returned when the upstream catalog has no
	// product with the requested id
	ErrProductNotFound = errors.New("product not found")

	// ErrCatalogUnavailable is returned when the upstream catalog cannot
	// be reached or answers with a server error
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnauthorized is returned when the upstream rejects the bearer
	// token attached to a request
	ErrUnauthorized = errors.New("unauthorized")
)
