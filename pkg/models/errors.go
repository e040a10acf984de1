package models

import (
	"errors"
)

// Sentinel errors the database callbacks translate driver failures into,
// so that callers never have to inspect raw sqlite errors.
var (
	ErrGeneral          = errors.New("an error occurred during the request to the database")
	ErrResourceNotFound = errors.New("resource not found")
)
