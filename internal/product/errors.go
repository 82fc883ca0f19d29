package product

import "errors"

var (
	ErrRead     = errors.New("failed to read products")
	ErrNotFound = errors.New("product not found")
	ErrWrite    = errors.New("failed to write product")
)
