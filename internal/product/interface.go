package product

import (
	"context"

	"catalog-console/internal/model"
)

// Reader reads the whole collection or a single product.
type Reader interface {
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int) (model.Product, error)
}

// Creator creates products. The new identifier is not returned; callers re-fetch.
type Creator interface {
	Create(ctx context.Context, input CreateInput) error
}

// Updater applies a partial update.
type Updater interface {
	Update(ctx context.Context, id int, input UpdateInput) error
}

// Deleter removes products. Deleting an unknown id fails with ErrNotFound.
type Deleter interface {
	Delete(ctx context.Context, id int) error
}

// Service is the full product service set.
type Service interface {
	Reader
	Creator
	Updater
	Deleter
}
