package service

import (
	"context"
	"fmt"

	"catalog-console/internal/model"
	"catalog-console/internal/product"
	"catalog-console/pkg/catalogapi"
)

// List returns the whole collection in API order. Any failure is ErrRead with no partial data.
func (s *implService) List(ctx context.Context) ([]model.Product, error) {
	items, err := s.api.ListProducts(ctx)
	if err != nil {
		s.l.Warnf(ctx, "product.service.List: %v", err)
		return nil, fmt.Errorf("%w: %v", product.ErrRead, err)
	}

	products := make([]model.Product, 0, len(items))
	for _, item := range items {
		products = append(products, toModel(item))
	}
	return products, nil
}

// Detail returns one product. A 404 from the API is ErrNotFound, anything else ErrRead.
func (s *implService) Detail(ctx context.Context, id int) (model.Product, error) {
	item, err := s.api.GetProduct(ctx, id)
	if err != nil {
		s.l.Warnf(ctx, "product.service.Detail id=%d: %v", id, err)
		if catalogapi.IsNotFound(err) {
			return model.Product{}, fmt.Errorf("%w: %v", product.ErrNotFound, err)
		}
		return model.Product{}, fmt.Errorf("%w: %v", product.ErrRead, err)
	}
	return toModel(*item), nil
}
