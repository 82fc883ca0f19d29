package service

import (
	"context"
	"fmt"

	"catalog-console/internal/product"
	"catalog-console/pkg/catalogapi"
)

// Create posts a new product. It returns nothing on success.
func (s *implService) Create(ctx context.Context, input product.CreateInput) error {
	if err := s.api.AddProduct(ctx, toAddRequest(input)); err != nil {
		s.l.Warnf(ctx, "product.service.Create: %v", err)
		return fmt.Errorf("%w: %v", product.ErrWrite, err)
	}
	return nil
}

// Update sends only the supplied fields. An update without fields is a no-op.
func (s *implService) Update(ctx context.Context, id int, input product.UpdateInput) error {
	if input.Empty() {
		s.l.Debugf(ctx, "product.service.Update id=%d: nothing to send", id)
		return nil
	}
	if err := s.api.UpdateProduct(ctx, id, toUpdateRequest(input)); err != nil {
		s.l.Warnf(ctx, "product.service.Update id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", product.ErrWrite, err)
	}
	return nil
}

// Delete removes a product. It is not idempotent: an unknown id yields ErrNotFound.
func (s *implService) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		s.l.Warnf(ctx, "product.service.Delete id=%d: %v", id, err)
		if catalogapi.IsNotFound(err) {
			return fmt.Errorf("%w: %v", product.ErrNotFound, err)
		}
		return fmt.Errorf("%w: %v", product.ErrWrite, err)
	}
	return nil
}
