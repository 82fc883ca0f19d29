package service

import (
	"context"

	"catalog-console/internal/product"
	"catalog-console/pkg/catalogapi"
	"catalog-console/pkg/log"
)

// API is the subset of the catalog client the product services need.
type API interface {
	ListProducts(ctx context.Context) ([]catalogapi.Product, error)
	GetProduct(ctx context.Context, id int) (*catalogapi.Product, error)
	AddProduct(ctx context.Context, req catalogapi.AddProductRequest) error
	UpdateProduct(ctx context.Context, id int, req catalogapi.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id int) error
}

// implService is the private implementation of product.Service.
type implService struct {
	api API
	l   log.Logger
}

var _ product.Service = (*implService)(nil)

// New creates the product service set backed by the catalog API.
func New(api API, l log.Logger) *implService {
	return &implService{
		api: api,
		l:   l,
	}
}
