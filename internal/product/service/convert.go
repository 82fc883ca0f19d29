package service

import (
	"catalog-console/internal/model"
	"catalog-console/internal/product"
	"catalog-console/pkg/catalogapi"
)

func toModel(p catalogapi.Product) model.Product {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return model.Product{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             images,
	}
}

func toAddRequest(in product.CreateInput) catalogapi.AddProductRequest {
	return catalogapi.AddProductRequest{
		Title:              in.Title,
		Description:        in.Description,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		Rating:             in.Rating,
		Stock:              in.Stock,
		Brand:              in.Brand,
		Category:           in.Category,
		Thumbnail:          in.Thumbnail,
		Images:             in.Images,
	}
}

func toUpdateRequest(in product.UpdateInput) catalogapi.UpdateProductRequest {
	return catalogapi.UpdateProductRequest{
		Title:              in.Title,
		Description:        in.Description,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		Rating:             in.Rating,
		Stock:              in.Stock,
		Brand:              in.Brand,
		Category:           in.Category,
		Thumbnail:          in.Thumbnail,
		Images:             in.Images,
	}
}
