package service

import (
	"context"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
)

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, payload *model.CreateProductRequest) (*model.Product, error) {
	return s.repo.CreateProduct(ctx, payload)
}

// UpdateProduct merges the fields present in payload into the stored product.
func (s *ProductService) UpdateProduct(ctx context.Context, payload *model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	payload.ApplyTo(product)

	return s.repo.UpdateProduct(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}

	return &model.MessageResponse{
		Message: fmt.Sprintf("Product %d deleted successfully", id),
	}, nil
}
