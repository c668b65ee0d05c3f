package usecase

import (
	"context"
	"fmt"

	"github.com/nvquang/product-api/internal/events"
	"github.com/nvquang/product-api/internal/models"
	"github.com/nvquang/product-api/internal/repo/mongodb"
)

type ProductUsecase interface {
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	SaveProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productUsecase struct {
	productRepo mongodb.ProductRepository
	publisher   events.Publisher
}

func NewProductUsecase(productRepo mongodb.ProductRepository, publisher events.Publisher) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// ValidateProduct checks that every product field is present. The contract is
// a single coarse message, not per-field detail.
func ValidateProduct(product *models.Product) string {
	if product.ID == 0 || product.Name == "" || product.Price == 0 ||
		product.Currency == "" || product.Image == "" {
		return "All fields are required!"
	}
	return ""
}

func (uc *productUsecase) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// SaveProduct assumes the caller has already validated the product.
func (uc *productUsecase) SaveProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	uc.publisher.ProductCreated(ctx, product)
	return product, nil
}

func (uc *productUsecase) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUsecase) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (*models.Product, error) {
	product, err := uc.productRepo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	uc.publisher.ProductUpdated(ctx, product)
	return product, nil
}

// DeleteProduct resolves successfully whether or not a document matched.
// The deleted count is available from the repository but deliberately not
// surfaced; delete keeps its always-succeeds contract.
func (uc *productUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := uc.productRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	uc.publisher.ProductDeleted(ctx, id)
	return nil
}
