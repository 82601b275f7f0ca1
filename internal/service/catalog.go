package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/logging"
	"github.com/abhiburugu8586/StudentMart/internal/models"
	"github.com/abhiburugu8586/StudentMart/internal/repo"
	"github.com/abhiburugu8586/StudentMart/internal/service/search"
)

type CatalogService struct {
	Repo  *repo.GormRepo
	ES    *elasticsearch.Client
	Index string
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID uint, offset, limit int) ([]models.Product, int64, error) {
	return s.Repo.ListProducts(ctx, categoryID, offset, limit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}

	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	s.reindex(ctx, product)
	return nil
}

// UpdateProduct applies the given fields to an existing product. Only the
// owning user may mutate a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, userID uint, product *models.Product) (*models.Product, error) {
	existing, err := s.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("product %d is not owned by user %d: %w", product.ID, userID, ErrForbidden)
	}
	if product.Name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}

	existing.CategoryID = product.CategoryID
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.ImageURL = product.ImageURL
	existing.Stock = product.Stock

	if err := s.Repo.UpdateProduct(ctx, existing); err != nil {
		return nil, err
	}
	s.reindex(ctx, existing)
	return existing, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, userID, productID uint) error {
	existing, err := s.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("product %d is not owned by user %d: %w", productID, userID, ErrForbidden)
	}

	if err := s.Repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	if s.ES != nil {
		if err := search.RemoveProduct(ctx, s.ES, s.Index, productID); err != nil {
			logging.FromContext(ctx).Warn("es remove failed", "product_id", productID, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, keyword, limit)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	return s.Repo.CreateCategory(ctx, category)
}

// reindex pushes the product into the search index best-effort. Index
// failures are logged, never surfaced: the catalog row is the source of
// truth.
func (s *CatalogService) reindex(ctx context.Context, product *models.Product) {
	if s.ES == nil {
		return
	}
	if err := search.IndexProduct(ctx, s.ES, s.Index, product); err != nil {
		logging.FromContext(ctx).Warn("es index failed", "product_id", product.ID, "error", err)
	}
}
