package service

import (
	"context"
	"fmt"

	"github.com/warungdev/tokocli/internal/logging"
	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func validateProduct(name string, price float64, stock int) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}
	return nil
}

func (s *CatalogService) AddProduct(ctx context.Context, name string, price float64, stock int) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.add_product")

	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}

	prod, err := s.Repo.CreateProduct(ctx, &models.Product{Name: name, Price: price, Stock: stock})
	if err != nil {
		l.Error("add_product_failed", "error", err)
		return nil, err
	}

	l.Info("add_product_success", "product_id", prod.ID, "name", prod.Name)
	return prod, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, prod *models.Product) error {
	l := logging.FromContext(ctx).With("svc", "catalog.update_product", "product_id", prod.ID)

	if err := validateProduct(prod.Name, prod.Price, prod.Stock); err != nil {
		return err
	}
	if _, err := s.Repo.GetProduct(ctx, prod.ID); err != nil {
		l.Warn("update_product_failed", "error", err)
		return err
	}
	if err := s.Repo.UpdateProduct(ctx, prod); err != nil {
		l.Error("update_product_failed", "error", err)
		return err
	}

	l.Info("update_product_success")
	return nil
}

// RemoveProduct deletes the record. Historical order lines keep their own
// price snapshot, so they stay interpretable after the product is gone.
func (s *CatalogService) RemoveProduct(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "catalog.remove_product", "product_id", id)

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		l.Warn("remove_product_failed", "error", err)
		return err
	}

	l.Info("remove_product_success")
	return nil
}

func (s *CatalogService) Restock(ctx context.Context, id uint, qty int) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.restock", "product_id", id)

	if qty <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be > 0", ErrValidation)
	}
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		l.Warn("restock_failed", "error", err)
		return nil, err
	}
	prod.Stock += qty
	if err := s.Repo.UpdateProduct(ctx, prod); err != nil {
		l.Error("restock_failed", "error", err)
		return nil, err
	}

	l.Info("restock_success", "stock", prod.Stock)
	return prod, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}
