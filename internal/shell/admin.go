package shell

import (
	"context"
	"errors"

	"github.com/warungdev/tokocli/internal/repo"
	"github.com/warungdev/tokocli/internal/service"
)

func (s *Shell) adminMenu(ctx context.Context) {
	for {
		s.clear()
		s.printf("=== ADMIN MENU ===\n")
		s.printf("1. List Products\n")
		s.printf("2. Add Product\n")
		s.printf("3. Update Product\n")
		s.printf("4. Delete Product\n")
		s.printf("5. Restock Product\n")
		s.printf("6. Logout\n")

		switch s.readLine("Choose: ") {
		case "1":
			s.listProducts(ctx)
			s.pause()
		case "2":
			s.addProduct(ctx)
			s.pause()
		case "3":
			s.updateProduct(ctx)
			s.pause()
		case "4":
			s.deleteProduct(ctx)
			s.pause()
		case "5":
			s.restockProduct(ctx)
			s.pause()
		case "6":
			return
		}
	}
}

func (s *Shell) listProducts(ctx context.Context) {
	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if len(products) == 0 {
		s.printf("No products yet\n")
		return
	}
	for _, p := range products {
		s.printf("%d | %s | Price: %.2f | Stock: %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
}

func (s *Shell) addProduct(ctx context.Context) {
	name := s.readLine("Name: ")
	price, err := s.readFloat("Price: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	stock, err := s.readInt("Stock: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	prod, err := s.Catalog.AddProduct(ctx, name, price, stock)
	switch {
	case err == nil:
		s.printf("Product %d added\n", prod.ID)
	case errors.Is(err, service.ErrValidation):
		s.printf("Cannot add product: %v\n", err)
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) updateProduct(ctx context.Context) {
	id, err := s.readUint("Product ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	prod, err := s.Catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.printf("Product %d not found\n", id)
		} else {
			s.printf("Error: %v\n", err)
		}
		return
	}

	prod.Name = s.readLine("Name: ")
	prod.Price, err = s.readFloat("Price: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	prod.Stock, err = s.readInt("Stock: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	switch err := s.Catalog.UpdateProduct(ctx, prod); {
	case err == nil:
		s.printf("Product updated\n")
	case errors.Is(err, service.ErrValidation), errors.Is(err, repo.ErrProductNotFound):
		s.printf("Cannot update product: %v\n", err)
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) deleteProduct(ctx context.Context) {
	id, err := s.readUint("Product ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	switch err := s.Catalog.RemoveProduct(ctx, id); {
	case err == nil:
		s.printf("Product deleted\n")
	case errors.Is(err, repo.ErrProductNotFound):
		s.printf("Product %d not found\n", id)
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) restockProduct(ctx context.Context) {
	id, err := s.readUint("Product ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	qty, err := s.readInt("Quantity to add: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	prod, err := s.Catalog.Restock(ctx, id, qty)
	switch {
	case err == nil:
		s.printf("Stock of %q is now %d\n", prod.Name, prod.Stock)
	case errors.Is(err, service.ErrValidation), errors.Is(err, repo.ErrProductNotFound):
		s.printf("Cannot restock: %v\n", err)
	default:
		s.printf("Error: %v\n", err)
	}
}
