package shell

import (
	"context"
	"errors"

	"github.com/warungdev/tokocli/internal/cart"
	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/payment"
	"github.com/warungdev/tokocli/internal/repo"
	"github.com/warungdev/tokocli/internal/service"
)

func (s *Shell) customerMenu(ctx context.Context, user *models.User) {
	// One cart per login session, never persisted.
	crt := cart.New()

	for {
		s.clear()
		s.printf("=== CUSTOMER MENU ===\n")
		s.printf("1. List Products\n")
		s.printf("2. Add to Cart\n")
		s.printf("3. View Cart\n")
		s.printf("4. Remove from Cart\n")
		s.printf("5. Checkout\n")
		s.printf("6. Order History\n")
		s.printf("7. Cancel Order\n")
		s.printf("8. Logout\n")

		switch s.readLine("Choose: ") {
		case "1":
			s.listProducts(ctx)
			s.pause()
		case "2":
			s.addToCart(ctx, crt)
			s.pause()
		case "3":
			s.viewCart(ctx, crt)
			s.pause()
		case "4":
			s.removeFromCart(crt)
			s.pause()
		case "5":
			s.checkout(ctx, user.ID, crt)
			s.pause()
		case "6":
			s.orderHistory(ctx, user.ID)
			s.pause()
		case "7":
			s.cancelOrder(ctx)
			s.pause()
		case "8":
			return
		}
	}
}

func (s *Shell) addToCart(ctx context.Context, crt *cart.Cart) {
	id, err := s.readUint("Product ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	qty, err := s.readInt("Quantity: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	if _, err := s.Catalog.GetProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.printf("Product %d not found\n", id)
		} else {
			s.printf("Error: %v\n", err)
		}
		return
	}
	if err := crt.Add(id, qty); err != nil {
		s.printf("Invalid input\n")
		return
	}
	s.printf("Added to cart\n")
}

func (s *Shell) viewCart(ctx context.Context, crt *cart.Cart) {
	entries := crt.Entries()
	if len(entries) == 0 {
		s.printf("Cart is empty\n")
		return
	}
	for _, e := range entries {
		prod, err := s.Catalog.GetProduct(ctx, e.ProductID)
		if err != nil {
			s.printf("%d | unknown product | Qty: %d\n", e.ProductID, e.Qty)
			continue
		}
		s.printf("%d | %s | Price: %.2f | Qty: %d\n", prod.ID, prod.Name, prod.Price, e.Qty)
	}
}

func (s *Shell) removeFromCart(crt *cart.Cart) {
	id, err := s.readUint("Product ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	crt.Remove(id)
	s.printf("Removed from cart\n")
}

func (s *Shell) checkout(ctx context.Context, userID uint, crt *cart.Cart) {
	if crt.Len() == 0 {
		s.printf("Cart is empty\n")
		return
	}

	s.printf("=== PAYMENT METHOD ===\n")
	s.printf("1. Card\n")
	s.printf("2. Cash on Delivery\n")
	s.printf("3. Wallet\n")
	method, ok := payment.FromChoice(s.readLine("Choose: "))
	if !ok {
		s.printf("Invalid payment method\n")
		return
	}

	res, err := s.Orders.Checkout(ctx, userID, crt, method)
	if err != nil {
		s.printf("Checkout failed: %v\n", err)
		return
	}
	crt.Clear()

	s.printf("Checkout successful: %s\n", res.Confirmation)
	s.printf("Order %d, total %.2f\n", res.OrderID, res.Total)
	s.printOrderDetails(ctx, res.OrderID)
}

func (s *Shell) orderHistory(ctx context.Context, userID uint) {
	orders, err := s.Orders.History(ctx, userID)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		s.printf("No orders yet\n")
		return
	}
	for _, o := range orders {
		s.printf("ID: %d | Total: %.2f | Status: %s\n", o.ID, o.Total, o.Status)
	}

	line := s.readLine("Order ID for details (blank to go back): ")
	if line == "" {
		return
	}
	id, err := s.readUintFrom(line)
	if err != nil {
		s.printf("Invalid input\n")
		return
	}
	s.printOrderDetails(ctx, id)
}

func (s *Shell) cancelOrder(ctx context.Context) {
	id, err := s.readUint("Order ID: ")
	if err != nil {
		s.printf("Invalid input\n")
		return
	}

	switch err := s.Orders.Cancel(ctx, id); {
	case err == nil:
		s.printf("Order %d cancelled\n", id)
	case errors.Is(err, repo.ErrOrderNotFound):
		s.printf("Order %d not found\n", id)
	case errors.Is(err, service.ErrAlreadyCancelled):
		s.printf("Order %d is already cancelled\n", id)
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) printOrderDetails(ctx context.Context, orderID uint) {
	details, err := s.Orders.Details(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			s.printf("Order %d not found\n", orderID)
		} else {
			s.printf("Error: %v\n", err)
		}
		return
	}
	for _, d := range details {
		s.printf("%s | Qty: %d | Price: %.2f | Subtotal: %.2f\n",
			d.ProductName, d.Qty, d.UnitPrice, d.Subtotal)
	}
}
