package service

import (
	"context"
	"fmt"
	"time"

	"github.com/warungdev/tokocli/internal/cart"
	"github.com/warungdev/tokocli/internal/logging"
	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/payment"
	"github.com/warungdev/tokocli/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

type CheckoutResult struct {
	OrderID      uint
	Total        float64
	Confirmation string
}

// LineDetail is one order line resolved for display. ProductName comes from
// the live catalog and falls back to "unknown product" when the product has
// been deleted; qty, unit price and subtotal come from the snapshot.
type LineDetail struct {
	ProductName string
	Qty         int
	UnitPrice   float64
	Subtotal    float64
}

// Checkout validates every cart entry against live stock, settles the total
// with the chosen payment method, then persists the order, its lines and the
// stock decrements. Validation happens before any write: a failed checkout
// leaves the stores untouched. The commit pass re-resolves each product in
// the same entry order used for validation and does not re-check stock; the
// process serves one interactive session, so nothing can move stock between
// the two passes.
func (s *OrderService) Checkout(ctx context.Context, userID uint, crt *cart.Cart, method payment.Method) (*CheckoutResult, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout", "user_id", userID, "method", method.Name())

	entries := crt.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	var total float64
	for _, e := range entries {
		prod, err := s.Repo.GetProduct(ctx, e.ProductID)
		if err != nil {
			l.Warn("checkout_failed", "product_id", e.ProductID, "error", err)
			return nil, err
		}
		if prod.Stock < e.Qty {
			l.Warn("checkout_failed", "product_id", e.ProductID, "reason", "insufficient stock",
				"stock", prod.Stock, "requested", e.Qty)
			return nil, fmt.Errorf("%w: product %q has %d in stock, %d requested",
				ErrInsufficientStock, prod.Name, prod.Stock, e.Qty)
		}
		total += prod.Price * float64(e.Qty)
	}

	confirmation, err := method.Settle(total)
	if err != nil {
		l.Error("checkout_failed", "reason", "payment not settled", "error", err)
		return nil, err
	}

	var order *models.Order
	txErr := s.Repo.Transact(ctx, func(tx *repo.GormRepo) error {
		order, err = tx.CreateOrder(ctx, &models.Order{
			UserID:    userID,
			Total:     total,
			Status:    models.OrderStatusCompleted,
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return err
		}

		for _, e := range entries {
			prod, err := tx.GetProduct(ctx, e.ProductID)
			if err != nil {
				return err
			}
			line := models.OrderLine{
				OrderID:   order.ID,
				ProductID: prod.ID,
				Qty:       e.Qty,
				UnitPrice: prod.Price,
			}
			if err := tx.CreateOrderLine(ctx, &line); err != nil {
				return err
			}
			prod.Stock -= e.Qty
			if err := tx.UpdateProduct(ctx, prod); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		l.Error("checkout_failed", "error", txErr)
		return nil, txErr
	}

	l.Info("checkout_success", "order_id", order.ID, "total", total)
	return &CheckoutResult{OrderID: order.ID, Total: total, Confirmation: confirmation}, nil
}

// Cancel flips a completed order to cancelled. It does not restock the
// ordered products.
func (s *OrderService) Cancel(ctx context.Context, orderID uint) error {
	l := logging.FromContext(ctx).With("svc", "order.cancel", "order_id", orderID)

	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		l.Warn("cancel_failed", "error", err)
		return err
	}
	if order.Status == models.OrderStatusCancelled {
		l.Warn("cancel_failed", "reason", "already cancelled")
		return fmt.Errorf("%w: order %d", ErrAlreadyCancelled, orderID)
	}
	if err := s.Repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		l.Error("cancel_failed", "error", err)
		return err
	}

	l.Info("cancel_success")
	return nil
}

func (s *OrderService) History(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) Details(ctx context.Context, orderID uint) ([]LineDetail, error) {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	lines, err := s.Repo.LinesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	details := make([]LineDetail, 0, len(lines))
	for _, line := range lines {
		name := "unknown product"
		if prod, err := s.Repo.GetProduct(ctx, line.ProductID); err == nil {
			name = prod.Name
		}
		details = append(details, LineDetail{
			ProductName: name,
			Qty:         line.Qty,
			UnitPrice:   line.UnitPrice,
			Subtotal:    float64(line.Qty) * line.UnitPrice,
		})
	}
	return details, nil
}
