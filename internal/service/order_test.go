package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungdev/tokocli/internal/cart"
	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/payment"
	"github.com/warungdev/tokocli/internal/repo"
)

// failingMethod stands in for a payment method that raises during settlement.
type failingMethod struct{}

func (failingMethod) Name() string { return "failing" }

func (failingMethod) Settle(amount float64) (string, error) {
	return "", errors.New("settlement refused")
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64, stock int) *models.Product {
	t.Helper()
	prod, err := r.CreateProduct(context.Background(), &models.Product{Name: name, Price: price, Stock: stock})
	require.NoError(t, err)
	return prod
}

func cartWith(t *testing.T, entries map[uint]int) *cart.Cart {
	t.Helper()
	crt := cart.New()
	for pid, qty := range entries {
		require.NoError(t, crt.Add(pid, qty))
	}
	return crt
}

func TestOrderService_Checkout_Success(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 3})

	res, err := svc.Checkout(ctx, 1, crt, payment.Card{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 30.0, res.Total)
	assert.NotEmpty(t, res.Confirmation)

	order, err := r.GetOrder(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 30.0, order.Total)

	lines, err := r.LinesByOrder(ctx, res.OrderID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, widget.ID, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, 10.0, lines[0].UnitPrice)

	got, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestOrderService_Checkout_AllPaymentMethods(t *testing.T) {
	methods := []payment.Method{payment.Card{}, payment.CashOnDelivery{}, payment.Wallet{}}

	for _, m := range methods {
		t.Run(m.Name(), func(t *testing.T) {
			r := initTestRepo(t)
			svc := &OrderService{Repo: r}

			widget := seedProduct(t, r, "Widget", 10.0, 5)
			crt := cartWith(t, map[uint]int{widget.ID: 3})

			res, err := svc.Checkout(context.Background(), 1, crt, m)
			require.NoError(t, err)
			assert.Equal(t, 30.0, res.Total)
			assert.NotEmpty(t, res.Confirmation)
		})
	}
}

func TestOrderService_Checkout_TotalMatchesLines(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	gadget := seedProduct(t, r, "Gadget", 2.5, 10)
	crt := cartWith(t, map[uint]int{widget.ID: 2, gadget.ID: 4})

	res, err := svc.Checkout(ctx, 1, crt, payment.Wallet{})
	require.NoError(t, err)

	lines, err := r.LinesByOrder(ctx, res.OrderID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	var recomputed float64
	for _, line := range lines {
		recomputed += float64(line.Qty) * line.UnitPrice
	}
	assert.Equal(t, res.Total, recomputed)

	order, err := r.GetOrder(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, recomputed, order.Total)
}

func TestOrderService_Checkout_ProductMissing(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 1, 999: 2})

	res, err := svc.Checkout(ctx, 1, crt, payment.Card{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)

	// no partial writes
	got, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assertNoOrders(t, r)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 10})

	res, err := svc.Checkout(ctx, 1, crt, payment.Card{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	got, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assertNoOrders(t, r)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	svc := &OrderService{Repo: initTestRepo(t)}

	res, err := svc.Checkout(context.Background(), 1, cart.New(), payment.Card{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_Checkout_PaymentFailure(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 3})

	res, err := svc.Checkout(ctx, 1, crt, failingMethod{})
	require.Error(t, err)
	assert.Nil(t, res)

	got, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assertNoOrders(t, r)
}

func TestOrderService_Cancel(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 3})
	res, err := svc.Checkout(ctx, 1, crt, payment.Card{})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, res.OrderID))

	order, err := r.GetOrder(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// cancellation does not restock
	got, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	err = svc.Cancel(ctx, res.OrderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestOrderService_Cancel_NotFound(t *testing.T) {
	svc := &OrderService{Repo: initTestRepo(t)}

	err := svc.Cancel(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrOrderNotFound)
}

func TestOrderService_History_NewestFirst(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	older, err := r.CreateOrder(ctx, &models.Order{UserID: 1, Total: 10, Status: models.OrderStatusCompleted, CreatedAt: 100})
	require.NoError(t, err)
	newer, err := r.CreateOrder(ctx, &models.Order{UserID: 1, Total: 20, Status: models.OrderStatusCompleted, CreatedAt: 200})
	require.NoError(t, err)
	_, err = r.CreateOrder(ctx, &models.Order{UserID: 2, Total: 30, Status: models.OrderStatusCompleted, CreatedAt: 300})
	require.NoError(t, err)

	orders, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestOrderService_Details_DeletedProduct(t *testing.T) {
	r := initTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	widget := seedProduct(t, r, "Widget", 10.0, 5)
	crt := cartWith(t, map[uint]int{widget.ID: 3})
	res, err := svc.Checkout(ctx, 1, crt, payment.Card{})
	require.NoError(t, err)

	require.NoError(t, r.DeleteProduct(ctx, widget.ID))

	details, err := svc.Details(ctx, res.OrderID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "unknown product", details[0].ProductName)
	assert.Equal(t, 3, details[0].Qty)
	assert.Equal(t, 10.0, details[0].UnitPrice)
	assert.Equal(t, 30.0, details[0].Subtotal)
}

func TestOrderService_Details_NotFound(t *testing.T) {
	svc := &OrderService{Repo: initTestRepo(t)}

	details, err := svc.Details(context.Background(), 42)
	require.Error(t, err)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, repo.ErrOrderNotFound)
}

func assertNoOrders(t *testing.T, r *repo.GormRepo) {
	t.Helper()

	var orders int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var lines int64
	require.NoError(t, r.DB.Model(&models.OrderLine{}).Count(&lines).Error)
	assert.Zero(t, lines)
}
