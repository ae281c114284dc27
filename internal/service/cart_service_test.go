package service

import (
	"context"
	"testing"

	"bodegapos/internal/cart"
	"bodegapos/internal/domain"
	"bodegapos/internal/model"
	"bodegapos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ────────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[string]*model.Customer
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.customers[c.Phone] = c
	return nil
}

func (r *stubCustomerRepo) CreateTx(_ *gorm.DB, c *model.Customer) error {
	r.customers[c.Phone] = c
	return nil
}

func (r *stubCustomerRepo) FindByPhone(_ context.Context, phone string) (*model.Customer, error) {
	c, ok := r.customers[phone]
	if !ok {
		return nil, domain.E(domain.KindCustomerNotFound, "customer %s not found", phone)
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) Update(_ context.Context, _ *model.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(_ context.Context, _ string) error          { return nil }

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubEmployeeRepo struct {
	employees map[int]*model.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.E(domain.KindEmployeeNotFound, "employee %d not found", id)
	}
	return e, nil
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]model.Employee, error) { return nil, nil }
func (r *stubEmployeeRepo) Update(_ context.Context, _ *model.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(_ context.Context, _ int) error             { return nil }

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

type staticCatalog map[string]*model.Product

func (s staticCatalog) FindByCode(_ context.Context, code string) (*model.Product, error) {
	p, ok := s[code]
	if !ok {
		return nil, domain.E(domain.KindProductNotFound, "product %s not found", code)
	}
	return p, nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func newCartSvc() CartService {
	catalog := staticCatalog{
		"7501000000011": {Code: "7501000000011", Name: "Milk 1L", SalePrice: amount("10.00"), Stock: 20},
	}
	customers := &stubCustomerRepo{customers: map[string]*model.Customer{
		"5512345678": {Phone: "5512345678", Name: "Maria Gomez"},
	}}
	employees := &stubEmployeeRepo{employees: map[int]*model.Employee{
		1: {ID: 1, Name: "Carlos"},
	}}
	return NewCartService(cart.NewManager(), cart.NewEngine(catalog), customers, employees)
}

func TestCartServiceSnapshotAfterMutations(t *testing.T) {
	svc := newCartSvc()
	ctx := context.Background()

	created := svc.CreateCart(ctx)
	require.NotEmpty(t, created.CartID)
	assert.Empty(t, created.Items)
	assert.Equal(t, domain.GeneralCustomerLabel, created.CustomerName)

	snap, err := svc.AddItem(ctx, created.CartID, "7501000000011", 2)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "20.00", snap.Total.StringFixed(2))

	snap, err = svc.EditQuantity(ctx, created.CartID, "7501000000011", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Items[0].Quantity)
	assert.Equal(t, "60.00", snap.Total.StringFixed(2))

	snap, err = svc.RemoveItem(ctx, created.CartID, "7501000000011")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
}

func TestCartServiceBindCustomer(t *testing.T) {
	svc := newCartSvc()
	ctx := context.Background()
	created := svc.CreateCart(ctx)

	snap, err := svc.BindCustomer(ctx, created.CartID, "5512345678")
	require.NoError(t, err)
	assert.Equal(t, "Maria Gomez", snap.CustomerName)

	// Clearing the phone falls back to the general customer.
	snap, err = svc.BindCustomer(ctx, created.CartID, "")
	require.NoError(t, err)
	assert.Nil(t, snap.CustomerPhone)
	assert.Equal(t, domain.GeneralCustomerLabel, snap.CustomerName)

	_, err = svc.BindCustomer(ctx, created.CartID, "5500000000")
	assert.True(t, domain.IsKind(err, domain.KindCustomerNotFound))
}

func TestCartServiceBindEmployeeValidatesID(t *testing.T) {
	svc := newCartSvc()
	ctx := context.Background()
	created := svc.CreateCart(ctx)

	snap, err := svc.BindEmployee(ctx, created.CartID, 1)
	require.NoError(t, err)
	require.NotNil(t, snap.EmployeeID)
	assert.Equal(t, 1, *snap.EmployeeID)

	_, err = svc.BindEmployee(ctx, created.CartID, 99)
	assert.True(t, domain.IsKind(err, domain.KindEmployeeNotFound))
}

func TestCartServiceSetPaymentDerivesResult(t *testing.T) {
	svc := newCartSvc()
	ctx := context.Background()
	created := svc.CreateCart(ctx)
	_, err := svc.AddItem(ctx, created.CartID, "7501000000011", 5)
	require.NoError(t, err)

	snap, err := svc.SetPayment(ctx, created.CartID, domain.PaymentCash, amount("40.00"))
	require.NoError(t, err)
	require.NotNil(t, snap.Payment)
	assert.False(t, snap.Payment.Committable)
	assert.Equal(t, "10.00", snap.Payment.Shortfall.StringFixed(2))

	snap, err = svc.SetPayment(ctx, created.CartID, domain.PaymentCash, amount("100.00"))
	require.NoError(t, err)
	assert.True(t, snap.Payment.Committable)
	assert.Equal(t, "50.00", snap.Payment.Change.StringFixed(2))

	_, err = svc.SetPayment(ctx, created.CartID, domain.PaymentMethod("VOUCHER"), amount("100.00"))
	assert.True(t, domain.IsKind(err, domain.KindPaymentMethodNotSelected))
}

func TestCartServiceUnknownSession(t *testing.T) {
	svc := newCartSvc()
	ctx := context.Background()

	_, err := svc.GetCart(ctx, "missing")
	assert.True(t, domain.IsKind(err, domain.KindCartNotFound))

	err = svc.Discard(ctx, "missing")
	assert.True(t, domain.IsKind(err, domain.KindCartNotFound))
}
