package service

import (
	"context"
	"testing"
	"time"

	"bodegapos/internal/cart"
	"bodegapos/internal/domain"
	"bodegapos/internal/dto"
	"bodegapos/internal/infra"
	"bodegapos/internal/model"
	"bodegapos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// saleEnv wires the sale service against an in-memory SQLite store so
// checkout runs its real transaction, including rollback paths.
type saleEnv struct {
	db      *gorm.DB
	manager *cart.Manager
	engine  *cart.Engine
	svc     SaleService
}

func newSaleEnv(t *testing.T) *saleEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.RunMigrations(db))

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	manager := cart.NewManager()
	env := &saleEnv{
		db:      db,
		manager: manager,
		engine:  cart.NewEngine(productRepo),
		svc:     NewSaleService(manager, saleRepo, productRepo, customerRepo, employeeRepo, nil),
	}

	require.NoError(t, db.Create(&model.Employee{ID: 1, Name: "Carlos", Role: "cashier"}).Error)
	require.NoError(t, db.Create(&model.Product{
		Code: "7501000000011", Name: "Milk 1L", SalePrice: amount("10.00"), Cost: amount("7.00"), Stock: 20,
	}).Error)
	require.NoError(t, db.Create(&model.Product{
		Code: "7501000000028", Name: "Bread", SalePrice: amount("25.50"), Cost: amount("18.00"), Stock: 4,
	}).Error)
	return env
}

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// readyCart opens a session with merged milk lines (2+3), an employee
// and a cash payment that covers the 50.00 total.
func (e *saleEnv) readyCart(t *testing.T) *cart.Cart {
	t.Helper()
	ctx := context.Background()
	c := e.manager.Create()
	require.NoError(t, e.engine.AddOrMerge(ctx, c, "7501000000011", 2))
	require.NoError(t, e.engine.AddOrMerge(ctx, c, "7501000000011", 3))
	employeeID := 1
	c.EmployeeID = &employeeID
	c.Payment = &cart.PaymentSelection{Method: domain.PaymentCash, Tendered: amount("100.00")}
	return c
}

func (e *saleEnv) productStock(t *testing.T, code string) int {
	t.Helper()
	var p model.Product
	require.NoError(t, e.db.First(&p, "code = ?", code).Error)
	return p.Stock
}

func (e *saleEnv) saleCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Sale{}).Count(&n).Error)
	return n
}

func TestCheckoutCommitsSale(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)

	receipt, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.SaleID)
	assert.Equal(t, "CASH", receipt.PaymentMethod)
	assert.Equal(t, domain.GeneralCustomerLabel, receipt.CustomerLabel)
	assert.Equal(t, "Carlos", receipt.EmployeeName)
	assert.Equal(t, "50.00", receipt.Total.StringFixed(2))
	require.NotNil(t, receipt.Change)
	assert.Equal(t, "50.00", receipt.Change.StringFixed(2))
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, 5, receipt.Lines[0].Quantity)

	// Durable effects: one sale with its item, stock decremented.
	assert.EqualValues(t, 1, env.saleCount(t))
	assert.Equal(t, 15, env.productStock(t, "7501000000011"))

	var sale model.Sale
	require.NoError(t, env.db.Preload("Items").First(&sale, 1).Error)
	assert.Equal(t, domain.GeneralCustomerPhone, sale.CustomerPhone)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 5, sale.Items[0].Quantity)

	// The session survives with an empty cart, ready for the next sale.
	got, err := env.manager.Get(c.ID)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Nil(t, got.Payment)
}

func TestCheckoutAllocatesMaxPlusOneID(t *testing.T) {
	env := newSaleEnv(t)
	require.NoError(t, env.db.Create(&model.Sale{
		ID: 41, Date: time.Now(), Total: amount("10.00"),
		CustomerPhone: domain.GeneralCustomerPhone, EmployeeID: 1, PaymentMethod: "CASH",
	}).Error)

	c := env.readyCart(t)
	receipt, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, 42, receipt.SaleID)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	env := newSaleEnv(t)
	c := env.manager.Create()

	_, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	assert.True(t, domain.IsKind(err, domain.KindEmptyCart))
}

func TestCheckoutRequiresEmployee(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	c.EmployeeID = nil

	_, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	assert.True(t, domain.IsKind(err, domain.KindEmployeeRequired))
}

func TestCheckoutRequiresPaymentMethod(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	c.Payment = nil

	_, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	assert.True(t, domain.IsKind(err, domain.KindPaymentMethodNotSelected))
}

func TestCheckoutRejectsInsufficientTender(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	c.Payment.Tendered = amount("30.00")

	_, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	assert.True(t, domain.IsKind(err, domain.KindPaymentInsufficient))

	// Nothing written, cart intact for correction.
	assert.EqualValues(t, 0, env.saleCount(t))
	got, _ := env.manager.Get(c.ID)
	assert.False(t, got.Empty())
}

func TestCheckoutCardIgnoresTendered(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	c.Payment = &cart.PaymentSelection{Method: domain.PaymentCard}

	receipt, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "CARD", receipt.PaymentMethod)
	assert.Nil(t, receipt.Tendered)
	assert.Nil(t, receipt.Change)
}

func TestCheckoutRollsBackWhenStockShrinks(t *testing.T) {
	env := newSaleEnv(t)
	ctx := context.Background()
	c := env.manager.Create()
	require.NoError(t, env.engine.AddOrMerge(ctx, c, "7501000000028", 1))
	require.NoError(t, env.engine.AddOrMerge(ctx, c, "7501000000011", 5))
	employeeID := 1
	c.EmployeeID = &employeeID
	c.Payment = &cart.PaymentSelection{Method: domain.PaymentCard}

	// Milk stock drops below the cart quantity between add and pay.
	require.NoError(t, env.db.Model(&model.Product{}).
		Where("code = ?", "7501000000011").Update("stock", 3).Error)

	_, err := env.svc.Checkout(ctx, c.ID, dto.CheckoutRequest{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInsufficientStock))

	// Rollback: no sale row, the first line's decrement undone, cart kept.
	assert.EqualValues(t, 0, env.saleCount(t))
	assert.Equal(t, 4, env.productStock(t, "7501000000028"))
	assert.Equal(t, 3, env.productStock(t, "7501000000011"))
	got, errGet := env.manager.Get(c.ID)
	require.NoError(t, errGet)
	assert.Len(t, got.Items, 2)
}

func TestCheckoutWithInvoiceRegistersCustomer(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)

	req := dto.CheckoutRequest{Invoice: &dto.InvoiceRequest{
		TaxID:            "GOMA850101AB1",
		LegalName:        "Maria Gomez",
		FiscalAddress:    "Av. Juarez 100, Centro",
		Email:            "maria@example.com",
		RegisterCustomer: true,
		CustomerPhone:    "5512345678",
	}}

	receipt, err := env.svc.Checkout(context.Background(), c.ID, req)
	require.NoError(t, err)
	require.NotNil(t, receipt.Invoice)
	assert.Equal(t, "GOMA850101AB1", receipt.Invoice.TaxID)
	assert.Equal(t, "Maria Gomez", receipt.CustomerLabel)

	var inv model.Invoice
	require.NoError(t, env.db.First(&inv, "sale_id = ?", receipt.SaleID).Error)
	assert.Equal(t, "maria@example.com", inv.Email)

	// The walk-in customer was registered in the same unit of work and
	// the sale points at the new phone, not the general customer.
	var cust model.Customer
	require.NoError(t, env.db.First(&cust, "phone = ?", "5512345678").Error)
	assert.Equal(t, "Maria Gomez", cust.Name)

	var sale model.Sale
	require.NoError(t, env.db.First(&sale, receipt.SaleID).Error)
	assert.Equal(t, "5512345678", sale.CustomerPhone)
}

func TestCheckoutRejectsIncompleteInvoiceBeforeAnyWrite(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)

	req := dto.CheckoutRequest{Invoice: &dto.InvoiceRequest{
		TaxID:         "SHORT",
		LegalName:     "Maria Gomez",
		FiscalAddress: "Av. Juarez 100, Centro",
		Email:         "maria@example.com",
	}}

	_, err := env.svc.Checkout(context.Background(), c.ID, req)
	assert.True(t, domain.IsKind(err, domain.KindInvoiceDataIncomplete))
	assert.EqualValues(t, 0, env.saleCount(t))
	assert.Equal(t, 20, env.productStock(t, "7501000000011"))
}

func TestListSalesByDay(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	_, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	require.NoError(t, err)

	// Empty filter means today, which includes the fresh sale.
	resp, err := env.svc.ListSales(context.Background(), dto.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Data[0].ID)
	assert.Equal(t, "Carlos", resp.Data[0].EmployeeName)
	assert.False(t, resp.Data[0].Invoiced)

	// A day with no sales yields an empty list, not an error.
	resp, err = env.svc.ListSales(context.Background(), dto.SaleFilter{Date: "1999-01-01"})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)

	_, err = env.svc.ListSales(context.Background(), dto.SaleFilter{Date: "01/01/1999"})
	assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
}

func TestGetSaleDetail(t *testing.T) {
	env := newSaleEnv(t)
	c := env.readyCart(t)
	receipt, err := env.svc.Checkout(context.Background(), c.ID, dto.CheckoutRequest{})
	require.NoError(t, err)

	detail, err := env.svc.GetSale(context.Background(), receipt.SaleID)
	require.NoError(t, err)
	assert.Equal(t, receipt.SaleID, detail.ID)
	assert.Equal(t, "Carlos", detail.EmployeeName)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Milk 1L", detail.Lines[0].Name)
	assert.Equal(t, "50.00", detail.Lines[0].Subtotal.StringFixed(2))

	_, err = env.svc.GetSale(context.Background(), 999)
	assert.True(t, domain.IsKind(err, domain.KindSaleNotFound))
}
