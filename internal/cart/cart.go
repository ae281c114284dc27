// Package cart owns the in-memory state of a sale in progress: the
// ordered line-item collection, optional customer/employee bindings, and
// the payment selection. The engine enforces quantity-merge semantics and
// re-reads live stock on every mutation instead of trusting cached values.
package cart

import (
	"context"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"github.com/shopspring/decimal"
)

// LineItem is one product-code/quantity/price entry within a cart.
// Identity key within one cart is the product code: adding an existing
// code merges quantities rather than duplicating the line.
type LineItem struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity × unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// PaymentSelection is the method and, for cash, the tendered amount
// currently entered for the cart.
type PaymentSelection struct {
	Method   domain.PaymentMethod `json:"method"`
	Tendered decimal.Decimal      `json:"tendered"`
}

// Cart is the mutable sale-in-progress. One cart belongs to one
// interactive terminal session; operations on it are never issued
// concurrently by design, so the struct carries no lock.
type Cart struct {
	ID         string
	Items      []LineItem
	Customer   *model.Customer
	EmployeeID *int
	Payment    *PaymentSelection
}

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool { return len(c.Items) == 0 }

// Total is Σ(quantity × unit_price) over current line items, recomputed
// on every call so it can never drift from the lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Find returns the line with the given product code and its position.
func (c *Cart) Find(code string) (*LineItem, int) {
	for i := range c.Items {
		if c.Items[i].Code == code {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

// Reset clears line items, customer and employee bindings, and the
// payment selection.
func (c *Cart) Reset() {
	c.Items = nil
	c.Customer = nil
	c.EmployeeID = nil
	c.Payment = nil
}

// Catalog is the read-only product lookup the engine needs for live
// stock checks. Satisfied by the product repository.
type Catalog interface {
	FindByCode(ctx context.Context, code string) (*model.Product, error)
}

// Engine applies cart mutations against live catalog data.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine { return &Engine{catalog: catalog} }

// AddOrMerge looks up the product and either appends a new line or merges
// the requested quantity into the existing line for that code. The stock
// check always runs against the merged quantity and the current catalog
// value; on failure the cart is left unchanged.
func (e *Engine) AddOrMerge(ctx context.Context, c *Cart, code string, quantity int) error {
	if quantity < 1 {
		return domain.E(domain.KindValidationFailed, "quantity must be at least 1")
	}
	p, err := e.catalog.FindByCode(ctx, code)
	if err != nil {
		return domain.E(domain.KindProductNotFound, "product %s not found", code)
	}

	newQty := quantity
	line, _ := c.Find(code)
	if line != nil {
		newQty = line.Quantity + quantity
	}
	if p.Stock < newQty {
		return domain.NewInsufficientStock(code, p.Stock, newQty)
	}

	if line != nil {
		line.Quantity = newQty
		return nil
	}
	c.Items = append(c.Items, LineItem{
		Code:      p.Code,
		Name:      p.Name,
		Quantity:  quantity,
		UnitPrice: p.SalePrice,
	})
	return nil
}

// EditQuantity sets the quantity of an existing line after re-validating
// against live stock. On rejection the line keeps its prior quantity; the
// caller reverts any displayed value.
func (e *Engine) EditQuantity(ctx context.Context, c *Cart, code string, quantity int) error {
	if quantity < 1 {
		return domain.E(domain.KindValidationFailed, "quantity must be at least 1")
	}
	line, _ := c.Find(code)
	if line == nil {
		return domain.E(domain.KindLineNotFound, "product %s is not in the cart", code)
	}
	p, err := e.catalog.FindByCode(ctx, code)
	if err != nil {
		return domain.E(domain.KindProductNotFound, "product %s not found", code)
	}
	if p.Stock < quantity {
		return domain.NewInsufficientStock(code, p.Stock, quantity)
	}
	line.Quantity = quantity
	return nil
}

// Remove deletes the line for the given code, preserving the order of the
// remaining lines.
func (e *Engine) Remove(c *Cart, code string) error {
	if c.Empty() {
		return domain.E(domain.KindEmptyCart, "cart is empty")
	}
	_, idx := c.Find(code)
	if idx < 0 {
		return domain.E(domain.KindLineNotFound, "product %s is not in the cart", code)
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return nil
}
