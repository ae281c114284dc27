package service

import (
	"context"

	"bodegapos/internal/cart"
	"bodegapos/internal/domain"
	"bodegapos/internal/dto"
	"bodegapos/internal/payment"
	"bodegapos/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService exposes the cart-assembly operations of the sale screen.
// Every mutation returns a fresh snapshot so the terminal re-renders the
// grid and total without tracking deltas.
type CartService interface {
	CreateCart(ctx context.Context) dto.CartSnapshot
	GetCart(ctx context.Context, cartID string) (*dto.CartSnapshot, error)
	Discard(ctx context.Context, cartID string) error
	AddItem(ctx context.Context, cartID, code string, quantity int) (*dto.CartSnapshot, error)
	EditQuantity(ctx context.Context, cartID, code string, quantity int) (*dto.CartSnapshot, error)
	RemoveItem(ctx context.Context, cartID, code string) (*dto.CartSnapshot, error)
	BindCustomer(ctx context.Context, cartID, phone string) (*dto.CartSnapshot, error)
	BindEmployee(ctx context.Context, cartID string, employeeID int) (*dto.CartSnapshot, error)
	// SetPayment records the method/tender on the cart and returns the
	// recomputed change-or-shortfall result.
	SetPayment(ctx context.Context, cartID string, method domain.PaymentMethod, tendered decimal.Decimal) (*dto.CartSnapshot, error)
}

type cartService struct {
	manager      *cart.Manager
	engine       *cart.Engine
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
}

func NewCartService(
	manager *cart.Manager,
	engine *cart.Engine,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
) CartService {
	return &cartService{
		manager:      manager,
		engine:       engine,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *cartService) CreateCart(_ context.Context) dto.CartSnapshot {
	return snapshotOf(s.manager.Create())
}

func (s *cartService) GetCart(_ context.Context, cartID string) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	snap := snapshotOf(c)
	return &snap, nil
}

func (s *cartService) Discard(_ context.Context, cartID string) error {
	if _, err := s.manager.Get(cartID); err != nil {
		return err
	}
	s.manager.Discard(cartID)
	return nil
}

func (s *cartService) AddItem(ctx context.Context, cartID, code string, quantity int) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.AddOrMerge(ctx, c, code, quantity); err != nil {
		return nil, err
	}
	snap := snapshotOf(c)
	return &snap, nil
}

func (s *cartService) EditQuantity(ctx context.Context, cartID, code string, quantity int) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.EditQuantity(ctx, c, code, quantity); err != nil {
		return nil, err
	}
	snap := snapshotOf(c)
	return &snap, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, code string) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Remove(c, code); err != nil {
		return nil, err
	}
	snap := snapshotOf(c)
	return &snap, nil
}

// BindCustomer looks up a registered customer by phone. An empty phone
// clears the binding so the sale falls back to the general customer.
func (s *cartService) BindCustomer(ctx context.Context, cartID, phone string) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if phone == "" {
		c.Customer = nil
	} else {
		customer, err := s.customerRepo.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		c.Customer = customer
	}
	snap := snapshotOf(c)
	return &snap, nil
}

func (s *cartService) BindEmployee(ctx context.Context, cartID string, employeeID int) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	c.EmployeeID = &employeeID
	snap := snapshotOf(c)
	return &snap, nil
}

func (s *cartService) SetPayment(_ context.Context, cartID string, method domain.PaymentMethod, tendered decimal.Decimal) (*dto.CartSnapshot, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	// Compute first so an invalid method never sticks to the cart.
	if _, err := payment.Compute(c.Total(), method, tendered); err != nil {
		return nil, err
	}
	c.Payment = &cart.PaymentSelection{Method: method, Tendered: tendered}
	snap := snapshotOf(c)
	return &snap, nil
}

// snapshotOf renders the cart state for the presentation layer, deriving
// the payment result from the current total when a method is selected.
func snapshotOf(c *cart.Cart) dto.CartSnapshot {
	snap := dto.CartSnapshot{
		CartID:       c.ID,
		Items:        make([]dto.LineItemView, 0, len(c.Items)),
		Total:        c.Total().Round(2),
		CustomerName: domain.GeneralCustomerLabel,
		EmployeeID:   c.EmployeeID,
	}
	for _, li := range c.Items {
		snap.Items = append(snap.Items, dto.LineItemView{
			Code:      li.Code,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Subtotal:  li.Subtotal().Round(2),
		})
	}
	if c.Customer != nil {
		phone := c.Customer.Phone
		snap.CustomerPhone = &phone
		snap.CustomerName = c.Customer.Name
	}
	if c.Payment != nil {
		if result, err := payment.Compute(c.Total(), c.Payment.Method, c.Payment.Tendered); err == nil {
			snap.Payment = &result
		}
	}
	return snap
}
