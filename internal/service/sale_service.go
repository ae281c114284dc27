package service

import (
	"context"
	"fmt"
	"time"

	"bodegapos/internal/cart"
	"bodegapos/internal/domain"
	"bodegapos/internal/dto"
	"bodegapos/internal/invoicing"
	"bodegapos/internal/model"
	"bodegapos/internal/payment"
	"bodegapos/internal/repository"
	"bodegapos/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	// Checkout commits the cart as one atomic unit of work and returns
	// the receipt. On any failure the cart is left intact for retry.
	Checkout(ctx context.Context, cartID string, req dto.CheckoutRequest) (*dto.Receipt, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	GetSale(ctx context.Context, id int) (*dto.SaleDetail, error)
}

type saleService struct {
	manager      *cart.Manager
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	dispatcher   *worker.Dispatcher
}

func NewSaleService(
	manager *cart.Manager,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		manager:      manager,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or
// calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Checkout preconditions run in order, short-circuiting on the first
// failure: non-empty cart, resolvable employee, selected payment method,
// sufficient tender. The durable write then happens in one transaction:
// optional new-customer insert, sale id allocation (max+1), sale header +
// items + invoice, and one guarded stock decrement per line. Stock is
// re-checked here, not trusted from add-time, because it can change
// between add and pay.
func (s *saleService) Checkout(ctx context.Context, cartID string, req dto.CheckoutRequest) (*dto.Receipt, error) {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, domain.E(domain.KindEmptyCart, "cart has no line items")
	}
	if c.EmployeeID == nil {
		return nil, domain.E(domain.KindEmployeeRequired, "employee id is required")
	}
	employee, err := s.employeeRepo.FindByID(ctx, *c.EmployeeID)
	if err != nil {
		return nil, err
	}
	if c.Payment == nil {
		return nil, domain.E(domain.KindPaymentMethodNotSelected, "no payment method selected")
	}

	total := c.Total().Round(2)
	payResult, err := payment.Compute(total, c.Payment.Method, c.Payment.Tendered)
	if err != nil {
		return nil, err
	}
	if !payResult.Committable {
		return nil, domain.E(domain.KindPaymentInsufficient,
			"tendered %s is short %s of the %s total",
			payResult.Tendered.StringFixed(2), payResult.Shortfall.StringFixed(2), total.StringFixed(2))
	}

	// Optional invoice sub-flow, validated before any durable write.
	var outcome *invoicing.Outcome
	if req.Invoice != nil {
		data := invoicing.Data{
			TaxID:         req.Invoice.TaxID,
			LegalName:     req.Invoice.LegalName,
			FiscalAddress: req.Invoice.FiscalAddress,
			Email:         req.Invoice.Email,
		}
		outcome, err = invoicing.Negotiate(data, c.Customer, req.Invoice.RegisterCustomer, req.Invoice.CustomerPhone)
		if err != nil {
			return nil, err
		}
	}

	customerPhone := domain.GeneralCustomerPhone
	customerLabel := domain.GeneralCustomerLabel
	if c.Customer != nil {
		customerPhone = c.Customer.Phone
		customerLabel = c.Customer.Name
	} else if outcome != nil && outcome.NewCustomer != nil {
		customerPhone = outcome.NewCustomer.Phone
		customerLabel = outcome.NewCustomer.Name
	}

	sale := model.Sale{
		Date:          time.Now(),
		Total:         total,
		CustomerPhone: customerPhone,
		EmployeeID:    *c.EmployeeID,
		PaymentMethod: string(c.Payment.Method),
	}
	for _, li := range c.Items {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductCode: li.Code,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}

	txErr := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		if outcome != nil && outcome.NewCustomer != nil {
			if err := s.customerRepo.CreateTx(tx, outcome.NewCustomer); err != nil {
				return err
			}
		}

		id, err := s.saleRepo.NextSaleID(ctx, tx)
		if err != nil {
			return err
		}
		sale.ID = id
		if outcome != nil {
			inv := *outcome.Invoice
			inv.SaleID = id
			sale.Invoice = &inv
		}

		if err := s.saleRepo.CreateTx(ctx, tx, &sale); err != nil {
			return err
		}

		for _, li := range c.Items {
			if err := s.productRepo.DecrementStockTx(tx, li.Code, li.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// Business-rule failures (e.g. the stock guard) keep their kind;
		// anything else is a store failure surfaced as CommitFailed.
		if domain.KindOf(txErr) != "" {
			return nil, txErr
		}
		return nil, domain.Wrap(domain.KindCommitFailed, txErr, "sale could not be committed")
	}

	receipt := s.buildReceipt(&sale, c, customerLabel, employee.Name, payResult)

	// Best-effort receipt email for invoiced sales — never blocks commit.
	if s.dispatcher != nil && sale.Invoice != nil {
		_ = s.dispatcher.EnqueueReceiptEmail(ctx, worker.ReceiptEmailPayload{
			ToEmail: sale.Invoice.Email,
			Subject: fmt.Sprintf("Receipt for sale #%d", sale.ID),
			Body:    renderReceiptText(receipt),
		})
	}

	c.Reset()
	return receipt, nil
}

func (s *saleService) buildReceipt(sale *model.Sale, c *cart.Cart, customerLabel, employeeName string, payResult payment.Result) *dto.Receipt {
	r := &dto.Receipt{
		SaleID:        sale.ID,
		Date:          sale.Date.Format("2006-01-02 15:04"),
		CustomerLabel: customerLabel,
		EmployeeName:  employeeName,
		PaymentMethod: sale.PaymentMethod,
		Total:         sale.Total,
	}
	if payResult.Method == domain.PaymentCash {
		tendered := payResult.Tendered
		change := payResult.Change
		r.Tendered = &tendered
		r.Change = &change
	}
	if sale.Invoice != nil {
		r.Invoice = &dto.InvoiceView{
			TaxID:         sale.Invoice.TaxID,
			LegalName:     sale.Invoice.LegalName,
			FiscalAddress: sale.Invoice.FiscalAddress,
			Email:         sale.Invoice.Email,
		}
	}
	for _, li := range c.Items {
		r.Lines = append(r.Lines, dto.LineItemView{
			Code:      li.Code,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Subtotal:  li.Subtotal().Round(2),
		})
	}
	return r
}

// renderReceiptText formats the plain-text body of the receipt email.
func renderReceiptText(r *dto.Receipt) string {
	body := fmt.Sprintf("SALE #%d\nDate: %s\nCustomer: %s\nEmployee: %s\nPayment: %s\n",
		r.SaleID, r.Date, r.CustomerLabel, r.EmployeeName, r.PaymentMethod)
	body += "--------------------------------\n"
	for _, l := range r.Lines {
		body += fmt.Sprintf("%-20.20s %3d x $%s = $%s\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal.StringFixed(2))
	}
	body += "--------------------------------\n"
	body += fmt.Sprintf("TOTAL: $%s\n", r.Total.StringFixed(2))
	body += "Thank you for your purchase!"
	return body
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	var day time.Time
	if filter.Date != "" {
		parsed, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, domain.E(domain.KindValidationFailed, "date must be YYYY-MM-DD")
		}
		day = parsed
	}
	sales, err := s.saleRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{Data: make([]dto.SaleListItem, 0, len(sales))}
	for _, sale := range sales {
		employeeName := ""
		if sale.Employee != nil {
			employeeName = sale.Employee.Name
		}
		resp.Data = append(resp.Data, dto.SaleListItem{
			ID:            sale.ID,
			Date:          sale.Date.Format("2006-01-02 15:04"),
			Total:         sale.Total,
			CustomerPhone: sale.CustomerPhone,
			EmployeeName:  employeeName,
			PaymentMethod: sale.PaymentMethod,
			Invoiced:      sale.Invoice != nil,
		})
	}
	return resp, nil
}

func (s *saleService) GetSale(ctx context.Context, id int) (*dto.SaleDetail, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &dto.SaleDetail{
		ID:            sale.ID,
		Date:          sale.Date.Format("2006-01-02 15:04"),
		Total:         sale.Total,
		CustomerPhone: sale.CustomerPhone,
		PaymentMethod: sale.PaymentMethod,
	}
	if sale.Employee != nil {
		detail.EmployeeName = sale.Employee.Name
	}
	for _, item := range sale.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		detail.Lines = append(detail.Lines, dto.LineItemView{
			Code:      item.ProductCode,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		})
	}
	if sale.Invoice != nil {
		detail.Invoice = &dto.InvoiceView{
			TaxID:         sale.Invoice.TaxID,
			LegalName:     sale.Invoice.LegalName,
			FiscalAddress: sale.Invoice.FiscalAddress,
			Email:         sale.Invoice.Email,
		}
	}
	return detail, nil
}
