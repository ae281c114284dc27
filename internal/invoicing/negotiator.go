// Package invoicing is the optional invoice-capture sub-flow run between
// payment and commit. It validates the fiscal fields and, for walk-in
// customers, optionally turns the captured data into a new customer
// registration.
package invoicing

import (
	"strings"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"
)

// Data are the four mandatory fiscal fields captured from the operator.
type Data struct {
	TaxID         string `json:"tax_id"`
	LegalName     string `json:"legal_name"`
	FiscalAddress string `json:"fiscal_address"`
	Email         string `json:"email"`
}

// Outcome is what the negotiator hands the committer: the invoice payload
// (sale id assigned at commit) and, when requested, a customer row to
// persist inside the same unit of work.
type Outcome struct {
	Invoice     *model.Invoice
	NewCustomer *model.Customer
}

// Prefill seeds the dialog fields from a registered customer. Walk-in
// customers start blank.
func Prefill(c *model.Customer) Data {
	if c == nil {
		return Data{}
	}
	d := Data{LegalName: c.Name, FiscalAddress: c.Address}
	if c.TaxID != nil {
		d.TaxID = *c.TaxID
	}
	if c.Email != nil {
		d.Email = *c.Email
	}
	return d
}

// Negotiate validates the captured data and produces the commit payloads.
// registerPhone is the 10-digit phone for the optional new-customer
// registration; it is only honored when the sale has no bound customer.
func Negotiate(data Data, bound *model.Customer, registerCustomer bool, registerPhone string) (*Outcome, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	out := &Outcome{
		Invoice: &model.Invoice{
			TaxID:         data.TaxID,
			LegalName:     data.LegalName,
			FiscalAddress: data.FiscalAddress,
			Email:         data.Email,
		},
	}

	if registerCustomer && bound == nil {
		if !validPhone(registerPhone) {
			return nil, domain.E(domain.KindInvalidPhoneFormat, "phone must be exactly 10 digits")
		}
		taxID := data.TaxID
		email := data.Email
		out.NewCustomer = &model.Customer{
			Phone:   registerPhone,
			Name:    data.LegalName,
			Address: data.FiscalAddress,
			TaxID:   &taxID,
			Email:   &email,
		}
	}
	return out, nil
}

func validate(d Data) error {
	if len(d.TaxID) < 12 ||
		d.LegalName == "" ||
		d.FiscalAddress == "" ||
		d.Email == "" {
		return domain.E(domain.KindInvoiceDataIncomplete, "all invoice fields are mandatory and tax id needs at least 12 characters")
	}
	if !strings.Contains(d.Email, "@") || !strings.Contains(d.Email, ".") {
		return domain.E(domain.KindInvoiceDataIncomplete, "invoice email is not valid")
	}
	return nil
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
