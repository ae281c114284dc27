package invoicing

import (
	"testing"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() Data {
	return Data{
		TaxID:         "GOMA850101AB1",
		LegalName:     "Maria Gomez",
		FiscalAddress: "Av. Juarez 100, Centro",
		Email:         "maria@example.com",
	}
}

func TestNegotiateProducesInvoice(t *testing.T) {
	out, err := Negotiate(validData(), nil, false, "")
	require.NoError(t, err)

	require.NotNil(t, out.Invoice)
	assert.Equal(t, "GOMA850101AB1", out.Invoice.TaxID)
	assert.Equal(t, "Maria Gomez", out.Invoice.LegalName)
	assert.Nil(t, out.NewCustomer)
}

func TestNegotiateRejectsShortTaxID(t *testing.T) {
	d := validData()
	d.TaxID = "GOMA850101" // 10 chars, below the 12 minimum

	_, err := Negotiate(d, nil, false, "")
	assert.True(t, domain.IsKind(err, domain.KindInvoiceDataIncomplete))
}

func TestNegotiateRejectsMissingFields(t *testing.T) {
	for _, mutate := range []func(*Data){
		func(d *Data) { d.LegalName = "" },
		func(d *Data) { d.FiscalAddress = "" },
		func(d *Data) { d.Email = "" },
	} {
		d := validData()
		mutate(&d)
		_, err := Negotiate(d, nil, false, "")
		assert.True(t, domain.IsKind(err, domain.KindInvoiceDataIncomplete))
	}
}

func TestNegotiateRejectsMalformedEmail(t *testing.T) {
	d := validData()
	d.Email = "maria-at-example"

	_, err := Negotiate(d, nil, false, "")
	assert.True(t, domain.IsKind(err, domain.KindInvoiceDataIncomplete))
}

func TestNegotiateRegistersWalkInCustomer(t *testing.T) {
	out, err := Negotiate(validData(), nil, true, "5512345678")
	require.NoError(t, err)

	require.NotNil(t, out.NewCustomer)
	assert.Equal(t, "5512345678", out.NewCustomer.Phone)
	assert.Equal(t, "Maria Gomez", out.NewCustomer.Name)
	require.NotNil(t, out.NewCustomer.TaxID)
	assert.Equal(t, "GOMA850101AB1", *out.NewCustomer.TaxID)
	require.NotNil(t, out.NewCustomer.Email)
	assert.Equal(t, "maria@example.com", *out.NewCustomer.Email)
}

func TestNegotiateRejectsBadRegistrationPhone(t *testing.T) {
	for _, phone := range []string{"", "55123", "551234567890", "55-1234-567"} {
		_, err := Negotiate(validData(), nil, true, phone)
		assert.True(t, domain.IsKind(err, domain.KindInvalidPhoneFormat), "phone %q", phone)
	}
}

func TestNegotiateIgnoresRegistrationForBoundCustomer(t *testing.T) {
	bound := &model.Customer{Phone: "5598765432", Name: "Cliente Registrado"}

	out, err := Negotiate(validData(), bound, true, "not-a-phone")
	require.NoError(t, err)
	assert.Nil(t, out.NewCustomer)
}

func TestPrefillFromRegisteredCustomer(t *testing.T) {
	taxID := "PEPJ900202XYZ"
	email := "juan@example.com"
	c := &model.Customer{
		Phone:   "5598765432",
		Name:    "Juan Perez",
		Address: "Calle 5 de Mayo 22",
		TaxID:   &taxID,
		Email:   &email,
	}

	d := Prefill(c)
	assert.Equal(t, "Juan Perez", d.LegalName)
	assert.Equal(t, "Calle 5 de Mayo 22", d.FiscalAddress)
	assert.Equal(t, taxID, d.TaxID)
	assert.Equal(t, email, d.Email)
}

func TestPrefillWalkInIsBlank(t *testing.T) {
	assert.Equal(t, Data{}, Prefill(nil))
}
