package domain

// PaymentMethod is the tender type recorded on a sale.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// Valid reports whether m is one of the known methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// GeneralCustomerPhone is the sentinel phone recorded on sales with no
// bound customer. It is never persisted as a customers row.
const GeneralCustomerPhone = "0000000000"

// GeneralCustomerLabel is how the walk-in customer shows up on receipts.
const GeneralCustomerLabel = "General"
