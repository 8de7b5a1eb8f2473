package domain

import "github.com/shopspring/decimal"

// Commerciant aggregates the online payments received by one merchant,
// broken down by paying account IBAN. Created lazily on first payment.
type Commerciant struct {
	Name           string
	Total          decimal.Decimal
	PaymentsByIBAN map[string]decimal.Decimal
}

func NewCommerciant(name string) *Commerciant {
	return &Commerciant{
		Name:           name,
		Total:          decimal.Zero,
		PaymentsByIBAN: make(map[string]decimal.Decimal),
	}
}

// AddPayment records a payment made from the given account.
func (c *Commerciant) AddPayment(iban string, amount decimal.Decimal) {
	c.PaymentsByIBAN[iban] = c.PaymentsByIBAN[iban].Add(amount)
	c.Total = c.Total.Add(amount)
}
