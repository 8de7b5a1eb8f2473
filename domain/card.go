package domain

import "bank-ledger/shared"

// Card belongs to exactly one account. A frozen card rejects payment
// attempts without touching the account balance.
type Card struct {
	Number string
	Status shared.CardStatus
}

func NewCard(number string) *Card {
	return &Card{Number: number, Status: shared.CardActive}
}

func (c *Card) Frozen() bool {
	return c.Status == shared.CardFrozen
}

func (c *Card) Freeze() {
	c.Status = shared.CardFrozen
}
