package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-ledger/shared"
)

// AccountType distinguishes the two account flavours accepted on input.
type AccountType string

const (
	AccountClassic AccountType = "classic"
	AccountSavings AccountType = "savings"
)

// Account is owned by exactly one user. The IBAN is assigned at creation and
// never changes; the balance is mutated only through Credit and Debit so the
// non-negative invariant is enforced in one place.
type Account struct {
	IBAN       string
	Currency   shared.Currency
	Type       AccountType
	Alias      string
	MinBalance decimal.Decimal
	Cards      []*Card

	balance decimal.Decimal
}

func NewAccount(iban string, currency shared.Currency, accountType AccountType) *Account {
	if accountType == "" {
		accountType = AccountClassic
	}
	return &Account{
		IBAN:     iban,
		Currency: currency,
		Type:     accountType,
		Cards:    make([]*Card, 0),
		balance:  decimal.Zero,
	}
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// CanPay reports whether a debit of amount would keep the balance
// non-negative.
func (a *Account) CanPay(amount decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(amount)
}

// Credit adds amount to the balance. Negative credits are rejected.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError("credit amount cannot be negative: %s", amount.String())
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit removes amount from the balance, refusing any debit that would take
// it negative. Handlers check CanPay first and emit a NO_FUNDS transaction
// instead of ever seeing this error in a well-formed batch.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError("debit amount cannot be negative: %s", amount.String())
	}
	next := a.balance.Sub(amount)
	if next.IsNegative() {
		return fmt.Errorf("debit of %s would overdraw account %s (balance %s)",
			amount.String(), a.IBAN, a.balance.String())
	}
	a.balance = next
	return nil
}

// Matches reports whether identifier is this account's IBAN (exact) or its
// alias (case-insensitive).
func (a *Account) Matches(identifier string) bool {
	if a.IBAN == identifier {
		return true
	}
	return a.Alias != "" && strings.EqualFold(a.Alias, identifier)
}

func (a *Account) AddCard(card *Card) {
	if card != nil {
		a.Cards = append(a.Cards, card)
	}
}

// FindCard returns the first card with the given number, in creation order.
func (a *Account) FindCard(number string) *Card {
	for _, card := range a.Cards {
		if card.Number == number {
			return card
		}
	}
	return nil
}

// RemoveCard deletes the card with the given number, keeping the order of
// the remaining cards.
func (a *Account) RemoveCard(number string) error {
	for i, card := range a.Cards {
		if card.Number == number {
			a.Cards = append(a.Cards[:i], a.Cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s on account %s", ErrCardNotFound, number, a.IBAN)
}
