package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is the in-memory state for one batch run: the ordered user list and
// the merchant aggregates. It is constructed once per run and handed to the
// command processor explicitly; there is no ambient shared state.
type Ledger struct {
	Users        []*User
	commerciants map[string]*Commerciant
}

func NewLedger() *Ledger {
	return &Ledger{
		Users:        make([]*User, 0),
		commerciants: make(map[string]*Commerciant),
	}
}

func (l *Ledger) AddUser(user *User) {
	if user != nil {
		l.Users = append(l.Users, user)
	}
}

// FindUser resolves an email to a user, first match in input order.
func (l *Ledger) FindUser(email string) (*User, error) {
	for _, user := range l.Users {
		if user.EmailMatches(email) {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
}

// FindAccount scans every user's accounts for an IBAN or alias match and
// returns the owner alongside the account. Scan order is user-list order,
// then account-list order.
func (l *Ledger) FindAccount(identifier string) (*User, *Account, error) {
	for _, user := range l.Users {
		if account := user.FindAccount(identifier); account != nil {
			return user, account, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, identifier)
}

// FindCard locates a card by number anywhere in the ledger, returning its
// holder and account. Scan order is user, then account, then card.
func (l *Ledger) FindCard(number string) (*User, *Account, *Card, error) {
	for _, user := range l.Users {
		for _, account := range user.Accounts {
			if card := account.FindCard(number); card != nil {
				return user, account, card, nil
			}
		}
	}
	return nil, nil, nil, fmt.Errorf("%w: %s", ErrCardNotFound, number)
}

// RecordPayment upserts the merchant aggregate for name and records a
// payment from the given account.
func (l *Ledger) RecordPayment(name, iban string, amount decimal.Decimal) *Commerciant {
	commerciant, ok := l.commerciants[name]
	if !ok {
		commerciant = NewCommerciant(name)
		l.commerciants[name] = commerciant
	}
	commerciant.AddPayment(iban, amount)
	return commerciant
}

// Commerciant returns the aggregate for name, or nil when the merchant has
// never been paid.
func (l *Ledger) Commerciant(name string) *Commerciant {
	return l.commerciants[name]
}
