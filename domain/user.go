package domain

import (
	"fmt"
	"strings"
)

// User owns an ordered list of accounts. Emails are the unique user key and
// compare trimmed and case-insensitively, matching how they arrive on input.
type User struct {
	FirstName string
	LastName  string
	Email     string
	Accounts  []*Account
}

func NewUser(firstName, lastName, email string) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Accounts:  make([]*Account, 0),
	}
}

// FullName is the card-holder form of the user's name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) EmailMatches(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

func (u *User) AddAccount(account *Account) {
	if account != nil {
		u.Accounts = append(u.Accounts, account)
	}
}

// FindAccount resolves an IBAN or alias to one of the user's accounts,
// first match in creation order.
func (u *User) FindAccount(identifier string) *Account {
	for _, account := range u.Accounts {
		if account.Matches(identifier) {
			return account
		}
	}
	return nil
}

// SetAlias attaches an alias to the account with the given IBAN. Aliases are
// unique within the owning user.
func (u *User) SetAlias(iban, alias string) error {
	for _, account := range u.Accounts {
		if account.IBAN != iban && account.Alias != "" && strings.EqualFold(account.Alias, alias) {
			return fmt.Errorf("%w: %q", ErrDuplicateAlias, alias)
		}
	}
	account := u.FindAccount(iban)
	if account == nil {
		return fmt.Errorf("%w: %s for user %s", ErrAccountNotFound, iban, u.Email)
	}
	account.Alias = alias
	return nil
}

// RemoveAccount deletes the account with the given IBAN. Deletion is only
// allowed once the balance is exactly zero.
func (u *User) RemoveAccount(iban string) error {
	for i, account := range u.Accounts {
		if account.IBAN != iban {
			continue
		}
		if !account.Balance().IsZero() {
			return fmt.Errorf("%w: %s holds %s %s", ErrBalanceNotZero,
				iban, account.Balance().String(), account.Currency)
		}
		u.Accounts = append(u.Accounts[:i], u.Accounts[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s for user %s", ErrAccountNotFound, iban, u.Email)
}
