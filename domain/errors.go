package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrUserNotFound    = NewDomainError("user not found")
	ErrAccountNotFound = NewDomainError("account not found")
	ErrCardNotFound    = NewDomainError("card not found")
	ErrBalanceNotZero  = NewDomainError("account balance is not zero")
	ErrDuplicateAlias  = NewDomainError("alias already in use for this user")
)
