package shared

import "strings"

// Currency is a currency code taken verbatim from the batch input
// (e.g. "RON", "usd"). Codes compare case-insensitively everywhere.
type Currency string

func (c Currency) Equal(other Currency) bool {
	return strings.EqualFold(string(c), string(other))
}

func (c Currency) String() string {
	return string(c)
}

// CardStatus is the lifecycle state of a payment card.
type CardStatus string

const (
	CardActive CardStatus = "active"
	CardFrozen CardStatus = "frozen"
)
