// Package transactions defines the closed set of ledger transaction
// variants. Each variant is its own struct with a strongly-typed
// constructor; the Tag discriminator exists for rendering, not for
// construction, so a malformed transaction cannot be built at runtime.
package transactions

import "github.com/google/uuid"

type Tag string

const (
	AccountCreatedTag Tag = "ACCT_CREATED"
	TransferTag       Tag = "TRANSFER"
	NoFundsTag        Tag = "NO_FUNDS"
	CardCreatedTag    Tag = "CARD_CREATED"
	CardDeletedTag    Tag = "CARD_DELETED"
	OnlinePaymentTag  Tag = "ONLN_PAYMENT"
	CardStatusTag     Tag = "CARD_STAT"
	SplitPaymentTag   Tag = "SPLIT_PAY"
)

// Base carries the fields every transaction shares. Timestamp is the batch
// command counter, not wall-clock time.
type Base struct {
	ID        uuid.UUID
	Timestamp int
	Tag       Tag
}

// Transaction is the closed variant interface. Records are immutable once
// created and live in exactly one user's log (transfers are duplicated into
// both parties' logs as independent records).
type Transaction interface {
	GetBase() Base
}

func (b Base) GetBase() Base {
	return b
}

func NewBase(timestamp int, tag Tag) Base {
	return Base{
		ID:        uuid.New(),
		Timestamp: timestamp,
		Tag:       tag,
	}
}
