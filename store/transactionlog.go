// Package store holds the append-only transaction log backing each user's
// audit trail.
package store

import (
	"strings"
	"sync"

	"bank-ledger/transactions"
)

// TransactionLog is the per-user audit trail: an ordered, append-only
// sequence of transaction records keyed by user email. Records are never
// mutated or deleted; insertion order is chronological order because
// timestamps increase monotonically across the batch.
type TransactionLog interface {
	Append(email string, tx transactions.Transaction)

	// ForUser returns a copy of the user's log in append order. Unknown
	// users yield an empty log.
	ForUser(email string) []transactions.Transaction
}

type InMemoryTransactionLog struct {
	sync.RWMutex
	logs map[string][]transactions.Transaction
}

func NewInMemoryTransactionLog() *InMemoryTransactionLog {
	return &InMemoryTransactionLog{
		logs: make(map[string][]transactions.Transaction),
	}
}

// key folds an email the same way user lookup does, so logs survive casing
// differences between commands.
func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *InMemoryTransactionLog) Append(email string, tx transactions.Transaction) {
	if tx == nil {
		return
	}
	s.Lock()
	defer s.Unlock()
	k := key(email)
	s.logs[k] = append(s.logs[k], tx)
}

func (s *InMemoryTransactionLog) ForUser(email string) []transactions.Transaction {
	s.RLock()
	defer s.RUnlock()
	log, ok := s.logs[key(email)]
	if !ok {
		return []transactions.Transaction{}
	}
	out := make([]transactions.Transaction, len(log))
	copy(out, log)
	return out
}
