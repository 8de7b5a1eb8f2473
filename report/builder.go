// Package report renders ledger state and transaction logs into the ordered
// JSON audit trail emitted at the end of a batch run.
package report

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"bank-ledger/domain"
	"bank-ledger/shared"
	"bank-ledger/transactions"
)

func init() {
	// Amounts and balances are emitted as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Entry is one output record: the originating command, its payload, and the
// batch timestamp.
type Entry struct {
	Command   string `json:"command"`
	Output    any    `json:"output"`
	Timestamp int    `json:"timestamp"`
}

// Builder accumulates output records in command order.
type Builder struct {
	entries []Entry
}

func NewBuilder() *Builder {
	return &Builder{entries: make([]Entry, 0)}
}

// Entries returns the records appended so far, in order.
func (b *Builder) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// MarshalJSON renders the full audit trail as a JSON array.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.entries)
}

// Render returns the indented JSON document for the whole run.
func (b *Builder) Render() ([]byte, error) {
	return json.MarshalIndent(b.entries, "", "  ")
}

func (b *Builder) add(command string, output any, timestamp int) {
	b.entries = append(b.entries, Entry{Command: command, Output: output, Timestamp: timestamp})
}

// --- flat projections ---

type cardView struct {
	CardNumber string            `json:"cardNumber"`
	Status     shared.CardStatus `json:"status"`
}

type accountView struct {
	IBAN     string             `json:"IBAN"`
	Balance  decimal.Decimal    `json:"balance"`
	Currency shared.Currency    `json:"currency"`
	Type     domain.AccountType `json:"type"`
	Cards    []cardView         `json:"cards"`
}

type userView struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Accounts  []accountView `json:"accounts"`
}

type descriptionView struct {
	Description string `json:"description"`
	Timestamp   int    `json:"timestamp"`
}

type successView struct {
	Success   string `json:"success"`
	Timestamp int    `json:"timestamp"`
}

type errorView struct {
	Error     string `json:"error"`
	Timestamp int    `json:"timestamp"`
}

// --- per-tag transaction projections ---

type accountCreatedView struct {
	Timestamp   int    `json:"timestamp"`
	Description string `json:"description"`
}

type transferView struct {
	Timestamp    int    `json:"timestamp"`
	Description  string `json:"description"`
	SenderIBAN   string `json:"senderIBAN"`
	ReceiverIBAN string `json:"receiverIBAN"`
	Amount       string `json:"amount"`
	TransferType string `json:"transferType"`
}

type cardChangeView struct {
	Account     string `json:"account"`
	Card        string `json:"card"`
	CardHolder  string `json:"cardHolder"`
	Description string `json:"description"`
	Timestamp   int    `json:"timestamp"`
}

type onlinePaymentView struct {
	Amount      decimal.Decimal `json:"amount"`
	Commerciant string          `json:"commerciant"`
	Description string          `json:"description"`
	Timestamp   int             `json:"timestamp"`
}

type splitPaymentView struct {
	Timestamp        int             `json:"timestamp"`
	Description      string          `json:"description"`
	Currency         shared.Currency `json:"currency"`
	Amount           decimal.Decimal `json:"amount"`
	InvolvedAccounts []string        `json:"involvedAccounts"`
}

// project maps one transaction variant to its flat output shape. The switch
// covers the whole closed set; an unknown variant is a programming error and
// yields nil so it is dropped rather than rendered half-formed.
func project(tx transactions.Transaction) any {
	switch t := tx.(type) {
	case transactions.AccountCreated:
		return accountCreatedView{Timestamp: t.Timestamp, Description: t.Description}
	case transactions.Transfer:
		return transferView{
			Timestamp:    t.Timestamp,
			Description:  t.Description,
			SenderIBAN:   t.SenderIBAN,
			ReceiverIBAN: t.ReceiverIBAN,
			Amount:       t.Amount.Amount.String(),
			TransferType: string(t.Direction),
		}
	case transactions.NoFunds:
		return descriptionView{Description: t.Description, Timestamp: t.Timestamp}
	case transactions.CardCreated:
		return cardChangeView{
			Account:     t.Account,
			Card:        t.Card,
			CardHolder:  t.CardHolder,
			Description: t.Description,
			Timestamp:   t.Timestamp,
		}
	case transactions.CardDeleted:
		return cardChangeView{
			Account:     t.Account,
			Card:        t.Card,
			CardHolder:  t.CardHolder,
			Description: t.Description,
			Timestamp:   t.Timestamp,
		}
	case transactions.OnlinePayment:
		return onlinePaymentView{
			Amount:      t.Amount.Amount,
			Commerciant: t.Commerciant,
			Description: t.Description,
			Timestamp:   t.Timestamp,
		}
	case transactions.CardStatus:
		return descriptionView{Description: t.Description, Timestamp: t.Timestamp}
	case transactions.SplitPayment:
		return splitPaymentView{
			Timestamp:        t.Timestamp,
			Description:      t.Description,
			Currency:         t.Share.Currency,
			Amount:           t.Share.Amount,
			InvolvedAccounts: t.InvolvedAccounts,
		}
	default:
		return nil
	}
}

// PrintUsers appends the full user listing with accounts and cards.
func (b *Builder) PrintUsers(users []*domain.User, timestamp int) {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		uv := userView{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Accounts:  make([]accountView, 0, len(user.Accounts)),
		}
		for _, account := range user.Accounts {
			av := accountView{
				IBAN:     account.IBAN,
				Balance:  account.Balance(),
				Currency: account.Currency,
				Type:     account.Type,
				Cards:    make([]cardView, 0, len(account.Cards)),
			}
			for _, card := range account.Cards {
				av.Cards = append(av.Cards, cardView{CardNumber: card.Number, Status: card.Status})
			}
			uv.Accounts = append(uv.Accounts, av)
		}
		views = append(views, uv)
	}
	b.add("printUsers", views, timestamp)
}

// PrintTransactions appends a user's full log, each record projected per tag.
func (b *Builder) PrintTransactions(log []transactions.Transaction, timestamp int) {
	views := make([]any, 0, len(log))
	for _, tx := range log {
		if view := project(tx); view != nil {
			views = append(views, view)
		}
	}
	b.add("printTransactions", views, timestamp)
}

// DeleteAccountSuccess acknowledges a completed account deletion.
func (b *Builder) DeleteAccountSuccess(timestamp int) {
	b.add("deleteAccount", successView{Success: "Account deleted", Timestamp: timestamp}, timestamp)
}

// DeleteAccountError reports a deletion refused because funds remain.
func (b *Builder) DeleteAccountError(timestamp int) {
	b.add("deleteAccount", errorView{
		Error:     "Account couldn't be deleted - there are funds remaining",
		Timestamp: timestamp,
	}, timestamp)
}

// PayOnlineError reports a card-not-found failure on the error channel,
// distinct from any user's transaction log.
func (b *Builder) PayOnlineError(description string, timestamp int) {
	b.add("payOnline", descriptionView{Description: description, Timestamp: timestamp}, timestamp)
}

// CheckCardStatusError reports a status check against an unknown card.
func (b *Builder) CheckCardStatusError(timestamp int) {
	b.add("checkCardStatus", descriptionView{Description: "Card not found", Timestamp: timestamp}, timestamp)
}

type reportView struct {
	IBAN         string          `json:"IBAN"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     shared.Currency `json:"currency"`
	Transactions []any           `json:"transactions"`
}

// Report appends an account statement: identity, balance and the owner's
// transactions within the requested window. Only account-level activity is
// included (account creation, transfers, card creation, online payments).
func (b *Builder) Report(account *domain.Account, log []transactions.Transaction, timestamp int) {
	views := make([]any, 0, len(log))
	for _, tx := range log {
		switch tx.GetBase().Tag {
		case transactions.AccountCreatedTag, transactions.TransferTag,
			transactions.CardCreatedTag, transactions.OnlinePaymentTag:
			if view := project(tx); view != nil {
				views = append(views, view)
			}
		}
	}
	b.add("report", reportView{
		IBAN:         account.IBAN,
		Balance:      account.Balance(),
		Currency:     account.Currency,
		Transactions: views,
	}, timestamp)
}
