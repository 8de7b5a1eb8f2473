package app

import (
	"github.com/shopspring/decimal"

	"bank-ledger/domain"
	"bank-ledger/shared"
)

// --- Batch input model ---
// A batch is one run's worth of input: the user roster, the exchange rate
// list and the ordered command sequence. Field names follow the input
// document format. Per-command timestamps are NOT part of the input; the
// processor assigns them from its own counter.

type Batch struct {
	Users         []UserInput     `json:"users"`
	ExchangeRates []ExchangeInput `json:"exchangeRates"`
	Commands      []CommandInput  `json:"commands"`
}

type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ExchangeInput struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// CommandInput is the raw tagged record for one command. Only the fields
// relevant to the named command are populated; decoding into the typed
// command structs below happens in the processor's dispatch.
type CommandInput struct {
	Command        string          `json:"command"`
	Email          string          `json:"email,omitempty"`
	Account        string          `json:"account,omitempty"`
	Receiver       string          `json:"receiver,omitempty"`
	Alias          string          `json:"alias,omitempty"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	MinBalance     decimal.Decimal `json:"minBalance,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Description    string          `json:"description,omitempty"`
	CardNumber     string          `json:"cardNumber,omitempty"`
	Commerciant    string          `json:"commerciant,omitempty"`
	AccountType    string          `json:"accountType,omitempty"`
	Accounts       []string        `json:"accounts,omitempty"`
	StartTimestamp int             `json:"startTimestamp,omitempty"`
	EndTimestamp   int             `json:"endTimestamp,omitempty"`
}

// --- Typed command structs ---
// One struct per operation, strongly typed and positionally unambiguous.
// Timestamp is always the processor-assigned batch counter.

type PrintUsersCommand struct {
	Timestamp int
}

type AddAccountCommand struct {
	Email     string
	Currency  shared.Currency
	Type      domain.AccountType
	Timestamp int
}

type CreateCardCommand struct {
	Email     string
	Account   string
	Timestamp int
}

type AddFundsCommand struct {
	Account   string
	Amount    decimal.Decimal
	Timestamp int
}

type DeleteAccountCommand struct {
	Email     string
	Account   string
	Timestamp int
}

type DeleteCardCommand struct {
	Email      string
	CardNumber string
	Timestamp  int
}

type SetMinimumBalanceCommand struct {
	Account   string
	Amount    decimal.Decimal
	Timestamp int
}

type SetAliasCommand struct {
	Email     string
	Account   string
	Alias     string
	Timestamp int
}

type PayOnlineCommand struct {
	Email       string
	CardNumber  string
	Payment     domain.Money
	Description string
	Commerciant string
	Timestamp   int
}

type SendMoneyCommand struct {
	Email       string
	Account     string
	Receiver    string
	Amount      decimal.Decimal
	Description string
	Timestamp   int
}

type SplitPaymentCommand struct {
	Accounts  []string
	Total     domain.Money
	Timestamp int
}

type CheckCardStatusCommand struct {
	CardNumber string
	Timestamp  int
}

type PrintTransactionsCommand struct {
	Email     string
	Timestamp int
}

type ReportCommand struct {
	Account        string
	StartTimestamp int
	EndTimestamp   int
	Timestamp      int
}
