package transactions

import "bank-ledger/domain"

// TransferDirection tags the two halves of a money transfer.
type TransferDirection string

const (
	TransferSent     TransferDirection = "sent"
	TransferReceived TransferDirection = "received"
)

// Fixed descriptions for variants whose wording never changes.
const (
	DescAccountCreated = "New account created"
	DescCardCreated    = "New card created"
	DescCardDeleted    = "The card has been destroyed"
	DescNoFunds        = "Insufficient funds"
	DescCardFrozen     = "The card is frozen"
	DescCardWillFreeze = "You have reached the minimum amount of funds, the card will be frozen"
)

type AccountCreated struct {
	Base
	Description string
}

func NewAccountCreated(timestamp int) AccountCreated {
	return AccountCreated{
		Base:        NewBase(timestamp, AccountCreatedTag),
		Description: DescAccountCreated,
	}
}

// Transfer records one side of a money transfer. The sender's record carries
// the original amount in the sender's currency; the receiver's record
// carries the converted amount in the receiver's currency.
type Transfer struct {
	Base
	Description  string
	SenderIBAN   string
	ReceiverIBAN string
	Amount       domain.Money
	Direction    TransferDirection
}

func NewTransfer(timestamp int, description, senderIBAN, receiverIBAN string,
	amount domain.Money, direction TransferDirection) Transfer {
	return Transfer{
		Base:         NewBase(timestamp, TransferTag),
		Description:  description,
		SenderIBAN:   senderIBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       amount,
		Direction:    direction,
	}
}

type NoFunds struct {
	Base
	Description string
}

func NewNoFunds(timestamp int) NoFunds {
	return NoFunds{
		Base:        NewBase(timestamp, NoFundsTag),
		Description: DescNoFunds,
	}
}

type CardCreated struct {
	Base
	Account     string
	Card        string
	CardHolder  string
	Description string
}

func NewCardCreated(timestamp int, account, card, cardHolder string) CardCreated {
	return CardCreated{
		Base:        NewBase(timestamp, CardCreatedTag),
		Account:     account,
		Card:        card,
		CardHolder:  cardHolder,
		Description: DescCardCreated,
	}
}

type CardDeleted struct {
	Base
	Account     string
	Card        string
	CardHolder  string
	Description string
}

func NewCardDeleted(timestamp int, account, card, cardHolder string) CardDeleted {
	return CardDeleted{
		Base:        NewBase(timestamp, CardDeletedTag),
		Account:     account,
		Card:        card,
		CardHolder:  cardHolder,
		Description: DescCardDeleted,
	}
}

// OnlinePayment records a successful card payment. The amount is in the
// paying account's currency, after any conversion.
type OnlinePayment struct {
	Base
	Description string
	Amount      domain.Money
	Commerciant string
}

func NewOnlinePayment(timestamp int, description string, amount domain.Money, commerciant string) OnlinePayment {
	return OnlinePayment{
		Base:        NewBase(timestamp, OnlinePaymentTag),
		Description: description,
		Amount:      amount,
		Commerciant: commerciant,
	}
}

// CardStatus records a card-state business outcome: a rejected payment on a
// frozen card, or a freeze triggered by the minimum-balance check.
type CardStatus struct {
	Base
	Description string
}

func NewCardStatus(timestamp int, description string) CardStatus {
	return CardStatus{
		Base:        NewBase(timestamp, CardStatusTag),
		Description: description,
	}
}

// SplitPayment records one user's share of an equal split. Share is the
// uniform per-account amount in the original payment currency; the full
// involved-IBAN list is carried on every record.
type SplitPayment struct {
	Base
	Description      string
	Share            domain.Money
	InvolvedAccounts []string
}

func NewSplitPayment(timestamp int, description string, share domain.Money, involvedAccounts []string) SplitPayment {
	accounts := make([]string, len(involvedAccounts))
	copy(accounts, involvedAccounts)
	return SplitPayment{
		Base:             NewBase(timestamp, SplitPaymentTag),
		Description:      description,
		Share:            share,
		InvolvedAccounts: accounts,
	}
}
