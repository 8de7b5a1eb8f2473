package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"bank-ledger/domain"
	"bank-ledger/exchange"
	"bank-ledger/report"
	"bank-ledger/shared"
	"bank-ledger/store"
	"bank-ledger/transactions"
)

// DefaultSeed feeds the IBAN/card-number generator so batch runs are
// reproducible.
const DefaultSeed = 1

// Processor applies a batch of commands to a fresh ledger, appending
// transactions to the per-user log and output records to the report builder.
// Commands run strictly in input order; every failure is terminal for its
// own command and never aborts the batch.
type Processor struct {
	txlog  store.TransactionLog
	output *report.Builder
	logger *log.Logger

	ledger    *domain.Ledger
	rates     *exchange.Graph
	idgen     *shared.IDGenerator
	timestamp int
}

func NewProcessor(txlog store.TransactionLog, output *report.Builder, logger *log.Logger) *Processor {
	if txlog == nil || output == nil {
		panic("transaction log and report builder must not be nil")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		txlog:  txlog,
		output: output,
		logger: logger,
		idgen:  shared.NewIDGenerator(DefaultSeed),
	}
}

// Ledger exposes the state of the most recent run, mainly for inspection in
// tests and post-run queries.
func (p *Processor) Ledger() *domain.Ledger {
	return p.ledger
}

// Run executes one batch: builds the ledger from the user roster, loads the
// rate graph (synthesizing inverse edges), then applies commands in order.
// The timestamp counter starts at 1 and advances once per command,
// regardless of what the input carries.
func (p *Processor) Run(batch Batch) error {
	p.idgen.Reset()
	p.ledger = domain.NewLedger()
	p.rates = exchange.NewGraph()
	p.timestamp = 0

	for _, in := range batch.Users {
		p.ledger.AddUser(domain.NewUser(in.FirstName, in.LastName, in.Email))
	}

	for _, in := range batch.ExchangeRates {
		err := p.rates.AddRate(shared.Currency(in.From), shared.Currency(in.To), in.Rate)
		if err != nil {
			return fmt.Errorf("loading exchange rates: %w", err)
		}
	}

	for _, in := range batch.Commands {
		p.timestamp++
		p.dispatch(in)
	}
	return nil
}

// dispatch decodes the raw record into the typed command for its name and
// runs the handler. Unknown command names are skipped.
func (p *Processor) dispatch(in CommandInput) {
	ts := p.timestamp
	switch in.Command {
	case "printUsers":
		p.PrintUsers(PrintUsersCommand{Timestamp: ts})
	case "addAccount":
		p.AddAccount(AddAccountCommand{
			Email:     in.Email,
			Currency:  shared.Currency(in.Currency),
			Type:      domain.AccountType(in.AccountType),
			Timestamp: ts,
		})
	case "createCard", "createOneTimeCard":
		p.CreateCard(CreateCardCommand{Email: in.Email, Account: in.Account, Timestamp: ts})
	case "addFunds":
		p.AddFunds(AddFundsCommand{Account: in.Account, Amount: in.Amount, Timestamp: ts})
	case "deleteAccount":
		p.DeleteAccount(DeleteAccountCommand{Email: in.Email, Account: in.Account, Timestamp: ts})
	case "deleteCard":
		p.DeleteCard(DeleteCardCommand{Email: in.Email, CardNumber: in.CardNumber, Timestamp: ts})
	case "setMinimumBalance":
		p.SetMinimumBalance(SetMinimumBalanceCommand{Account: in.Account, Amount: in.MinBalance, Timestamp: ts})
	case "setAlias":
		p.SetAlias(SetAliasCommand{Email: in.Email, Account: in.Account, Alias: in.Alias, Timestamp: ts})
	case "payOnline":
		p.PayOnline(PayOnlineCommand{
			Email:       in.Email,
			CardNumber:  in.CardNumber,
			Payment:     domain.NewMoney(in.Amount, shared.Currency(in.Currency)),
			Description: in.Description,
			Commerciant: in.Commerciant,
			Timestamp:   ts,
		})
	case "sendMoney":
		p.SendMoney(SendMoneyCommand{
			Email:       in.Email,
			Account:     in.Account,
			Receiver:    in.Receiver,
			Amount:      in.Amount,
			Description: in.Description,
			Timestamp:   ts,
		})
	case "splitPayment":
		p.SplitPayment(SplitPaymentCommand{
			Accounts:  in.Accounts,
			Total:     domain.NewMoney(in.Amount, shared.Currency(in.Currency)),
			Timestamp: ts,
		})
	case "checkCardStatus":
		p.CheckCardStatus(CheckCardStatusCommand{CardNumber: in.CardNumber, Timestamp: ts})
	case "printTransactions":
		p.PrintTransactions(PrintTransactionsCommand{Email: in.Email, Timestamp: ts})
	case "report":
		p.Report(ReportCommand{
			Account:        in.Account,
			StartTimestamp: in.StartTimestamp,
			EndTimestamp:   in.EndTimestamp,
			Timestamp:      ts,
		})
	default:
		p.logger.Warn("unknown command skipped", "command", in.Command, "timestamp", ts)
	}
}

func (p *Processor) PrintUsers(cmd PrintUsersCommand) {
	p.output.PrintUsers(p.ledger.Users, cmd.Timestamp)
}

func (p *Processor) AddAccount(cmd AddAccountCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		p.logger.Warn("addAccount: unknown user", "email", cmd.Email, "timestamp", cmd.Timestamp)
		return
	}
	account := domain.NewAccount(p.idgen.NewIBAN(), cmd.Currency, cmd.Type)
	user.AddAccount(account)
	p.txlog.Append(user.Email, transactions.NewAccountCreated(cmd.Timestamp))
}

func (p *Processor) CreateCard(cmd CreateCardCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		return
	}
	account := user.FindAccount(cmd.Account)
	if account == nil {
		return
	}
	card := domain.NewCard(p.idgen.NewCardNumber())
	account.AddCard(card)
	p.txlog.Append(user.Email,
		transactions.NewCardCreated(cmd.Timestamp, account.IBAN, card.Number, user.FullName()))
}

func (p *Processor) AddFunds(cmd AddFundsCommand) {
	_, account, err := p.ledger.FindAccount(cmd.Account)
	if err != nil {
		return
	}
	if err := account.Credit(cmd.Amount); err != nil {
		p.logger.Warn("addFunds rejected", "account", cmd.Account, "error", err)
	}
}

func (p *Processor) DeleteAccount(cmd DeleteAccountCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		p.output.DeleteAccountError(cmd.Timestamp)
		return
	}
	if err := user.RemoveAccount(cmd.Account); err != nil {
		p.output.DeleteAccountError(cmd.Timestamp)
		return
	}
	p.output.DeleteAccountSuccess(cmd.Timestamp)
}

func (p *Processor) DeleteCard(cmd DeleteCardCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		return
	}
	for _, account := range user.Accounts {
		if account.FindCard(cmd.CardNumber) == nil {
			continue
		}
		if err := account.RemoveCard(cmd.CardNumber); err != nil {
			return
		}
		p.txlog.Append(user.Email,
			transactions.NewCardDeleted(cmd.Timestamp, account.IBAN, cmd.CardNumber, user.FullName()))
		return
	}
}

func (p *Processor) SetMinimumBalance(cmd SetMinimumBalanceCommand) {
	_, account, err := p.ledger.FindAccount(cmd.Account)
	if err != nil {
		return
	}
	account.MinBalance = cmd.Amount
}

func (p *Processor) SetAlias(cmd SetAliasCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		return
	}
	if err := user.SetAlias(cmd.Account, cmd.Alias); err != nil {
		p.logger.Warn("setAlias rejected", "alias", cmd.Alias, "error", err)
	}
}

// PayOnline debits a card payment. Resolution scans the cardholder's
// accounts in order and takes the first card-number match. A frozen card is
// rejected with a CARD_STAT record, a short balance with NO_FUNDS; an
// unknown card goes to the error channel instead of any transaction log.
func (p *Processor) PayOnline(cmd PayOnlineCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		p.output.PayOnlineError("Card not found", cmd.Timestamp)
		return
	}

	for _, account := range user.Accounts {
		card := account.FindCard(cmd.CardNumber)
		if card == nil {
			continue
		}

		if card.Frozen() {
			p.txlog.Append(user.Email,
				transactions.NewCardStatus(cmd.Timestamp, transactions.DescCardFrozen))
			return
		}

		converted := cmd.Payment.Amount
		if !account.Currency.Equal(cmd.Payment.Currency) {
			converted, err = p.rates.Convert(cmd.Payment.Amount, cmd.Payment.Currency, account.Currency)
			if err != nil {
				p.warnConversion("payOnline", cmd.Payment.Currency, account.Currency, cmd.Timestamp, err)
				return
			}
		}

		if !account.CanPay(converted) {
			p.txlog.Append(user.Email, transactions.NewNoFunds(cmd.Timestamp))
			return
		}

		if err := account.Debit(converted); err != nil {
			p.logger.Error("payOnline debit failed after funds check", "account", account.IBAN, "error", err)
			return
		}
		p.txlog.Append(user.Email, transactions.NewOnlinePayment(cmd.Timestamp, cmd.Description,
			domain.NewMoney(converted, account.Currency), cmd.Commerciant))
		p.ledger.RecordPayment(cmd.Commerciant, account.IBAN, converted)
		return
	}

	p.output.PayOnlineError("Card not found", cmd.Timestamp)
}

// SendMoney moves funds between two accounts. The sender is debited the
// original amount in their own currency; the receiver is credited the
// converted amount. Both sides get an independent TRANSFER record with
// swapped roles. Any unresolved party, or an identifier that resolved via
// alias rather than the exact IBAN, makes the command a silent no-op.
func (p *Processor) SendMoney(cmd SendMoneyCommand) {
	sender, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		return
	}
	senderAccount := sender.FindAccount(cmd.Account)
	if senderAccount == nil {
		return
	}
	receiver, receiverAccount, err := p.ledger.FindAccount(cmd.Receiver)
	if err != nil {
		return
	}
	if senderAccount.IBAN != cmd.Account || receiverAccount.IBAN != cmd.Receiver {
		return
	}

	if !senderAccount.CanPay(cmd.Amount) {
		p.txlog.Append(sender.Email, transactions.NewNoFunds(cmd.Timestamp))
		return
	}

	converted := cmd.Amount
	if !senderAccount.Currency.Equal(receiverAccount.Currency) {
		converted, err = p.rates.Convert(cmd.Amount, senderAccount.Currency, receiverAccount.Currency)
		if err != nil {
			p.warnConversion("sendMoney", senderAccount.Currency, receiverAccount.Currency, cmd.Timestamp, err)
			return
		}
	}

	if err := senderAccount.Debit(cmd.Amount); err != nil {
		p.logger.Error("sendMoney debit failed after funds check", "account", senderAccount.IBAN, "error", err)
		return
	}
	if err := receiverAccount.Credit(converted); err != nil {
		p.logger.Error("sendMoney credit failed", "account", receiverAccount.IBAN, "error", err)
		return
	}

	p.txlog.Append(sender.Email, transactions.NewTransfer(cmd.Timestamp, cmd.Description,
		senderAccount.IBAN, receiverAccount.IBAN,
		domain.NewMoney(cmd.Amount, senderAccount.Currency), transactions.TransferSent))
	// The receiver's record swaps the IBAN roles: its senderIBAN field
	// carries the receiver's own IBAN.
	p.txlog.Append(receiver.Email, transactions.NewTransfer(cmd.Timestamp, cmd.Description,
		receiverAccount.IBAN, senderAccount.IBAN,
		domain.NewMoney(converted, receiverAccount.Currency), transactions.TransferReceived))
}

// splitShare is one validated leg of a split payment, cached between the
// validate and commit phases so conversions run once. State cannot change
// between phases in a single-threaded batch, so reuse is safe.
type splitShare struct {
	user      *domain.User
	account   *domain.Account
	converted decimal.Decimal
}

// SplitPayment divides the total equally across the listed accounts,
// all-or-nothing. Duplicate IBANs are collapsed to their first occurrence
// before the split, so the share is total / distinct-count. One SPLIT_PAY
// record is written per distinct involved user.
func (p *Processor) SplitPayment(cmd SplitPaymentCommand) {
	ibans := dedupe(cmd.Accounts)
	if len(ibans) == 0 {
		return
	}
	share := cmd.Total.Amount.Div(decimal.NewFromInt(int64(len(ibans))))

	shares := make([]splitShare, 0, len(ibans))
	for _, iban := range ibans {
		user, account, err := p.ledger.FindAccount(iban)
		if err != nil {
			return
		}
		converted := share
		if !account.Currency.Equal(cmd.Total.Currency) {
			converted, err = p.rates.Convert(share, cmd.Total.Currency, account.Currency)
			if err != nil {
				p.warnConversion("splitPayment", cmd.Total.Currency, account.Currency, cmd.Timestamp, err)
				return
			}
		}
		if !account.CanPay(converted) {
			return
		}
		shares = append(shares, splitShare{user: user, account: account, converted: converted})
	}

	description := fmt.Sprintf("Split payment of %s %s",
		cmd.Total.Amount.StringFixed(2), cmd.Total.Currency)

	seen := make(map[string]bool, len(shares))
	for _, leg := range shares {
		if err := leg.account.Debit(leg.converted); err != nil {
			p.logger.Error("splitPayment debit failed after validation", "account", leg.account.IBAN, "error", err)
			return
		}
		if seen[leg.user.Email] {
			continue
		}
		seen[leg.user.Email] = true
		p.txlog.Append(leg.user.Email, transactions.NewSplitPayment(cmd.Timestamp, description,
			domain.NewMoney(share, cmd.Total.Currency), ibans))
	}
}

// CheckCardStatus freezes a card whose account has fallen to its
// minimum-balance floor, logging the warning transaction; an unknown card
// number is reported on the error channel.
func (p *Processor) CheckCardStatus(cmd CheckCardStatusCommand) {
	user, account, card, err := p.ledger.FindCard(cmd.CardNumber)
	if err != nil {
		p.output.CheckCardStatusError(cmd.Timestamp)
		return
	}
	if account.Balance().LessThanOrEqual(account.MinBalance) {
		card.Freeze()
		p.txlog.Append(user.Email,
			transactions.NewCardStatus(cmd.Timestamp, transactions.DescCardWillFreeze))
	}
}

func (p *Processor) PrintTransactions(cmd PrintTransactionsCommand) {
	user, err := p.ledger.FindUser(cmd.Email)
	if err != nil {
		return
	}
	p.output.PrintTransactions(p.txlog.ForUser(user.Email), cmd.Timestamp)
}

// Report renders an account statement limited to the requested timestamp
// window.
func (p *Processor) Report(cmd ReportCommand) {
	owner, account, err := p.ledger.FindAccount(cmd.Account)
	if err != nil {
		return
	}
	window := make([]transactions.Transaction, 0)
	for _, tx := range p.txlog.ForUser(owner.Email) {
		ts := tx.GetBase().Timestamp
		if ts >= cmd.StartTimestamp && ts <= cmd.EndTimestamp {
			window = append(window, tx)
		}
	}
	p.output.Report(account, window, cmd.Timestamp)
}

func (p *Processor) warnConversion(command string, from, to shared.Currency, timestamp int, err error) {
	if errors.Is(err, exchange.ErrNoConversionPath) {
		p.logger.Warn("conversion failed, command dropped",
			"command", command, "from", from, "to", to, "timestamp", timestamp)
		return
	}
	p.logger.Error("conversion error", "command", command, "error", err)
}

// dedupe keeps the first occurrence of each IBAN, preserving order.
func dedupe(ibans []string) []string {
	seen := make(map[string]bool, len(ibans))
	out := make([]string, 0, len(ibans))
	for _, iban := range ibans {
		if seen[iban] {
			continue
		}
		seen[iban] = true
		out = append(out, iban)
	}
	return out
}
