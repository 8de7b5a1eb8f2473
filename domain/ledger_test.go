package domain_test

import (
	"errors"
	"testing"

	"bank-ledger/domain"
)

func seedLedger() (*domain.Ledger, *domain.User, *domain.User) {
	ledger := domain.NewLedger()
	ada := domain.NewUser("Ada", "Lovelace", "ada@example.com")
	bob := domain.NewUser("Bob", "Babbage", "bob@example.com")
	ledger.AddUser(ada)
	ledger.AddUser(bob)

	ada.AddAccount(domain.NewAccount("RO11BNKL000000000001", "RON", domain.AccountClassic))
	bob.AddAccount(domain.NewAccount("RO22BNKL000000000002", "USD", domain.AccountClassic))
	return ledger, ada, bob
}

func TestLedger_FindUser(t *testing.T) {
	ledger, ada, _ := seedLedger()

	got, err := ledger.FindUser("  ADA@example.COM ")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	if got != ada {
		t.Error("expected case-insensitive, trimmed email match")
	}

	_, err = ledger.FindUser("nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLedger_FindAccountScansAllUsers(t *testing.T) {
	ledger, _, bob := seedLedger()

	owner, account, err := ledger.FindAccount("RO22BNKL000000000002")
	if err != nil {
		t.Fatalf("FindAccount failed: %v", err)
	}
	if owner != bob {
		t.Error("expected bob as owner")
	}
	if account.IBAN != "RO22BNKL000000000002" {
		t.Errorf("wrong account resolved: %s", account.IBAN)
	}

	_, _, err = ledger.FindAccount("RO99BNKL000000000099")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestLedger_FindCard(t *testing.T) {
	ledger, _, bob := seedLedger()
	bob.Accounts[0].AddCard(domain.NewCard("4000123412341234"))

	user, account, card, err := ledger.FindCard("4000123412341234")
	if err != nil {
		t.Fatalf("FindCard failed: %v", err)
	}
	if user != bob || account != bob.Accounts[0] || card.Number != "4000123412341234" {
		t.Error("card resolution returned the wrong owner chain")
	}

	_, _, _, err = ledger.FindCard("0000000000000000")
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestLedger_RecordPayment(t *testing.T) {
	ledger, _, _ := seedLedger()

	if ledger.Commerciant("BookShop") != nil {
		t.Fatal("merchant must not exist before first payment")
	}

	ledger.RecordPayment("BookShop", "RO11BNKL000000000001", dec("30"))
	ledger.RecordPayment("BookShop", "RO11BNKL000000000001", dec("12.5"))
	ledger.RecordPayment("BookShop", "RO22BNKL000000000002", dec("7"))

	merchant := ledger.Commerciant("BookShop")
	if merchant == nil {
		t.Fatal("merchant should be created lazily on first payment")
	}
	if !merchant.Total.Equal(dec("49.5")) {
		t.Errorf("expected total 49.5, got %s", merchant.Total)
	}
	if !merchant.PaymentsByIBAN["RO11BNKL000000000001"].Equal(dec("42.5")) {
		t.Errorf("expected 42.5 aggregated for first IBAN, got %s",
			merchant.PaymentsByIBAN["RO11BNKL000000000001"])
	}
	if !merchant.PaymentsByIBAN["RO22BNKL000000000002"].Equal(dec("7")) {
		t.Errorf("expected 7 aggregated for second IBAN, got %s",
			merchant.PaymentsByIBAN["RO22BNKL000000000002"])
	}
}
