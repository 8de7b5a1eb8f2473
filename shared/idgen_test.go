package shared_test

import (
	"testing"

	"bank-ledger/shared"
)

func TestIDGenerator_Deterministic(t *testing.T) {
	first := shared.NewIDGenerator(1)
	second := shared.NewIDGenerator(1)

	for i := 0; i < 5; i++ {
		if a, b := first.NewIBAN(), second.NewIBAN(); a != b {
			t.Fatalf("same seed must yield the same sequence: %s vs %s", a, b)
		}
	}
	if a, b := first.NewCardNumber(), second.NewCardNumber(); a != b {
		t.Errorf("card numbers diverged: %s vs %s", a, b)
	}
}

func TestIDGenerator_ResetRewinds(t *testing.T) {
	gen := shared.NewIDGenerator(7)
	before := []string{gen.NewIBAN(), gen.NewCardNumber(), gen.NewIBAN()}

	gen.Reset()
	after := []string{gen.NewIBAN(), gen.NewCardNumber(), gen.NewIBAN()}

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("sequence %d changed after Reset: %s vs %s", i, before[i], after[i])
		}
	}
}

func TestIDGenerator_Shape(t *testing.T) {
	gen := shared.NewIDGenerator(1)

	iban := gen.NewIBAN()
	if len(iban) != 20 {
		t.Errorf("expected 20-character IBAN, got %q (%d)", iban, len(iban))
	}
	if iban[:2] != "RO" || iban[4:8] != "BNKL" {
		t.Errorf("unexpected IBAN layout %q", iban)
	}
	for _, c := range iban[2:4] + iban[8:] {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit in IBAN %q", iban)
		}
	}

	card := gen.NewCardNumber()
	if len(card) != 16 {
		t.Errorf("expected 16-digit card number, got %q", card)
	}
	for _, c := range card {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit in card number %q", card)
		}
	}
}
