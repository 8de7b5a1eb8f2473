package shared

import (
	"math/rand"
	"strings"
)

const (
	ibanPrefix     = "RO"
	ibanBankCode   = "BNKL"
	ibanCheckLen   = 2
	ibanAccountLen = 12
	cardNumberLen  = 16
)

// IDGenerator produces IBANs and card numbers from a seeded source so that a
// batch run is reproducible: the same seed yields the same identifier
// sequence. Not safe for concurrent use; each run owns one generator.
type IDGenerator struct {
	seed int64
	rng  *rand.Rand
}

func NewIDGenerator(seed int64) *IDGenerator {
	return &IDGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Reset rewinds the generator to the start of its sequence. Called once at
// the beginning of every batch run.
func (g *IDGenerator) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
}

func (g *IDGenerator) digits(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return sb.String()
}

// NewIBAN returns the next account identifier, e.g. "RO48BNKL000003028876".
func (g *IDGenerator) NewIBAN() string {
	var sb strings.Builder
	sb.WriteString(ibanPrefix)
	sb.WriteString(g.digits(ibanCheckLen))
	sb.WriteString(ibanBankCode)
	sb.WriteString(g.digits(ibanAccountLen))
	return sb.String()
}

// NewCardNumber returns the next 16-digit card number.
func (g *IDGenerator) NewCardNumber() string {
	return g.digits(cardNumberLen)
}
