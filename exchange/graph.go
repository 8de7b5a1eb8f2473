// Package exchange models the configured exchange rates as a directed
// weighted graph over currency codes and answers conversion queries by
// walking it.
package exchange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-ledger/shared"
)

var (
	// ErrNoConversionPath reports that no chain of configured rates links
	// the two currencies. Callers must treat this as a typed failure; the
	// unconverted amount is never handed back as a fallback.
	ErrNoConversionPath = errors.New("no conversion path between currencies")

	// ErrInvalidRate reports a zero or negative input rate.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)

// Edge is a single directed rate. For every rate loaded from input an
// inverse edge with the reciprocal rate is synthesized, so the graph always
// holds pairs.
type Edge struct {
	From shared.Currency
	To   shared.Currency
	Rate decimal.Decimal
}

// Graph holds the rate edges in insertion order. Traversal order follows
// edge order, so when several conversion paths exist the first one
// discovered in input-rate order wins. That tie-break is deliberate: it
// keeps conversion results reproducible for a given rate list.
type Graph struct {
	edges []Edge
}

func NewGraph() *Graph {
	return &Graph{edges: make([]Edge, 0)}
}

// AddRate appends the directed edge from->to and its synthesized inverse
// to->from with rate 1/rate. Non-positive rates are rejected.
func (g *Graph) AddRate(from, to shared.Currency, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("%w: %s -> %s rate %s", ErrInvalidRate, from, to, rate.String())
	}
	g.edges = append(g.edges,
		Edge{From: from, To: to, Rate: rate},
		Edge{From: to, To: from, Rate: decimal.NewFromInt(1).Div(rate)},
	)
	return nil
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Convert converts amount from one currency to another. A direct edge is a
// single multiplication; otherwise the graph is searched depth-first for any
// path of edges ending at the target, composing rates along the way. When no
// path exists the error wraps ErrNoConversionPath; the amount is never
// silently returned unconverted.
func (g *Graph) Convert(amount decimal.Decimal, from, to shared.Currency) (decimal.Decimal, error) {
	if from.Equal(to) {
		return amount, nil
	}
	rate, _, err := g.findRate(from, to, map[string]bool{})
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// Rate returns the composed rate along the path Convert would take.
func (g *Graph) Rate(from, to shared.Currency) (decimal.Decimal, error) {
	if from.Equal(to) {
		return decimal.NewFromInt(1), nil
	}
	rate, _, err := g.findRate(from, to, map[string]bool{})
	return rate, err
}

// Path returns the currency sequence Convert would traverse, including both
// endpoints.
func (g *Graph) Path(from, to shared.Currency) ([]shared.Currency, error) {
	if from.Equal(to) {
		return []shared.Currency{from}, nil
	}
	_, hops, err := g.findRate(from, to, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return append([]shared.Currency{from}, hops...), nil
}

// findRate is the recursive search. The visited set is threaded through
// every call and a currency is claimed before its outgoing edges are
// explored, so cyclic rate lists (A->B, B->A, ...) terminate instead of
// recursing forever.
func (g *Graph) findRate(from, to shared.Currency, visited map[string]bool) (decimal.Decimal, []shared.Currency, error) {
	visited[normalize(from)] = true

	for _, edge := range g.edges {
		if edge.From.Equal(from) && edge.To.Equal(to) {
			return edge.Rate, []shared.Currency{edge.To}, nil
		}
	}

	for _, edge := range g.edges {
		if !edge.From.Equal(from) || visited[normalize(edge.To)] {
			continue
		}
		rest, hops, err := g.findRate(edge.To, to, visited)
		if err != nil {
			continue
		}
		return edge.Rate.Mul(rest), append([]shared.Currency{edge.To}, hops...), nil
	}

	return decimal.Zero, nil, fmt.Errorf("%w: %s -> %s", ErrNoConversionPath, from, to)
}

// normalize folds a code for use as a visited-set key, matching the
// case-insensitive comparison used on edges.
func normalize(c shared.Currency) string {
	return strings.ToLower(string(c))
}
