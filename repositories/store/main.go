package store

import (
	"sort"
	"strings"

	"github.com/hmartiniano/variant-catalog/models/indexes"
)

// Store is the frozen, in-memory dataset: gene symbol -> gene record.
// It is never mutated after New returns, so it is safe to share across
// goroutines without locking.
type Store struct {
	genes   map[string]indexes.GeneRecord
	symbols []string
	total   int
}

func New(genes map[string]indexes.GeneRecord) *Store {
	s := &Store{
		genes:   make(map[string]indexes.GeneRecord, len(genes)),
		symbols: make([]string, 0, len(genes)),
	}
	for symbol, gene := range genes {
		variants := make([]indexes.VariantRecord, len(gene.Variants))
		copy(variants, gene.Variants)
		gene.Variants = variants

		s.genes[symbol] = gene
		s.symbols = append(s.symbols, symbol)
		s.total += len(variants)
	}
	sort.Strings(s.symbols)

	return s
}

// Gene looks up a gene by its exact (whitespace-trimmed) symbol.
// Callers must treat the returned variants as read-only.
func (s *Store) Gene(symbol string) (indexes.GeneRecord, bool) {
	if s == nil {
		return indexes.GeneRecord{}, false
	}
	gene, ok := s.genes[strings.TrimSpace(symbol)]
	return gene, ok
}

// Symbols returns the gene symbols in ascending order
func (s *Store) Symbols() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out
}

func (s *Store) GeneCount() int {
	if s == nil {
		return 0
	}
	return len(s.genes)
}

func (s *Store) VariantCount() int {
	if s == nil {
		return 0
	}
	return s.total
}

// Each visits genes in symbol order
func (s *Store) Each(fn func(symbol string, gene indexes.GeneRecord)) {
	if s == nil {
		return
	}
	for _, symbol := range s.symbols {
		fn(symbol, s.genes[symbol])
	}
}
