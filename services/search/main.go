package search

import (
	"strings"

	"github.com/hmartiniano/variant-catalog/models/constants"
	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/repositories/store"
)

// Outcome is the result of a single lookup. Variant is only set when Kind
// is outcome.Found; Term always carries the raw, un-normalized input.
type Outcome struct {
	Kind       constants.OutcomeKind
	GeneSymbol string
	Term       string
	Variant    indexes.VariantRecord
}

func (o Outcome) IsFound() bool {
	return o.Kind == outcome.Found
}

// Display returns a copy of the matched variant with the resolved gene
// symbol attached under geneKey; the stored record is left untouched.
func (o Outcome) Display(geneKey string) indexes.VariantRecord {
	if o.Variant == nil {
		return nil
	}
	if geneKey == "" {
		return o.Variant
	}
	return o.Variant.With(geneKey, o.GeneSymbol)
}

func NormalizeTerm(rawTerm string) string {
	return strings.ToLower(strings.TrimSpace(rawTerm))
}

// FindVariant returns the first variant of gene (in dataset order) having
// any configured searchable field, or alias, equal to the normalized term.
func FindVariant(s *store.Store, gene string, rawTerm string, cfg fields.SearchConfig) Outcome {
	symbol := strings.TrimSpace(gene)

	geneRecord, ok := s.Gene(symbol)
	if !ok || symbol == "" {
		return Outcome{Kind: outcome.GeneUnknown, GeneSymbol: gene, Term: rawTerm}
	}

	term := NormalizeTerm(rawTerm)
	if term != "" {
		for _, variant := range geneRecord.Variants {
			if matches(variant, term, cfg) {
				return Outcome{Kind: outcome.Found, GeneSymbol: symbol, Term: rawTerm, Variant: variant}
			}
		}
	}

	return Outcome{Kind: outcome.VariantNotFound, GeneSymbol: symbol, Term: rawTerm}
}

func matches(variant indexes.VariantRecord, term string, cfg fields.SearchConfig) bool {
	for _, key := range cfg.SearchableFields {
		for _, candidate := range variant.Strings(key) {
			if NormalizeTerm(candidate) == term {
				return true
			}
		}
	}
	if cfg.AliasField != "" {
		for _, alias := range variant.Strings(cfg.AliasField) {
			if NormalizeTerm(alias) == term {
				return true
			}
		}
	}
	return false
}

// CandidateTerms lists the normalized identifiers a variant answers to,
// in search order and without duplicates.
func CandidateTerms(variant indexes.VariantRecord, cfg fields.SearchConfig) []string {
	var (
		seen  = map[string]bool{}
		terms []string
	)
	collect := func(values []string) {
		for _, value := range values {
			term := NormalizeTerm(value)
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			terms = append(terms, term)
		}
	}

	for _, key := range cfg.SearchableFields {
		collect(variant.Strings(key))
	}
	if cfg.AliasField != "" {
		collect(variant.Strings(cfg.AliasField))
	}
	return terms
}
