package search

import (
	"strings"
	"testing"

	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/repositories/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *store.Store {
	return store.New(map[string]indexes.GeneRecord{
		"LDLR": {
			FullName: "Low density lipoprotein receptor",
			Variants: []indexes.VariantRecord{
				{
					"id":                     "rs121908028",
					"aliases":                []string{"FH-Toulouse"},
					"c.":                     "c.681C>G",
					"p.":                     "p.(Asp227Glu)",
					"FH VCEP Classification": "Pathogenic",
				},
				{
					"id": "rs28942078",
					"c.": "c.1646G>A",
				},
				{
					// shares its protein change with the first variant
					"id": "rs999",
					"p.": "p.(Asp227Glu)",
				},
				{
					"id": "",
				},
			},
		},
		"APOB": {Variants: []indexes.VariantRecord{}},
	})
}

func TestFindVariant(t *testing.T) {
	s := newTestStore()
	cfg := fields.Default().Search

	t.Run("should find by primary identifier in any casing and whitespace", func(t *testing.T) {
		for _, term := range []string{"rs121908028", "RS121908028", "  rs121908028\t", "c.681c>g", "P.(ASP227GLU)"} {
			result := FindVariant(s, "LDLR", term, cfg)
			require.Equal(t, outcome.Found, result.Kind, term)
			assert.Equal(t, "rs121908028", result.Variant.TextOr("id", ""))
			assert.Equal(t, term, result.Term)
		}
	})

	t.Run("should find by alias", func(t *testing.T) {
		result := FindVariant(s, "LDLR", " FH-toulouse ", cfg)
		require.True(t, result.IsFound())
		assert.Equal(t, "rs121908028", result.Variant.TextOr("id", ""))
	})

	t.Run("should return the first variant in dataset order", func(t *testing.T) {
		result := FindVariant(s, "LDLR", "p.(Asp227Glu)", cfg)
		require.True(t, result.IsFound())
		assert.Equal(t, "rs121908028", result.Variant.TextOr("id", ""))
	})

	t.Run("should report an unknown gene", func(t *testing.T) {
		result := FindVariant(s, "XYZ", "rs1", cfg)
		assert.Equal(t, outcome.GeneUnknown, result.Kind)
		assert.Equal(t, "XYZ", result.GeneSymbol)
		assert.Nil(t, result.Variant)

		assert.Equal(t, outcome.GeneUnknown, FindVariant(s, "", "rs1", cfg).Kind)
		assert.Equal(t, outcome.GeneUnknown, FindVariant(nil, "LDLR", "rs1", cfg).Kind)
	})

	t.Run("should echo gene and raw term when nothing matches", func(t *testing.T) {
		result := FindVariant(s, " LDLR", " Nope ", cfg)
		assert.Equal(t, outcome.VariantNotFound, result.Kind)
		assert.Equal(t, "LDLR", result.GeneSymbol)
		assert.Equal(t, " Nope ", result.Term)
	})

	t.Run("should never match a blank term", func(t *testing.T) {
		assert.Equal(t, outcome.VariantNotFound, FindVariant(s, "LDLR", "   ", cfg).Kind)
		assert.Equal(t, outcome.VariantNotFound, FindVariant(s, "APOB", "rs1", cfg).Kind)
	})

	t.Run("should only search configured fields", func(t *testing.T) {
		narrow := fields.SearchConfig{SearchableFields: []string{"id"}}
		assert.Equal(t, outcome.VariantNotFound, FindVariant(s, "LDLR", "FH-Toulouse", narrow).Kind)
		assert.Equal(t, outcome.VariantNotFound, FindVariant(s, "LDLR", "c.681C>G", narrow).Kind)
	})
}

func TestOutcomeDisplay(t *testing.T) {
	s := newTestStore()
	result := FindVariant(s, "LDLR", "rs121908028", fields.Default().Search)

	display := result.Display(fields.GeneKey)
	assert.Equal(t, "LDLR", display.TextOr(fields.GeneKey, ""))

	// the stored record is untouched
	gene, _ := s.Gene("LDLR")
	assert.False(t, gene.Variants[0].Has(fields.GeneKey))

	assert.Nil(t, Outcome{Kind: outcome.VariantNotFound}.Display(fields.GeneKey))
}

func TestCandidateTerms(t *testing.T) {
	variant := indexes.VariantRecord{
		"id":      "RS1",
		"c.":      "c.1A>G",
		"aliases": []string{"rs1", "Alias"},
	}
	assert.Equal(t, []string{"rs1", "c.1a>g", "alias"}, CandidateTerms(variant, fields.Default().Search))
}

func TestFindVariantWholeDecimalIdentifier(t *testing.T) {
	genes, err := indexes.DecodeDataset(strings.NewReader(`{
		"LDLR": {"variants": [{"id": "rs121908028", "ClinVar ID": 3716.0}]}
	}`))
	require.NoError(t, err)

	result := FindVariant(store.New(genes), "LDLR", "3716", fields.Default().Search)
	require.Equal(t, outcome.Found, result.Kind)
	assert.Equal(t, "rs121908028", result.Variant.TextOr("id", ""))
}
