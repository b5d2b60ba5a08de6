package indexes

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataset(t *testing.T) {
	genes, err := DecodeDataset(strings.NewReader(`{
		"LDLR": {
			"fullName": "Low density lipoprotein receptor",
			"summary": null,
			"variants": [
				{
					"id": "rs121908028",
					"ClinVar ID": 3716,
					"score": 0.25,
					"aliases": ["FH-Toulouse"],
					"curated": true,
					"note": null,
					"functionalStudies": [
						{"type": "Flow cytometry", "result": "30%", "author": "Doe", "year": 2015, "pubmedId": 123, "isHighlighted": "yes"}
					]
				}
			]
		}
	}`))
	require.NoError(t, err)
	require.Contains(t, genes, "LDLR")

	gene := genes["LDLR"]
	assert.Equal(t, "Low density lipoprotein receptor", gene.FullName)
	assert.Empty(t, gene.Summary)
	require.Len(t, gene.Variants, 1)

	variant := gene.Variants[0]
	assert.Equal(t, json.Number("3716"), variant["ClinVar ID"])
	assert.Equal(t, "0.25", variant.TextOr("score", ""))
	assert.Equal(t, []string{"FH-Toulouse"}, variant.Strings("aliases"))
	assert.True(t, variant.IsAffirmative("curated"))
	assert.False(t, variant.Has("note"))

	studies := variant.Studies("functionalStudies")
	require.Len(t, studies, 1)
	assert.Equal(t, FunctionalStudy{
		Type:          "Flow cytometry",
		Result:        "30%",
		Author:        "Doe",
		Year:          "2015",
		PubmedId:      "123",
		IsHighlighted: true,
	}, studies[0])
}

func TestDecodeDatasetRejectsInvalidShapes(t *testing.T) {
	for name, document := range map[string]string{
		"empty object":     `{}`,
		"not an object":    `[1, 2]`,
		"missing variants": `{"LDLR": {"fullName": ""}}`,
		"blank symbol":     `{" ": {"variants": []}}`,
		"null variant":     `{"LDLR": {"variants": [null]}}`,
		"nested object":    `{"LDLR": {"variants": [{"id": {"a": 1}}]}}`,
		"mixed list":       `{"LDLR": {"variants": [{"aliases": ["a", 1]}]}}`,
		"number list":      `{"LDLR": {"variants": [{"aliases": [1, 2]}]}}`,
		"malformed json":   `{"LDLR": `,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDataset(strings.NewReader(document))
			assert.Error(t, err)
		})
	}

	_, err := DecodeDataset(strings.NewReader(`{}`))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestVariantRecordPresence(t *testing.T) {
	variant := VariantRecord{
		"blank":  "   ",
		"false":  false,
		"empty":  []string{},
		"nil":    nil,
		"zero":   json.Number("0"),
		"yes":    "YES ",
		"no":     "No",
		"single": "rs1",
	}

	for _, key := range []string{"blank", "false", "empty", "nil", "missing"} {
		assert.False(t, variant.Has(key), key)
		assert.Equal(t, "N/A", variant.TextOr(key, "N/A"), key)
	}
	assert.True(t, variant.Has("zero"))
	assert.True(t, variant.IsAffirmative("yes"))
	assert.False(t, variant.IsAffirmative("no"))
	assert.Equal(t, []string{"rs1"}, variant.Strings("single"))

	clone := variant.With("Gene", "LDLR")
	assert.Equal(t, "LDLR", clone.TextOr("Gene", ""))
	assert.False(t, variant.Has("Gene"))
}

func TestDecodeDatasetWholeDecimals(t *testing.T) {
	genes, err := DecodeDataset(strings.NewReader(`{
		"LDLR": {
			"variants": [
				{
					"ClinVar ID": 3716.0,
					"score": 1.50,
					"big": 12345678901234567890,
					"functionalStudies": [
						{"author": "Doe", "year": 2015.0, "pubmedId": 20538126.0}
					]
				}
			]
		}
	}`))
	require.NoError(t, err)

	variant := genes["LDLR"].Variants[0]
	assert.Equal(t, json.Number("3716"), variant["ClinVar ID"])
	assert.Equal(t, "1.5", variant.TextOr("score", ""))
	assert.Equal(t, json.Number("12345678901234567890"), variant["big"])

	studies := variant.Studies("functionalStudies")
	require.Len(t, studies, 1)
	assert.Equal(t, "2015", studies[0].Year)
	assert.Equal(t, "20538126", studies[0].PubmedId)
}

func TestCanonicalNumber(t *testing.T) {
	for input, expected := range map[string]string{
		"3716":   "3716",
		"3716.0": "3716",
		"-2.50":  "-2.5",
		"0.0":    "0",
		"1e3":    "1000",
		"1e21":   "1e21",
		"1e-7":   "1e-7",
		"007":    "007",
		"0.30":   "0.3",
	} {
		assert.Equal(t, json.Number(expected), CanonicalNumber(json.Number(input)), input)
	}
	assert.Equal(t, "3716", Stringify(json.Number("3716.0")))
}
