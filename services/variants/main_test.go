package variantsService_test

import (
	"context"
	"testing"

	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	sortDirection "github.com/hmartiniano/variant-catalog/models/constants/sort"
	styleTag "github.com/hmartiniano/variant-catalog/models/constants/style-tag"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/services/loading"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"
	"github.com/hmartiniano/variant-catalog/tests/common"

	. "github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedService(t *testing.T) *variantsService.VariantService {
	cfg := common.InitConfig()
	log := common.NewTestLogger()

	loader := loading.NewLoadService(cfg, log)
	require.NoError(t, loader.Load(context.Background()))

	return variantsService.NewVariantService(cfg, fields.Default(), loader, log)
}

func TestSearchAndRender(t *testing.T) {
	vs := newLoadedService(t)

	result, err := vs.Search("LDLR", " FH-toulouse ")
	require.NoError(t, err)
	require.Equal(t, outcome.Found, result.Kind)

	display := vs.Render(result)
	require.NotNil(t, display)

	var classification dtos.SummaryItem
	From(display.Summary).WhereT(func(item dtos.SummaryItem) bool {
		return item.Key == fields.ClassificationKey
	}).ForEachT(func(item dtos.SummaryItem) {
		classification = item
	})
	assert.Equal(t, "Pathogenic", classification.Value)
	assert.Equal(t, styleTag.AcmgPathogenic, classification.StyleTag)

	assert.Equal(t, "LDLR", display.Summary[0].Value)
	require.Len(t, display.Studies.Rows, 2)
	assert.Equal(t, "Etxebarria et al. (2015)", display.Studies.Rows[0].Publication.Text)
	assert.True(t, display.Studies.Rows[0].Highlighted)

	// indexed study encoding in the same dataset
	result, err = vs.Search("APOB", "r3527q")
	require.NoError(t, err)
	require.True(t, result.IsFound())
	assert.Len(t, vs.Render(result).Studies.Rows, 2)

	missing, err := vs.Search("LDLR", "nope")
	require.NoError(t, err)
	assert.Nil(t, vs.Render(missing))

	unknown, err := vs.Search("XYZ", "rs1")
	require.NoError(t, err)
	assert.Equal(t, outcome.GeneUnknown, unknown.Kind)

	assert.Equal(t, dtos.QueryStats{Found: 2, VariantNotFound: 1, GeneUnknown: 1}, vs.Stats())
}

func TestSearchRefusedAfterLoadFailure(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Dataset.Source = "file"
	cfg.Dataset.Location = common.WriteTempFile(t, "data.json", `{}`)
	log := common.NewTestLogger()

	loader := loading.NewLoadService(cfg, log)
	require.Error(t, loader.Load(context.Background()))

	vs := variantsService.NewVariantService(cfg, fields.Default(), loader, log)
	_, err := vs.Search("LDLR", "rs121908028")
	assert.Error(t, err)
	assert.Equal(t, int64(1), vs.Stats().Refused)

	_, err = vs.GetVariantsOverview(context.Background())
	assert.Error(t, err)
}

func TestGetVariantsOverview(t *testing.T) {
	vs := newLoadedService(t)

	overview, err := vs.GetVariantsOverview(context.Background())
	require.NoError(t, err)

	classifications := overview["classifications"].(map[string]int)
	assert.Equal(t, 2, classifications["Pathogenic"])
	assert.Equal(t, 1, classifications["Likely Pathogenic"])

	curated := overview["curated"].(map[string]int)
	assert.Equal(t, 1, curated["N/A"])

	genes := overview["genes"].(map[string]int)
	assert.Equal(t, map[string]int{"LDLR": 3, "APOB": 2, "PCSK9": 1}, genes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = vs.GetVariantsOverview(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenes(t *testing.T) {
	vs := newLoadedService(t)

	overview, err := vs.GetGenesOverview(sortDirection.Undefined)
	require.NoError(t, err)

	symbols := []string{}
	From(overview).SelectT(func(g dtos.GeneDTO) string { return g.Symbol }).ToSlice(&symbols)
	assert.Equal(t, []string{"LDLR", "APOB", "PCSK9"}, symbols)

	overview, err = vs.GetGenesOverview(sortDirection.Ascending)
	require.NoError(t, err)
	assert.Equal(t, "PCSK9", overview[0].Symbol)

	gene, ok, err := vs.GetGene(" LDLR ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "LDLR", gene.Symbol)
	assert.Equal(t, "19p13.2", gene.Chromosome)
	assert.Equal(t, 3, gene.VariantCount)

	_, ok, err = vs.GetGene("XYZ")
	require.NoError(t, err)
	assert.False(t, ok)
}
