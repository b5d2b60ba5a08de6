package variantsService

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hmartiniano/variant-catalog/models"
	"github.com/hmartiniano/variant-catalog/models/constants"
	"github.com/hmartiniano/variant-catalog/models/constants/markers"
	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	sortDirection "github.com/hmartiniano/variant-catalog/models/constants/sort"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/repositories/store"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/render"
	"github.com/hmartiniano/variant-catalog/services/search"

	. "github.com/ahmetb/go-linq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type (
	VariantService struct {
		Config   *models.Config
		Settings *fields.Settings
		Loader   *loading.LoadService

		log *logrus.Logger

		found           int64
		variantNotFound int64
		geneUnknown     int64
		refused         int64
	}
)

func NewVariantService(cfg *models.Config, settings *fields.Settings, loader *loading.LoadService, log *logrus.Logger) *VariantService {
	vs := &VariantService{
		Config:   cfg,
		Settings: settings,
		Loader:   loader,
		log:      log,
	}

	return vs
}

// Search runs a single lookup against the frozen store. The error is only
// non-nil when the dataset is unavailable; search outcomes are never errors.
func (vs *VariantService) Search(gene string, rawTerm string) (search.Outcome, error) {
	s, err := vs.Loader.Store()
	if err != nil {
		atomic.AddInt64(&vs.refused, 1)
		return search.Outcome{}, err
	}

	result := search.FindVariant(s, gene, rawTerm, vs.Settings.Search)
	switch result.Kind {
	case outcome.Found:
		atomic.AddInt64(&vs.found, 1)
	case outcome.VariantNotFound:
		atomic.AddInt64(&vs.variantNotFound, 1)
	case outcome.GeneUnknown:
		atomic.AddInt64(&vs.geneUnknown, 1)
	}

	vs.log.WithFields(logrus.Fields{
		"gene":    result.GeneSymbol,
		"term":    rawTerm,
		"outcome": result.Kind,
	}).Debug("variant search")

	return result, nil
}

// Render projects a found outcome into its display form; nil otherwise
func (vs *VariantService) Render(result search.Outcome) *dtos.VariantDisplay {
	if !result.IsFound() {
		return nil
	}
	display := render.Variant(result.Display(vs.Settings.Display.Special.Gene), &vs.Settings.Display)
	return &display
}

func (vs *VariantService) Stats() dtos.QueryStats {
	return dtos.QueryStats{
		Found:           atomic.LoadInt64(&vs.found),
		VariantNotFound: atomic.LoadInt64(&vs.variantNotFound),
		GeneUnknown:     atomic.LoadInt64(&vs.geneUnknown),
		Refused:         atomic.LoadInt64(&vs.refused),
	}
}

func (vs *VariantService) GetGene(symbol string) (dtos.GeneDTO, bool, error) {
	s, err := vs.Loader.Store()
	if err != nil {
		return dtos.GeneDTO{}, false, err
	}

	gene, ok := s.Gene(symbol)
	if !ok {
		return dtos.GeneDTO{}, false, nil
	}
	return toGeneDTO(strings.TrimSpace(symbol), gene), true, nil
}

// GetGenesOverview lists every gene by variant count, most populated first
// unless direction is ascending; ties are broken by symbol.
func (vs *VariantService) GetGenesOverview(direction constants.SortDirection) ([]dtos.GeneDTO, error) {
	s, err := vs.Loader.Store()
	if err != nil {
		return nil, err
	}

	genes := make([]dtos.GeneDTO, 0, s.GeneCount())
	s.Each(func(symbol string, gene indexes.GeneRecord) {
		genes = append(genes, toGeneDTO(symbol, gene))
	})

	byCount := func(g dtos.GeneDTO) int { return g.VariantCount }
	bySymbol := func(g dtos.GeneDTO) string { return g.Symbol }

	ordered := []dtos.GeneDTO{}
	if direction == sortDirection.Ascending {
		From(genes).OrderByT(byCount).ThenByT(bySymbol).ToSlice(&ordered)
	} else {
		From(genes).OrderByDescendingT(byCount).ThenByT(bySymbol).ToSlice(&ordered)
	}

	return ordered, nil
}

// GetVariantsOverview computes value distributions across the whole store
func (vs *VariantService) GetVariantsOverview(ctx context.Context) (map[string]interface{}, error) {
	s, err := vs.Loader.Store()
	if err != nil {
		return nil, err
	}

	resultsMap := map[string]interface{}{}
	resultsMux := sync.Mutex{}

	g, gctx := errgroup.WithContext(ctx)
	distributionByField := func(key string, field string) {
		g.Go(func() error {
			counts, err := countByField(gctx, s, field)
			if err != nil {
				return err
			}

			resultsMux.Lock()
			defer resultsMux.Unlock()
			resultsMap[key] = counts
			return nil
		})
	}

	// get distribution of classifications
	distributionByField("classifications", vs.Settings.Display.Special.Classification)

	// get distribution of curated badges
	distributionByField("curated", vs.Settings.Display.Special.CuratedBadge)

	// get distribution of variants per gene
	g.Go(func() error {
		perGene := map[string]int{}
		s.Each(func(symbol string, gene indexes.GeneRecord) {
			perGene[symbol] = len(gene.Variants)
		})

		resultsMux.Lock()
		defer resultsMux.Unlock()
		resultsMap["genes"] = perGene
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resultsMap, nil
}

func countByField(ctx context.Context, s *store.Store, field string) (map[string]int, error) {
	counts := map[string]int{}
	if field == "" {
		return counts, nil
	}

	var err error
	s.Each(func(_ string, gene indexes.GeneRecord) {
		if err != nil {
			return
		}
		if err = ctx.Err(); err != nil {
			return
		}
		for _, variant := range gene.Variants {
			counts[variant.TextOr(field, markers.NotAvailable)]++
		}
	})
	return counts, err
}

func toGeneDTO(symbol string, gene indexes.GeneRecord) dtos.GeneDTO {
	return dtos.GeneDTO{
		Symbol:       symbol,
		FullName:     gene.FullName,
		Chromosome:   gene.Chromosome,
		Summary:      gene.Summary,
		VariantCount: len(gene.Variants),
	}
}
