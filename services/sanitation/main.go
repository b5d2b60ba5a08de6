package sanitation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/hmartiniano/variant-catalog/models"
	"github.com/hmartiniano/variant-catalog/models/constants/chromosome"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/repositories/store"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/search"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"
)

type (
	SanitationService struct {
		Initialized bool
		Config      *models.Config
		Settings    *fields.Settings
		Loader      *loading.LoadService
		Variants    *variantsService.VariantService

		log       *logrus.Logger
		scheduler *gocron.Scheduler
	}
)

func NewSanitationService(cfg *models.Config, settings *fields.Settings, loader *loading.LoadService, vs *variantsService.VariantService, log *logrus.Logger) *SanitationService {
	return &SanitationService{
		Initialized: false,
		Config:      cfg,
		Settings:    settings,
		Loader:      loader,
		Variants:    vs,
		log:         log,
	}
}

func (ss *SanitationService) Init() error {
	if ss.Initialized {
		return nil
	}

	// setup cron job
	s := gocron.NewScheduler(time.UTC)

	// daily dataset and usage report
	if _, err := s.Every(1).Days().At(ss.Config.Api.ReportTime).Do(ss.Report); err != nil {
		return fmt.Errorf("scheduling sanitation report: %w", err)
	}

	s.StartAsync()
	ss.scheduler = s

	ss.Initialized = true
	ss.log.WithField("at", ss.Config.Api.ReportTime).Info("Sanitation Service Initialized ..")
	return nil
}

func (ss *SanitationService) Stop() {
	if ss.scheduler != nil {
		ss.scheduler.Stop()
	}
}

// Audit lists identifiers that can never be reached because an earlier
// variant of the same gene answers to them first, and genes with an
// unrecognised chromosome location.
func (ss *SanitationService) Audit() ([]dtos.ShadowedIdentifier, []string, error) {
	s, err := ss.Loader.Store()
	if err != nil {
		return nil, nil, err
	}
	return AuditStore(s, ss.Settings.Search), AuditChromosomes(s), nil
}

func (ss *SanitationService) Report() {
	report := ss.Loader.Report()
	entry := ss.log.WithFields(logrus.Fields{
		"loadId": report.Id,
		"state":  report.State,
		"source": report.Source,
	})

	shadowed, invalidLocations, err := ss.Audit()
	if err != nil {
		entry.WithError(err).Warn("Skipping dataset audit")
		return
	}

	stats := ss.Variants.Stats()
	entry.WithFields(logrus.Fields{
		"genes":           report.GeneCount,
		"variants":        report.VariantCount,
		"shadowed":        len(shadowed),
		"invalidLocation": len(invalidLocations),
		"found":           stats.Found,
		"variantNotFound": stats.VariantNotFound,
		"geneUnknown":     stats.GeneUnknown,
		"refused":         stats.Refused,
	}).Info("Running dataset sanitation report..")

	for _, sh := range shadowed {
		ss.log.WithFields(logrus.Fields{
			"gene":     sh.Gene,
			"term":     sh.Term,
			"winner":   sh.WinnerIndex,
			"shadowed": sh.ShadowedIndex,
		}).Warn("Identifier is shadowed by an earlier variant")
	}
	for _, symbol := range invalidLocations {
		ss.log.WithField("gene", symbol).Warn("Unrecognised chromosome location")
	}
}

// AuditChromosomes lists genes whose non-empty chromosome field does not
// name a human chromosome.
func AuditChromosomes(s *store.Store) []string {
	invalid := []string{}
	s.Each(func(symbol string, gene indexes.GeneRecord) {
		if strings.TrimSpace(gene.Chromosome) == "" {
			return
		}
		if _, ok := chromosome.FromCytoband(gene.Chromosome); !ok {
			invalid = append(invalid, symbol)
		}
	})
	return invalid
}

func AuditStore(s *store.Store, cfg fields.SearchConfig) []dtos.ShadowedIdentifier {
	shadowed := []dtos.ShadowedIdentifier{}

	s.Each(func(symbol string, gene indexes.GeneRecord) {
		winners := map[string]int{}
		for i, variant := range gene.Variants {
			for _, term := range search.CandidateTerms(variant, cfg) {
				winner, seen := winners[term]
				if !seen {
					winners[term] = i
					continue
				}
				shadowed = append(shadowed, dtos.ShadowedIdentifier{
					Gene:          symbol,
					Term:          term,
					WinnerIndex:   winner,
					ShadowedIndex: i,
				})
			}
		}
	})

	return shadowed
}
