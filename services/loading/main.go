package loading

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hmartiniano/variant-catalog/dataset"
	"github.com/hmartiniano/variant-catalog/models"
	"github.com/hmartiniano/variant-catalog/models/constants"
	datasetSource "github.com/hmartiniano/variant-catalog/models/constants/dataset-source"
	loadState "github.com/hmartiniano/variant-catalog/models/constants/load-state"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/models/ingest"
	esRepo "github.com/hmartiniano/variant-catalog/repositories/elasticsearch"
	"github.com/hmartiniano/variant-catalog/repositories/store"
	"github.com/hmartiniano/variant-catalog/utils"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const LoadFailureMessage = "Could not load variant data. Please check that the dataset exists and is correctly formatted."

var (
	ErrDatasetUnavailable = errors.New("dataset is not loaded")
	ErrUnknownSource      = errors.New("unknown dataset source")
)

// LoadFailure is fatal to the session: once returned, the service refuses
// every query until the process is restarted.
type LoadFailure struct {
	Source   constants.DatasetSource
	Location string
	Err      error
}

func (l *LoadFailure) Error() string {
	if l.Location == "" {
		return fmt.Sprintf("loading %s dataset: %v", l.Source, l.Err)
	}
	return fmt.Sprintf("loading %s dataset from %s: %v", l.Source, l.Location, l.Err)
}

func (l *LoadFailure) Unwrap() error { return l.Err }

type (
	LoadService struct {
		Config     *models.Config
		HttpClient *http.Client
		Es7Client  *es7.Client

		log    *logrus.Logger
		once   sync.Once
		mux    sync.RWMutex
		store  *store.Store
		err    error
		report ingest.LoadReport
	}
)

func NewLoadService(cfg *models.Config, log *logrus.Logger) *LoadService {
	return &LoadService{
		Config:     cfg,
		HttpClient: &http.Client{},
		log:        log,
		report: ingest.LoadReport{
			Id:        uuid.New(),
			Source:    datasetSource.CastToDatasetSource(cfg.Dataset.Source),
			Location:  cfg.Dataset.Location,
			State:     loadState.Pending,
			CreatedAt: fmt.Sprintf("%v", time.Now()),
		},
	}
}

// Load acquires, validates and freezes the dataset. Only the first call
// does any work; later calls return the same result.
func (ls *LoadService) Load(ctx context.Context) error {
	ls.once.Do(func() {
		ls.setState(loadState.Loading, "")

		source := ls.report.Source
		ls.log.WithFields(logrus.Fields{
			"source":   source,
			"location": ls.Config.Dataset.Location,
		}).Info("Fetching variant data...")

		genes, err := ls.acquire(ctx, source)
		if err != nil {
			failure := &LoadFailure{Source: source, Location: ls.Config.Dataset.Location, Err: err}
			ls.mux.Lock()
			ls.err = failure
			ls.mux.Unlock()
			ls.setState(loadState.Failed, failure.Error())

			ls.log.WithError(failure).Error("Fatal Error: Could not fetch or parse the dataset")
			return
		}

		frozen := store.New(genes)
		ls.mux.Lock()
		ls.store = frozen
		ls.report.GeneCount = frozen.GeneCount()
		ls.report.VariantCount = frozen.VariantCount()
		ls.mux.Unlock()
		ls.setState(loadState.Ready, "")

		ls.log.WithFields(logrus.Fields{
			"genes":    frozen.GeneCount(),
			"variants": frozen.VariantCount(),
		}).Info("Data fetched successfully")
	})

	ls.mux.RLock()
	defer ls.mux.RUnlock()
	return ls.err
}

// Store returns the frozen dataset, or an error when loading has not
// succeeded (the *LoadFailure itself after a failed load).
func (ls *LoadService) Store() (*store.Store, error) {
	ls.mux.RLock()
	defer ls.mux.RUnlock()

	if ls.err != nil {
		return nil, ls.err
	}
	if ls.store == nil {
		return nil, ErrDatasetUnavailable
	}
	return ls.store, nil
}

func (ls *LoadService) State() constants.LoadState {
	ls.mux.RLock()
	defer ls.mux.RUnlock()
	return ls.report.State
}

func (ls *LoadService) Report() ingest.LoadReport {
	ls.mux.RLock()
	defer ls.mux.RUnlock()
	return ls.report
}

func (ls *LoadService) setState(state constants.LoadState, message string) {
	ls.mux.Lock()
	defer ls.mux.Unlock()
	ls.report.State = state
	ls.report.Message = message
	ls.report.UpdatedAt = fmt.Sprintf("%v", time.Now())
}

func (ls *LoadService) acquire(ctx context.Context, source constants.DatasetSource) (map[string]indexes.GeneRecord, error) {
	var (
		document []byte
		err      error
	)

	switch source {
	case datasetSource.Embedded:
		document = dataset.Sample()

	case datasetSource.File:
		if ls.Config.Dataset.Location == "" {
			return nil, errors.New("no dataset file configured")
		}
		document, err = os.ReadFile(ls.Config.Dataset.Location)

	case datasetSource.Url:
		if ls.Config.Dataset.Location == "" {
			return nil, errors.New("no dataset url configured")
		}
		fetchCtx := ctx
		if ls.Config.Dataset.FetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, ls.Config.Dataset.FetchTimeout)
			defer cancel()
		}
		document, err = utils.FetchWithRetry(fetchCtx, ls.HttpClient, ls.Config.Dataset.Location, ls.Config.Dataset.MaxFetchAttempts, ls.log)

	case datasetSource.Elasticsearch:
		if ls.Es7Client == nil {
			ls.Es7Client, err = utils.CreateEsConnection(ls.Config, nil, ls.log)
			if err != nil {
				return nil, err
			}
		}
		document, err = esRepo.GetDatasetDocument(ctx, ls.Config, ls.Es7Client, ls.log)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, ls.Config.Dataset.Source)
	}

	if err != nil {
		return nil, err
	}

	return indexes.DecodeDataset(bytes.NewReader(document))
}
