package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/hmartiniano/variant-catalog/models"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/models/ingest"
	"github.com/hmartiniano/variant-catalog/repositories/store"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
	"github.com/sirupsen/logrus"
)

// maximum number of gene documents read back in a single search
const maxGeneDocuments = 10000

// GeneDocument is the indexed form of a gene record; the document id is
// the gene symbol.
type GeneDocument struct {
	Symbol string `json:"symbol"`
	indexes.GeneRecord
}

func GetGeneDocumentsQuery() map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
		"size": maxGeneDocuments,
		"sort": []map[string]interface{}{
			{
				"symbol.keyword": map[string]interface{}{
					"order": "asc",
				},
			},
		},
	}
}

// GetDatasetDocument reads every gene document of the configured index and
// re-assembles the `{ "<symbol>": <gene record> }` dataset document.
func GetDatasetDocument(ctx context.Context, cfg *models.Config, es *es7.Client, log *logrus.Logger) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(GetGeneDocumentsQuery()); err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		log.Debug(buf.String())
	}

	res, searchErr := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(cfg.Elasticsearch.Index),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
	)
	if searchErr != nil {
		return nil, fmt.Errorf("searching index %s: %w", cfg.Elasticsearch.Index, searchErr)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("searching index %s: %s", cfg.Elasticsearch.Index, res.Status())
	}

	return DatasetDocumentFromSearchResponse(body)
}

// DatasetDocumentFromSearchResponse turns `hits.hits[]._source` gene
// documents into a dataset document keyed by symbol.
func DatasetDocumentFromSearchResponse(body []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	parsed, err := gabs.ParseJSONDecoder(decoder)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	if !parsed.ExistsP("hits.hits") {
		return nil, errors.New("search response has no hits")
	}

	hits, err := parsed.Path("hits.hits").Children()
	if err != nil {
		return nil, fmt.Errorf("reading hits: %w", err)
	}

	dataset := map[string]interface{}{}
	for i, hit := range hits {
		source := hit.S("_source")
		symbol, ok := source.S("symbol").Data().(string)
		if !ok || symbol == "" {
			return nil, fmt.Errorf("hit %d: missing gene symbol", i)
		}
		if _, dup := dataset[symbol]; dup {
			return nil, fmt.Errorf("hit %d: duplicate gene symbol %s", i, symbol)
		}
		if err := source.Delete("symbol"); err != nil {
			return nil, fmt.Errorf("hit %d: %w", i, err)
		}
		dataset[symbol] = source.Data()
	}

	return json.Marshal(dataset)
}

// IndexGeneRecords bulk-indexes every gene of the store, one document per
// gene, replacing documents with the same symbol.
func IndexGeneRecords(ctx context.Context, cfg *models.Config, es *es7.Client, s *store.Store, log *logrus.Logger) (ingest.PublishStats, error) {
	stats := ingest.PublishStats{Index: cfg.Elasticsearch.Index}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     es,
		Index:      cfg.Elasticsearch.Index,
		NumWorkers: 2,
	})
	if err != nil {
		return stats, fmt.Errorf("creating bulk indexer: %w", err)
	}

	var (
		failures int64
		addErr   error
	)
	s.Each(func(symbol string, gene indexes.GeneRecord) {
		if addErr != nil {
			return
		}

		data, marshallErr := json.Marshal(GeneDocument{Symbol: symbol, GeneRecord: gene})
		if marshallErr != nil {
			addErr = fmt.Errorf("cannot encode gene %s: %w", symbol, marshallErr)
			return
		}

		addErr = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: symbol,
			Body:       bytes.NewReader(data),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				atomic.AddInt64(&failures, 1)
				if err != nil {
					log.WithField("gene", item.DocumentID).Errorf("indexing failed: %v", err)
				} else {
					log.WithField("gene", item.DocumentID).Errorf("indexing failed: %s: %s", res.Error.Type, res.Error.Reason)
				}
			},
		})
	})

	if closeErr := bi.Close(ctx); closeErr != nil && addErr == nil {
		addErr = closeErr
	}

	biStats := bi.Stats()
	stats.NumAdded = biStats.NumAdded
	stats.NumFlushed = biStats.NumFlushed
	stats.NumFailed = biStats.NumFailed

	if addErr != nil {
		return stats, addErr
	}
	if failures > 0 {
		return stats, fmt.Errorf("%d gene documents failed to index", failures)
	}
	return stats, nil
}
