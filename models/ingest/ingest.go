package ingest

import (
	"github.com/hmartiniano/variant-catalog/models/constants"

	"github.com/google/uuid"
)

// LoadReport describes the one-shot dataset load of this process
type LoadReport struct {
	Id           uuid.UUID               `json:"id"`
	Source       constants.DatasetSource `json:"source"`
	Location     string                  `json:"location,omitempty"`
	State        constants.LoadState     `json:"state"`
	Message      string                  `json:"message,omitempty"`
	GeneCount    int                     `json:"geneCount"`
	VariantCount int                     `json:"variantCount"`
	CreatedAt    string                  `json:"createdAt"`
	UpdatedAt    string                  `json:"updatedAt"`
}

// ConversionReport summarises a spreadsheet -> dataset conversion
type ConversionReport struct {
	Input        string   `json:"input"`
	Output       string   `json:"output"`
	GeneCount    int      `json:"geneCount"`
	VariantCount int      `json:"variantCount"`
	SkippedRows  []int    `json:"skippedRows,omitempty"`
	Columns      []string `json:"columns"`
}

// PublishStats mirrors the bulk indexer counters
type PublishStats struct {
	Index      string `json:"index"`
	NumAdded   uint64 `json:"numAdded"`
	NumFlushed uint64 `json:"numFlushed"`
	NumFailed  uint64 `json:"numFailed"`
}
