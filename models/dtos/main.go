package dtos

import (
	"time"

	"github.com/hmartiniano/variant-catalog/models/constants"
)

// -- Rendered variant

type SummaryItem struct {
	Key      string             `json:"key"`
	Label    string             `json:"label"`
	Value    string             `json:"value"`
	StyleTag constants.StyleTag `json:"styleTag,omitempty"`
	Tooltip  string             `json:"tooltip,omitempty"`
}

type DetailItem struct {
	Key      string             `json:"key"`
	Label    string             `json:"label"`
	Value    string             `json:"value"`
	Link     string             `json:"link,omitempty"`
	StyleTag constants.StyleTag `json:"styleTag,omitempty"`
	Tooltip  string             `json:"tooltip,omitempty"`
	Image    string             `json:"image,omitempty"` // image marker source, e.g. "studied in" badge
}

type PublicationCell struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

type StudyRow struct {
	Type        string          `json:"type"`
	Result      string          `json:"result"`
	Publication PublicationCell `json:"publication"`
	Highlighted bool            `json:"highlighted,omitempty"`
}

type StudyTable struct {
	Headers []string   `json:"headers,omitempty"`
	Rows    []StudyRow `json:"rows"`
	Empty   bool       `json:"empty"`
	Message string     `json:"message,omitempty"` // set with Empty
}

type VariantDisplay struct {
	Summary []SummaryItem `json:"summary"`
	Details []DetailItem  `json:"details"`
	Studies StudyTable    `json:"studies"`
}

// -- Responses

type VariantSearchResponseDTO struct {
	QueryId string                `json:"queryId"`
	Status  int                   `json:"status"`
	Message string                `json:"message"`
	Outcome constants.OutcomeKind `json:"outcome"`
	Gene    string                `json:"gene"`
	Term    string                `json:"term"`
	Result  *VariantDisplay       `json:"result,omitempty"`
}

type GeneDTO struct {
	Symbol       string `json:"symbol"`
	FullName     string `json:"fullName"`
	Chromosome   string `json:"chromosome,omitempty"`
	Summary      string `json:"summary"`
	VariantCount int    `json:"variantCount"`
}

type GenesResponseDTO struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Results []string `json:"results"` // sorted gene symbols
}

type ShadowedIdentifier struct {
	Gene          string `json:"gene"`
	Term          string `json:"term"`
	WinnerIndex   int    `json:"winnerIndex"`
	ShadowedIndex int    `json:"shadowedIndex"`
}

type AuditResponseDTO struct {
	Status           int                  `json:"status"`
	Message          string               `json:"message"`
	Count            int                  `json:"count"`
	Results          []ShadowedIdentifier `json:"results"`
	InvalidLocations []string             `json:"invalidLocations"` // genes whose chromosome is not a human cytoband
}

type QueryStats struct {
	Found           int64 `json:"found"`
	VariantNotFound int64 `json:"variantNotFound"`
	GeneUnknown     int64 `json:"geneUnknown"`
	Refused         int64 `json:"refused"`
}

// -- Errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
