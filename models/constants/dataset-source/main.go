package datasetSource

import (
	"github.com/hmartiniano/variant-catalog/models/constants"
	"strings"
)

const (
	Unknown       constants.DatasetSource = "unknown"
	Embedded      constants.DatasetSource = "embedded"
	File          constants.DatasetSource = "file"
	Url           constants.DatasetSource = "url"
	Elasticsearch constants.DatasetSource = "elasticsearch"
)

func CastToDatasetSource(text string) constants.DatasetSource {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "embedded":
		return Embedded
	case "file":
		return File
	case "url", "http", "https":
		return Url
	case "elasticsearch", "es":
		return Elasticsearch
	default:
		return Unknown
	}
}

func IsKnownDatasetSource(text string) bool {
	return CastToDatasetSource(text) != Unknown
}
