package utils

import (
	"net/http"
	"time"

	"github.com/hmartiniano/variant-catalog/models"

	"github.com/cenkalti/backoff"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
)

// CreateEsConnection builds an elasticsearch client from the config.
// transport may be nil to use the default http transport.
func CreateEsConnection(cfg *models.Config, transport http.RoundTripper, log *logrus.Logger) (*es7.Client, error) {
	var (
		clusterURLs  = []string{cfg.Elasticsearch.Url}
		retryBackoff = backoff.NewExponentialBackOff()
	)

	esCfg := es7.Config{
		Addresses: clusterURLs,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Transport: transport,

		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		//
		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		// Retry up to 5 attempts
		//
		MaxRetries: 5,
	}

	es7Client, err := es7.NewClient(esCfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"version": es7.Version,
		"url":     cfg.Elasticsearch.Url,
	}).Info("Using ES7 Client")

	return es7Client, nil
}
