package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
)

// FetchWithRetry GETs url, retrying transport errors and 5xx/429 responses
// with exponential backoff. Other non-2xx statuses fail immediately.
func FetchWithRetry(ctx context.Context, client *http.Client, url string, maxAttempts int, log *logrus.Logger) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var (
		body    []byte
		attempt int
	)
	operation := func() error {
		attempt++

		request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		response, err := client.Do(request)
		if err != nil {
			log.WithFields(logrus.Fields{"url": url, "attempt": attempt}).Warnf("fetch failed: %v", err)
			return err
		}
		defer response.Body.Close()

		if response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests {
			log.WithFields(logrus.Fields{"url": url, "attempt": attempt}).Warnf("fetch returned %s", response.Status)
			return fmt.Errorf("HTTP error! status: %d", response.StatusCode)
		}
		if response.StatusCode < 200 || response.StatusCode > 299 {
			return backoff.Permanent(fmt.Errorf("HTTP error! status: %d", response.StatusCode))
		}

		body, err = io.ReadAll(response.Body)
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}
