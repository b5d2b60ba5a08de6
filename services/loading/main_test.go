package loading_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	datasetSource "github.com/hmartiniano/variant-catalog/models/constants/dataset-source"
	loadState "github.com/hmartiniano/variant-catalog/models/constants/load-state"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Dataset.Source = "embedded"

	ls := loading.NewLoadService(cfg, common.NewTestLogger())
	assert.Equal(t, loadState.Pending, ls.State())

	_, err := ls.Store()
	assert.ErrorIs(t, err, loading.ErrDatasetUnavailable)

	require.NoError(t, ls.Load(context.Background()))
	assert.Equal(t, loadState.Ready, ls.State())

	s, err := ls.Store()
	require.NoError(t, err)
	assert.Equal(t, []string{"APOB", "LDLR", "PCSK9"}, s.Symbols())

	report := ls.Report()
	assert.Equal(t, datasetSource.Embedded, report.Source)
	assert.Equal(t, s.GeneCount(), report.GeneCount)
	assert.Equal(t, s.VariantCount(), report.VariantCount)
}

func TestLoadFile(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Dataset.Source = "file"
	cfg.Dataset.Location = common.WriteTempFile(t, "data.json", common.MiniDataset)

	ls := loading.NewLoadService(cfg, common.NewTestLogger())
	require.NoError(t, ls.Load(context.Background()))

	s, err := ls.Store()
	require.NoError(t, err)
	assert.Equal(t, 2, s.GeneCount())
	assert.Equal(t, 2, s.VariantCount())
}

func TestLoadUrlRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(common.MiniDataset))
	}))
	defer server.Close()

	cfg := common.InitConfig()
	cfg.Dataset.Source = "url"
	cfg.Dataset.Location = server.URL
	cfg.Dataset.MaxFetchAttempts = 5
	cfg.Dataset.FetchTimeout = 30 * time.Second

	ls := loading.NewLoadService(cfg, common.NewTestLogger())
	require.NoError(t, ls.Load(context.Background()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, loadState.Ready, ls.State())
}

func TestLoadFailureBlocksQueries(t *testing.T) {
	t.Run("on a missing resource", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		cfg := common.InitConfig()
		cfg.Dataset.Source = "url"
		cfg.Dataset.Location = server.URL

		ls := loading.NewLoadService(cfg, common.NewTestLogger())
		err := ls.Load(context.Background())

		var failure *loading.LoadFailure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, datasetSource.Url, failure.Source)
		assert.Equal(t, loadState.Failed, ls.State())
		assert.NotEmpty(t, ls.Report().Message)

		_, storeErr := ls.Store()
		assert.True(t, errors.As(storeErr, &failure))

		// the first result is final
		assert.Equal(t, err, ls.Load(context.Background()))
	})

	t.Run("on malformed data", func(t *testing.T) {
		cfg := common.InitConfig()
		cfg.Dataset.Source = "file"
		cfg.Dataset.Location = common.WriteTempFile(t, "data.json", `{"LDLR": {"variants": [{"id": {"nested": true}}]}}`)

		ls := loading.NewLoadService(cfg, common.NewTestLogger())
		err := ls.Load(context.Background())

		var failure *loading.LoadFailure
		assert.True(t, errors.As(err, &failure))
		_, storeErr := ls.Store()
		assert.Error(t, storeErr)
	})

	t.Run("on an unknown source", func(t *testing.T) {
		cfg := common.InitConfig()
		cfg.Dataset.Source = "ftp"

		ls := loading.NewLoadService(cfg, common.NewTestLogger())
		err := ls.Load(context.Background())
		assert.ErrorIs(t, err, loading.ErrUnknownSource)
	})
}
