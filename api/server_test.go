package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hmartiniano/variant-catalog/api"
	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/sanitation"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"
	"github.com/hmartiniano/variant-catalog/tests/common"

	. "github.com/ahmetb/go-linq"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, source string, location string) *echo.Echo {
	cfg := common.InitConfig()
	cfg.Dataset.Source = source
	cfg.Dataset.Location = location
	log := common.NewTestLogger()
	settings := fields.Default()

	loader := loading.NewLoadService(cfg, log)
	loader.Load(context.Background())

	vs := variantsService.NewVariantService(cfg, settings, loader, log)
	return api.NewServer(api.Services{
		Config:     cfg,
		Settings:   settings,
		Log:        log,
		Loader:     loader,
		Variants:   vs,
		Sanitation: sanitation.NewSanitationService(cfg, settings, loader, vs, log),
	})
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func searchPath(gene string, term string) string {
	q := url.Values{}
	q.Set("gene", gene)
	q.Set("term", term)
	return "/variants/search?" + q.Encode()
}

func TestVariantsSearch(t *testing.T) {
	e := newTestServer(t, "embedded", "")

	t.Run("should render a found variant", func(t *testing.T) {
		rec := get(e, searchPath("LDLR", " FH-toulouse "))
		require.Equal(t, http.StatusOK, rec.Code)

		body := common.GetJsonBody(t, rec)
		assert.Equal(t, string(outcome.Found), body["outcome"])
		assert.Equal(t, "LDLR", body["gene"])
		assert.NotEmpty(t, body["queryId"])

		result := body["result"].(map[string]interface{})
		summary := result["summary"].([]interface{})
		assert.True(t, From(summary).AnyWithT(func(item interface{}) bool {
			return item.(map[string]interface{})["value"] == "c.681C>G"
		}))
	})

	t.Run("should echo the raw term when the variant is missing", func(t *testing.T) {
		rec := get(e, searchPath("LDLR", " Nope "))
		require.Equal(t, http.StatusOK, rec.Code)

		body := common.GetJsonBody(t, rec)
		assert.Equal(t, string(outcome.VariantNotFound), body["outcome"])
		assert.Equal(t, "Variant ' Nope ' was not found in gene LDLR.", body["message"])
		assert.NotContains(t, body, "result")
	})

	t.Run("should report an unknown gene", func(t *testing.T) {
		body := common.GetJsonBody(t, get(e, searchPath("XYZ", "rs1")))
		assert.Equal(t, string(outcome.GeneUnknown), body["outcome"])
	})

	t.Run("should reject empty submissions", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(e, "/variants/search?term=rs1").Code)
		assert.Equal(t, http.StatusBadRequest, get(e, "/variants/search?gene=LDLR&term=%20%20").Code)
	})

	t.Run("should count outcomes", func(t *testing.T) {
		body := common.GetJsonBody(t, get(e, "/variants/stats"))
		assert.Equal(t, float64(1), body["found"])
		assert.Equal(t, float64(1), body["variantNotFound"])
		assert.Equal(t, float64(1), body["geneUnknown"])
	})
}

func TestGenesRoutes(t *testing.T) {
	e := newTestServer(t, "embedded", "")

	body := common.GetJsonBody(t, get(e, "/genes"))
	assert.Equal(t, []interface{}{"APOB", "LDLR", "PCSK9"}, body["results"])

	rec := get(e, "/genes/PCSK9")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Proprotein convertase subtilisin/kexin type 9", common.GetJsonBody(t, rec)["fullName"])

	assert.Equal(t, http.StatusNotFound, get(e, "/genes/XYZ").Code)
	assert.Equal(t, http.StatusOK, get(e, "/genes/overview").Code)
}

func TestServiceRoutes(t *testing.T) {
	e := newTestServer(t, "embedded", "")

	assert.Equal(t, http.StatusOK, get(e, "/").Code)

	info := common.GetJsonBody(t, get(e, "/service-info"))
	assert.Equal(t, "Variant Catalog Service", info["name"])

	display := common.GetJsonBody(t, get(e, "/display-config"))
	assert.Contains(t, display, "search")
	assert.Contains(t, display, "display")

	status := common.GetJsonBody(t, get(e, "/dataset/status"))
	assert.Equal(t, "Ready", status["state"])

	audit := common.GetJsonBody(t, get(e, "/variants/audit"))
	assert.Equal(t, float64(0), audit["count"])

	overview := common.GetJsonBody(t, get(e, "/variants/overview"))
	assert.Contains(t, overview, "classifications")
}

func TestQueriesRefusedAfterLoadFailure(t *testing.T) {
	e := newTestServer(t, "file", "/nonexistent/data.json")

	for _, path := range []string{
		searchPath("LDLR", "rs121908028"),
		"/genes",
		"/genes/LDLR",
		"/genes/overview",
		"/variants/overview",
		"/variants/audit",
	} {
		rec := get(e, path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}

	status := common.GetJsonBody(t, get(e, "/dataset/status"))
	assert.Equal(t, "Failed", status["state"])
}
