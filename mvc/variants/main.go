package variants

import (
	"fmt"
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"
	"github.com/hmartiniano/variant-catalog/models/constants/outcome"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/dtos/errors"
	"github.com/hmartiniano/variant-catalog/mvc"
	"github.com/hmartiniano/variant-catalog/services/loading"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

func VariantsSearch(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("VariantsSearch hit!")

	vs, gene, term := mvc.RetrieveCommonElements(c)

	result, err := vs.Search(gene, term)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(loading.LoadFailureMessage))
	}

	response := dtos.VariantSearchResponseDTO{
		QueryId: uuid.New().String(),
		Status:  http.StatusOK,
		Outcome: result.Kind,
		Gene:    result.GeneSymbol,
		Term:    result.Term,
	}

	switch result.Kind {
	case outcome.Found:
		response.Message = "variant found"
		response.Result = vs.Render(result)
	case outcome.GeneUnknown:
		response.Message = fmt.Sprintf("Gene %s is not available.", result.GeneSymbol)
	default:
		response.Message = fmt.Sprintf("Variant '%s' was not found in gene %s.", result.Term, result.GeneSymbol)
	}

	return c.JSON(http.StatusOK, response)
}

func GetVariantsOverview(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("GetVariantsOverview hit!")

	overview, err := gc.VariantService.GetVariantsOverview(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(err.Error()))
	}

	return c.JSON(http.StatusOK, overview)
}

func VariantsAudit(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("VariantsAudit hit!")

	shadowed, invalidLocations, err := gc.SanitationService.Audit()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(err.Error()))
	}

	return c.JSON(http.StatusOK, dtos.AuditResponseDTO{
		Status:           http.StatusOK,
		Message:          fmt.Sprintf("%d shadowed identifier(s)", len(shadowed)),
		Count:            len(shadowed),
		Results:          shadowed,
		InvalidLocations: invalidLocations,
	})
}

func VariantsStats(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	return c.JSON(http.StatusOK, gc.VariantService.Stats())
}
