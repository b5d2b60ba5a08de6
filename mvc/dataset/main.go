package dataset

import (
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"

	"github.com/labstack/echo"
)

func GetDatasetStatus(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	return c.JSON(http.StatusOK, gc.LoadService.Report())
}
