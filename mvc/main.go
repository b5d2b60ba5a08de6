package mvc

import (
	"github.com/hmartiniano/variant-catalog/contexts"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"

	"github.com/labstack/echo"
)

// RetrieveCommonElements unpacks the query values forwarded by middleware
func RetrieveCommonElements(c echo.Context) (*variantsService.VariantService, string, string) {
	gc := c.(*contexts.VariantCatalogContext)
	return gc.VariantService, gc.Gene, gc.Term
}
