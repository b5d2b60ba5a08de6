package middleware

import (
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"
	"github.com/hmartiniano/variant-catalog/models/dtos/errors"
	"github.com/hmartiniano/variant-catalog/services/loading"

	"github.com/labstack/echo"
)

/*
Echo middleware to refuse queries while no dataset is loaded
*/
func MandateDatasetLoaded(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.VariantCatalogContext)

		if _, err := gc.LoadService.Store(); err != nil {
			gc.Log.WithError(err).Debug("refusing query, dataset unavailable")
			return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(loading.LoadFailureMessage))
		}

		return next(gc)
	}
}
