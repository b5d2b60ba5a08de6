package middleware

import (
	"net/http"
	"strings"

	"github.com/hmartiniano/variant-catalog/contexts"
	"github.com/hmartiniano/variant-catalog/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a non-blank `gene` HTTP query parameter was provided
*/
func MandateGeneAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gene := c.QueryParam("gene")
		if len(strings.TrimSpace(gene)) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please select a gene"))
		}

		// forward the raw value down the pipeline
		gc := c.(*contexts.VariantCatalogContext)
		gc.Gene = gene

		return next(gc)
	}
}

/*
Echo middleware to ensure a non-blank `term` HTTP query parameter was provided
*/
func MandateTermAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		term := c.QueryParam("term")
		if len(strings.TrimSpace(term)) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please enter a variant identifier"))
		}

		// the raw term is echoed back in not-found messages
		gc := c.(*contexts.VariantCatalogContext)
		gc.Term = term

		return next(gc)
	}
}

func MandateGenePathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gene := c.Param("gene")
		if len(strings.TrimSpace(gene)) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing gene"))
		}

		gc := c.(*contexts.VariantCatalogContext)
		gc.Gene = gene
		return next(gc)
	}
}
