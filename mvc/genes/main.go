package genes

import (
	"fmt"
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"
	sortDirection "github.com/hmartiniano/variant-catalog/models/constants/sort"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/dtos/errors"

	"github.com/labstack/echo"
)

// GetGenes lists the gene symbols in ascending order
func GetGenes(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("GetGenes hit!")

	s, err := gc.LoadService.Store()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(err.Error()))
	}

	symbols := s.Symbols()
	return c.JSON(http.StatusOK, dtos.GenesResponseDTO{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   len(symbols),
		Results: symbols,
	})
}

func GetGenesOverview(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("GetGenesOverview hit!")

	genes, err := gc.VariantService.GetGenesOverview(sortDirection.CastToSortDirection(c.QueryParam("sort")))
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(err.Error()))
	}

	return c.JSON(http.StatusOK, genes)
}

func GetGene(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	gc.Log.Debug("GetGene hit!")

	gene, ok, err := gc.VariantService.GetGene(gc.Gene)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable(err.Error()))
	}
	if !ok {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(fmt.Sprintf("Gene %s is not available.", gc.Gene)))
	}

	return c.JSON(http.StatusOK, gene)
}
