package api

import (
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"
	gam "github.com/hmartiniano/variant-catalog/middleware"
	"github.com/hmartiniano/variant-catalog/models"
	serviceInfo "github.com/hmartiniano/variant-catalog/models/constants/service-info"
	"github.com/hmartiniano/variant-catalog/models/fields"
	datasetMvc "github.com/hmartiniano/variant-catalog/mvc/dataset"
	genesMvc "github.com/hmartiniano/variant-catalog/mvc/genes"
	serviceInfoMvc "github.com/hmartiniano/variant-catalog/mvc/service-info"
	variantsMvc "github.com/hmartiniano/variant-catalog/mvc/variants"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/sanitation"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Config     *models.Config
	Settings   *fields.Settings
	Log        *logrus.Logger
	Loader     *loading.LoadService
	Variants   *variantsService.VariantService
	Sanitation *sanitation.SanitationService
}

// NewServer registers every route on a fresh echo instance
func NewServer(svc Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Configure Server
	e.Use(middleware.Recover())
	if svc.Config.Debug {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with the custom context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.VariantCatalogContext{
				Context:           c,
				Config:            svc.Config,
				Settings:          svc.Settings,
				Log:               svc.Log,
				LoadService:       svc.Loader,
				VariantService:    svc.Variants,
				SanitationService: svc.Sanitation,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)
	e.GET("/display-config", serviceInfoMvc.GetDisplayConfig)

	// -- Dataset
	e.GET("/dataset/status", datasetMvc.GetDatasetStatus)

	// -- Genes
	e.GET("/genes", genesMvc.GetGenes,
		// middleware
		gam.MandateDatasetLoaded)
	e.GET("/genes/overview", genesMvc.GetGenesOverview,
		// middleware
		gam.MandateDatasetLoaded)
	e.GET("/genes/:gene", genesMvc.GetGene,
		// middleware
		gam.MandateDatasetLoaded,
		gam.MandateGenePathParam)

	// -- Variants
	e.GET("/variants/search", variantsMvc.VariantsSearch,
		// middleware
		gam.MandateDatasetLoaded,
		gam.MandateGeneAttribute,
		gam.MandateTermAttribute)
	e.GET("/variants/overview", variantsMvc.GetVariantsOverview,
		// middleware
		gam.MandateDatasetLoaded)
	e.GET("/variants/audit", variantsMvc.VariantsAudit,
		// middleware
		gam.MandateDatasetLoaded)
	e.GET("/variants/stats", variantsMvc.VariantsStats)

	return e
}
