package contexts

import (
	"github.com/hmartiniano/variant-catalog/models"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/sanitation"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"

	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

type (
	// "Helper" Context to pass into routes that need
	//  the loaded dataset and other singletons
	VariantCatalogContext struct {
		echo.Context
		Config            *models.Config
		Settings          *fields.Settings
		Log               *logrus.Logger
		LoadService       *loading.LoadService
		VariantService    *variantsService.VariantService
		SanitationService *sanitation.SanitationService

		// set by middleware
		Gene string
		Term string
	}
)
