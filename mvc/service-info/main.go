package serviceInfo

import (
	"net/http"

	"github.com/hmartiniano/variant-catalog/contexts"
	serviceInfo "github.com/hmartiniano/variant-catalog/models/constants/service-info"

	"github.com/labstack/echo"
)

// GA4GH service-info: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  serviceInfo.SERVICE_VERSION,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"organization": map[string]string{
			"name": "ClinGen FH VCEP",
			"url":  "https://clinicalgenome.org/affiliation/50004/",
		},
		"contactUrl": gc.Config.Api.ServiceContact,
		"version":    serviceInfo.SERVICE_VERSION,
	})
}

// GetDisplayConfig exposes the labels, tooltips and highlight rules
// clients need to present search results
func GetDisplayConfig(c echo.Context) error {
	gc := c.(*contexts.VariantCatalogContext)
	return c.JSON(http.StatusOK, gc.Settings)
}
