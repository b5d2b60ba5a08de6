package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Variant Catalog Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Variant Catalog API!"
	SERVICE_DESCRIPTION ServiceInfo = "Lookup service for curated genetic variant classifications (gene -> variants)."
	SERVICE_CONTACT     ServiceInfo = "mailto:variant-catalog@example.org" // default, see Config.Api.ServiceContact

	SERVICE_ARTIFACT    ServiceInfo = "variant-catalog"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.fhvcep:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
