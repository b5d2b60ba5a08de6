package markers

// Display markers substituted by the renderer
const (
	NotAvailable     = "N/A"
	LinkText         = "Link"
	PlaceholderHref  = "#"
	NoStudiesMessage = "No functional studies available."
	PublicationLabel = "Publication"
)

// Upper bound on indexed study keys probed per variant (`<prefix>1`, `<prefix>2`, ...)
const MaxIndexedStudies = 100
