package outcome

import "github.com/hmartiniano/variant-catalog/models/constants"

const (
	Found           constants.OutcomeKind = "Found"
	VariantNotFound constants.OutcomeKind = "VariantNotFound"
	GeneUnknown     constants.OutcomeKind = "GeneUnknown"
)
