package loadState

import "github.com/hmartiniano/variant-catalog/models/constants"

const (
	Pending constants.LoadState = "Pending"
	Loading constants.LoadState = "Loading"
	Ready   constants.LoadState = "Ready"
	Failed  constants.LoadState = "Failed"
)
