package styleTag

import (
	"github.com/hmartiniano/variant-catalog/models/constants"
)

// Badge tags for yes/no style fields
const (
	None    constants.StyleTag = ""
	Success constants.StyleTag = "bg-success"
	Danger  constants.StyleTag = "bg-danger"

	// used when a classification matches none of the highlighting rules
	Secondary constants.StyleTag = "bg-secondary"
)

// ACMG classification highlight tags
const (
	AcmgPathogenic       constants.StyleTag = "acmg-pathogenic"
	AcmgLikelyPathogenic constants.StyleTag = "acmg-likely-pathogenic"
	AcmgVus              constants.StyleTag = "acmg-vus"
	AcmgLikelyBenign     constants.StyleTag = "acmg-likely-benign"
	AcmgBenign           constants.StyleTag = "acmg-benign"
	AcmgConflicting      constants.StyleTag = "acmg-conflicting"
)

func YesNo(affirmative bool) constants.StyleTag {
	if affirmative {
		return Success
	}
	return Danger
}
