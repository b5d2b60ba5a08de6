package chromosome

import (
	"strconv"
	"strings"
)

func IsValidHumanChromosome(text string) bool {
	// Check if number can be represented as an int in range 1-22
	if chromNumber, err := strconv.Atoi(text); err == nil {
		return chromNumber > 0 && chromNumber < 23
	}

	switch strings.ToLower(text) {
	case "x", "y", "m", "mt":
		return true
	}
	return false
}

// FromCytoband extracts the chromosome of a cytogenetic location such as
// "19p13.2", "chrX" or "Xq28".
func FromCytoband(location string) (string, bool) {
	text := strings.TrimSpace(location)
	if len(text) >= 3 && strings.EqualFold(text[:3], "chr") {
		text = text[3:]
	}

	end := strings.IndexAny(text, "pPqQ")
	if end < 0 {
		end = len(text)
	}
	chrom := strings.ToUpper(text[:end])
	if !IsValidHumanChromosome(chrom) {
		return "", false
	}
	return chrom, true
}
