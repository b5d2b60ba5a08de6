package links

import (
	"net/url"
	"strings"
)

const idPlaceholder = "{id}"

// External link URL templates
const (
	ClinVarTemplate        = "https://www.ncbi.nlm.nih.gov/clinvar/variation/{id}/"
	AlleleRegistryTemplate = "https://reg.clinicalgenome.org/redmine/projects/registry/genboree_registry/by_canonicalid?canonicalid={id}"
	PubMedTemplate         = "https://pubmed.ncbi.nlm.nih.gov/{id}/"
)

func Expand(template string, id string) string {
	return strings.ReplaceAll(template, idPlaceholder, url.PathEscape(strings.TrimSpace(id)))
}

func ClinVar(id string) string        { return Expand(ClinVarTemplate, id) }
func AlleleRegistry(id string) string { return Expand(AlleleRegistryTemplate, id) }
func PubMed(id string) string         { return Expand(PubMedTemplate, id) }
