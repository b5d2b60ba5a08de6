package fields

import (
	styleTag "github.com/hmartiniano/variant-catalog/models/constants/style-tag"
)

// Field names used by the FH VCEP dataset
const (
	GeneKey             = "Gene"
	DnaChangeKey        = "c."
	ProteinChangeKey    = "p."
	HasStudyKey         = "Has functional study?"
	ClassificationKey   = "FH VCEP Classification"
	CuratedByVcepKey    = "Curated by FH VCEP?"
	LocationKey         = "Location"
	VariantTypeKey      = "Variant type"
	AlleleTypeKey       = "Allele type"
	ClinVarIdKey        = "ClinVar ID"
	AlleleRegistryIdKey = "ClinGen Allele Registry ID"
	EvidenceCodesKey    = "FH VCEP evidence codes"
	GuidelineVersionKey = "Guideline version"
	GuidelineLinkKey    = "link"
	ClassifiedOnKey     = "Date of classification"
	CuratedByKey        = "Curated by"
	StudiedInKey        = "studied in PerMedFH?"
	AliasesKey          = "aliases"
	IdKey               = "id"
	StudiesKey          = "functionalStudies"

	StudyTypePrefix   = "Type of functional study (sample type, assay)"
	StudyResultPrefix = "Result of functional study"
	StudyAuthorPrefix = "Authors"
	StudyPmidPrefix   = "PMID"
)

func Default() *Settings {
	summary := []string{GeneKey, DnaChangeKey, ProteinChangeKey, HasStudyKey, ClassificationKey, CuratedByVcepKey}
	summaryFields := make([]Field, 0, len(summary))
	for _, key := range summary {
		summaryFields = append(summaryFields, Field{Key: key, Label: key})
	}

	return &Settings{
		Search: SearchConfig{
			SearchableFields: []string{IdKey, DnaChangeKey, ProteinChangeKey, ClinVarIdKey, AlleleRegistryIdKey},
			AliasField:       AliasesKey,
		},
		Display: Config{
			SummaryFields: summaryFields,
			HiddenFields: []string{
				LocationKey,
				VariantTypeKey,
				AlleleTypeKey,
				ClinVarIdKey,
				AlleleRegistryIdKey,
				EvidenceCodesKey,
				GuidelineVersionKey,
				ClassifiedOnKey,
				CuratedByKey,
			},
			StudyFields: StudyFields{
				Type:   StudyTypePrefix,
				Result: StudyResultPrefix,
				Author: StudyAuthorPrefix,
				Pmid:   StudyPmidPrefix,
			},
			Tooltips: defaultTooltips(),
			// more specific matches come first: "likely pathogenic" also contains "pathogenic"
			AcmgHighlighting: HighlightRules{
				{Match: "conflicting", StyleTag: styleTag.AcmgConflicting},
				{Match: "likely pathogenic", StyleTag: styleTag.AcmgLikelyPathogenic},
				{Match: "pathogenic", StyleTag: styleTag.AcmgPathogenic},
				{Match: "vus", StyleTag: styleTag.AcmgVus},
				{Match: "uncertain significance", StyleTag: styleTag.AcmgVus},
				{Match: "likely benign", StyleTag: styleTag.AcmgLikelyBenign},
				{Match: "benign", StyleTag: styleTag.AcmgBenign},
			},
			Special: SpecialFields{
				Gene:             GeneKey,
				Classification:   ClassificationKey,
				CuratedBadge:     CuratedByVcepKey,
				ClinVarId:        ClinVarIdKey,
				AlleleRegistryId: AlleleRegistryIdKey,
				GuidelineVersion: GuidelineVersionKey,
				GuidelineLink:    GuidelineLinkKey,
				StudiedIn:        StudiedInKey,
				StudiedInLabel:   "Studied in PerMedFH?",
				Studies:          StudiesKey,
			},
			StudiedInImage: "placeholder.png",
		},
	}
}

func defaultTooltips() map[string]string {
	return map[string]string{
		"variant code":      "variant code",
		GeneKey:             "Reference sequences used were: APOB: NM_000384.3, LDLR: NM_000527.5, PCSK9: NM_174936.4",
		DnaChangeKey:        "Variant at the DNA level",
		ProteinChangeKey:    "Variant at protein level",
		HasStudyKey:         "Yes - published functional study. Under review - please check back later, as information is being updated. Ongoing - Variant is currently being studied functionally, please come back later for updates.",
		ClassificationKey:   "Variant classification according to the latest approved ACMG guidelines, with specifications for each gene by the ClinGen FH Variant Curation Expert Panel (More details here: https://clinicalgenome.org/affiliation/50004/)",
		CuratedByVcepKey:    "If the variant was classified by the ClinGen FH VCEP (https://clinicalgenome.org/affiliation/50004/)",
		LocationKey:         "Location in the gene - exon, intron, 5'UTR, 3'UTR, promoter",
		VariantTypeKey:      "Variant type - missense, nonsense, frameshift, synonymous, in frame, large deletions or duplications (CNVs)",
		AlleleTypeKey:       "If the variant has a functional study: Null = variants that confer less than 10% of wild-type activity in either step of LDLR cycle (expression, binding or uptake); Defective = variants that confer between 10% and 70% of wild-type activity in either step of LDLR cycle (expression, binding or uptake), different thresholds are used for luciferase assays; Normal: variant that confers more than 90% of wild-type activity in all steps of LDLR cycle (expression, binding and uptake). NTD: not possible to determine, for example: Variants that affect splicing cannot be assigned either Null or Defective unless the LDLR cycle has also been studied. Results from heterozgyous patient cells should be interpreted with care.",
		ClinVarIdKey:        "Link to ClinVar database for this variant",
		AlleleRegistryIdKey: "Link to ClinGen Allele Registry database for this variant",
		EvidenceCodesKey:    "Evidence codes met to reach the ACMG classification of this variant (More details here: https://clinicalgenome.org/affiliation/50004/)",
		ClassifiedOnKey:     "Variant classifications are always linked to a date of classification. Newer evidence should be evaluated when reporting this variant",
		CuratedByKey:        "Who has classified this variant: FH VCEP - FH Variant Curation Expert Panel. PerMedFH - not yet classified at the FH VCEP level, rather classified by the investigators of the PerMedFH project",
		StudiedInKey:        "Variant studied as part of the PerMedFH project. Please see specific workpackage page for details",
		StudyTypePrefix:     "What type of functional study was performed, which was the sample (heterologous or patient cells) and which assay was used",
		StudyResultPrefix:   "Result of the functional study - which percentage of wild-type activity does the variant retain",
		StudyAuthorPrefix:   "Authors of the publication",
		StudyPmidPrefix:     "Publication detailing the functional studies performed",
	}
}
