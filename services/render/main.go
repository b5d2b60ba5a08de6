package render

import (
	"fmt"
	"strings"

	"github.com/hmartiniano/variant-catalog/models/constants"
	"github.com/hmartiniano/variant-catalog/models/constants/links"
	"github.com/hmartiniano/variant-catalog/models/constants/markers"
	styleTag "github.com/hmartiniano/variant-catalog/models/constants/style-tag"
	"github.com/hmartiniano/variant-catalog/models/dtos"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
)

/*
	Pure projections of a variant record into display data.
	None of these return errors: absent fields become markers.NotAvailable
*/

func Variant(variant indexes.VariantRecord, cfg *fields.Config) dtos.VariantDisplay {
	return dtos.VariantDisplay{
		Summary: Summary(variant, cfg),
		Details: Details(variant, cfg),
		Studies: Studies(variant, cfg),
	}
}

// ClassifyHighlight picks the style tag of the first rule (in configured
// order) whose match string is contained in the value, ignoring case.
func ClassifyHighlight(value string, rules fields.HighlightRules) constants.StyleTag {
	if strings.TrimSpace(value) == "" {
		return styleTag.Secondary
	}
	if tag, ok := rules.Match(value); ok {
		return tag
	}
	return styleTag.Secondary
}

func Summary(variant indexes.VariantRecord, cfg *fields.Config) []dtos.SummaryItem {
	items := make([]dtos.SummaryItem, 0, len(cfg.SummaryFields))
	for _, field := range cfg.SummaryFields {
		item := dtos.SummaryItem{
			Key:     field.Key,
			Label:   field.Label,
			Value:   variant.TextOr(field.Key, markers.NotAvailable),
			Tooltip: cfg.Tooltip(field.Key),
		}

		switch field.Key {
		case cfg.Special.Classification:
			value, _ := variant.Text(field.Key)
			item.StyleTag = ClassifyHighlight(value, cfg.AcmgHighlighting)
		case cfg.Special.CuratedBadge:
			if variant.Has(field.Key) {
				item.StyleTag = styleTag.YesNo(variant.IsAffirmative(field.Key))
			}
		}

		items = append(items, item)
	}
	return items
}

func Details(variant indexes.VariantRecord, cfg *fields.Config) []dtos.DetailItem {
	items := make([]dtos.DetailItem, 0, len(cfg.HiddenFields)+1)
	for _, key := range cfg.HiddenFields {
		value, present := variant.Text(key)
		item := dtos.DetailItem{
			Key:     key,
			Label:   key,
			Value:   markers.NotAvailable,
			Tooltip: cfg.Tooltip(key),
		}
		if present {
			item.Value = value
		}

		switch {
		case key == cfg.Special.CuratedBadge:
			if !present {
				continue
			}
			item.StyleTag = styleTag.YesNo(variant.IsAffirmative(key))
		case key == cfg.Special.ClinVarId && present:
			item.Link = links.ClinVar(value)
		case key == cfg.Special.AlleleRegistryId && present:
			item.Link = links.AlleleRegistry(value)
		case key == cfg.Special.GuidelineVersion && present:
			item.Link = variant.TextOr(cfg.Special.GuidelineLink, markers.PlaceholderHref)
		}

		items = append(items, item)
	}

	if cfg.Special.StudiedIn != "" && variant.IsAffirmative(cfg.Special.StudiedIn) {
		label := cfg.Special.StudiedInLabel
		if label == "" {
			label = cfg.Special.StudiedIn
		}
		items = append(items, dtos.DetailItem{
			Key:     cfg.Special.StudiedIn,
			Label:   label,
			Value:   variant.TextOr(cfg.Special.StudiedIn, markers.NotAvailable),
			Tooltip: cfg.Tooltip(cfg.Special.StudiedIn),
			Image:   cfg.StudiedInImage,
		})
	}

	return items
}

func Studies(variant indexes.VariantRecord, cfg *fields.Config) dtos.StudyTable {
	studies := ExtractStudies(variant, cfg)
	if len(studies) == 0 {
		return dtos.StudyTable{
			Rows:    []dtos.StudyRow{},
			Empty:   true,
			Message: markers.NoStudiesMessage,
		}
	}

	rows := make([]dtos.StudyRow, 0, len(studies))
	for _, study := range studies {
		rows = append(rows, dtos.StudyRow{
			Type:        orNotAvailable(study.Type),
			Result:      orNotAvailable(study.Result),
			Publication: publicationCell(study),
			Highlighted: study.IsHighlighted,
		})
	}

	return dtos.StudyTable{
		Headers: []string{
			headerOr(cfg.StudyFields.Type, "Type"),
			headerOr(cfg.StudyFields.Result, "Result"),
			markers.PublicationLabel,
		},
		Rows: rows,
	}
}

// ExtractStudies reads the nested study list when present, otherwise
// unfolds the indexed encoding: `<type prefix>1`, `<type prefix>2`, ...
// stopping at the first missing index (or markers.MaxIndexedStudies).
func ExtractStudies(variant indexes.VariantRecord, cfg *fields.Config) []indexes.FunctionalStudy {
	if cfg.Special.Studies != "" {
		if nested := variant.Studies(cfg.Special.Studies); len(nested) > 0 {
			return nested
		}
	}

	prefixes := cfg.StudyFields
	if prefixes.Type == "" {
		return nil
	}

	var studies []indexes.FunctionalStudy
	for i := 1; i <= markers.MaxIndexedStudies; i++ {
		if !variant.Has(indexedKey(prefixes.Type, i)) {
			break
		}
		studies = append(studies, indexes.FunctionalStudy{
			Type:     indexedText(variant, prefixes.Type, i),
			Result:   indexedText(variant, prefixes.Result, i),
			Author:   indexedText(variant, prefixes.Author, i),
			PubmedId: indexedText(variant, prefixes.Pmid, i),
		})
	}
	return studies
}

func publicationCell(study indexes.FunctionalStudy) dtos.PublicationCell {
	pmid := strings.TrimSpace(study.PubmedId)
	if pmid == "" {
		return dtos.PublicationCell{Text: markers.NotAvailable}
	}

	text := strings.TrimSpace(study.Author)
	if text == "" {
		text = markers.LinkText
	} else if year := strings.TrimSpace(study.Year); year != "" {
		text = fmt.Sprintf("%s (%s)", text, year)
	}

	return dtos.PublicationCell{Text: text, Href: links.PubMed(pmid)}
}

func indexedKey(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}

func indexedText(variant indexes.VariantRecord, prefix string, i int) string {
	if prefix == "" {
		return ""
	}
	text, _ := variant.Text(indexedKey(prefix, i))
	return text
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return markers.NotAvailable
	}
	return value
}

func headerOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
