package fields

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hmartiniano/variant-catalog/models/constants"

	yaml "gopkg.in/yaml.v2"
)

type (
	Settings struct {
		Search  SearchConfig `yaml:"search" json:"search"`
		Display Config       `yaml:"display" json:"display"`
	}

	SearchConfig struct {
		SearchableFields []string `yaml:"searchableFields" json:"searchableFields"`
		AliasField       string   `yaml:"aliasField" json:"aliasField"`
	}

	Config struct {
		SummaryFields    []Field           `yaml:"summaryFields" json:"summaryFields"`
		HiddenFields     []string          `yaml:"hiddenFields" json:"hiddenFields"`
		StudyFields      StudyFields       `yaml:"studyFields" json:"studyFields"`
		Tooltips         map[string]string `yaml:"tooltips" json:"tooltips"`
		AcmgHighlighting HighlightRules    `yaml:"acmgHighlighting" json:"acmgHighlighting"`
		Special          SpecialFields     `yaml:"specialFields" json:"specialFields"`
		StudiedInImage   string            `yaml:"studiedInImage" json:"studiedInImage"`
	}

	Field struct {
		Key   string `yaml:"key" json:"key"`
		Label string `yaml:"label" json:"label"`
	}

	// StudyFields maps each logical study attribute to the key (or, for the
	// indexed encoding, the key prefix) it is read from.
	StudyFields struct {
		Type   string `yaml:"type" json:"type"`
		Result string `yaml:"result" json:"result"`
		Author string `yaml:"author" json:"author"`
		Pmid   string `yaml:"pmid" json:"pmid"`
	}

	// SpecialFields names the fields that get non-plain rendering.
	SpecialFields struct {
		Gene             string `yaml:"gene" json:"gene"`
		Classification   string `yaml:"classification" json:"classification"`
		CuratedBadge     string `yaml:"curatedBadge" json:"curatedBadge"`
		ClinVarId        string `yaml:"clinVarId" json:"clinVarId"`
		AlleleRegistryId string `yaml:"alleleRegistryId" json:"alleleRegistryId"`
		GuidelineVersion string `yaml:"guidelineVersion" json:"guidelineVersion"`
		GuidelineLink    string `yaml:"guidelineLink" json:"guidelineLink"`
		StudiedIn        string `yaml:"studiedIn" json:"studiedIn"`
		StudiedInLabel   string `yaml:"studiedInLabel" json:"studiedInLabel"`
		Studies          string `yaml:"studies" json:"studies"`
	}

	HighlightRule struct {
		Match    string             `json:"match"`
		StyleTag constants.StyleTag `json:"styleTag"`
	}

	// HighlightRules is evaluated in order; the first rule whose Match is a
	// substring of the value wins.
	HighlightRules []HighlightRule
)

func (h HighlightRules) Match(value string) (constants.StyleTag, bool) {
	lowered := strings.ToLower(value)
	for _, rule := range h {
		if rule.Match != "" && strings.Contains(lowered, rule.Match) {
			return rule.StyleTag, true
		}
	}
	return "", false
}

// UnmarshalYAML keeps the document order of the mapping
func (h *HighlightRules) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var ordered yaml.MapSlice
	if err := unmarshal(&ordered); err != nil {
		return err
	}

	rules := make(HighlightRules, 0, len(ordered))
	for _, item := range ordered {
		rules = append(rules, HighlightRule{
			Match:    strings.ToLower(strings.TrimSpace(fmt.Sprint(item.Key))),
			StyleTag: constants.StyleTag(fmt.Sprint(item.Value)),
		})
	}
	*h = rules
	return nil
}

func (c *Config) Tooltip(key string) string {
	return c.Tooltips[key]
}

// LoadSettings overlays the YAML document at path on top of the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing field config %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("field config %s: %w", path, err)
	}

	return settings, nil
}

func (s *Settings) Validate() error {
	if len(s.Search.SearchableFields) == 0 && s.Search.AliasField == "" {
		return errors.New("no searchable fields configured")
	}
	if s.Display.StudyFields.Type == "" {
		return errors.New("studyFields.type is required")
	}
	for i, f := range s.Display.SummaryFields {
		if f.Key == "" {
			return fmt.Errorf("summaryFields[%d]: key is required", i)
		}
		if f.Label == "" {
			s.Display.SummaryFields[i].Label = f.Key
		}
	}
	for i, key := range s.Display.HiddenFields {
		if key == "" {
			return fmt.Errorf("hiddenFields[%d]: key is required", i)
		}
	}
	return nil
}
