package indexes

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type GeneRecord struct {
	FullName   string          `json:"fullName"`
	Chromosome string          `json:"chromosome,omitempty"`
	Summary    string          `json:"summary"`
	Variants   []VariantRecord `json:"variants"`
}

// VariantRecord is a sparse field-name -> value mapping. After decoding,
// values are one of: nil, string, bool, json.Number, []string or
// []FunctionalStudy.
type VariantRecord map[string]interface{}

type FunctionalStudy struct {
	Type          string `json:"type" mapstructure:"type"`
	Result        string `json:"result" mapstructure:"result"`
	Author        string `json:"author" mapstructure:"author"`
	Year          string `json:"year,omitempty" mapstructure:"year"`
	PubmedId      string `json:"pubmedId" mapstructure:"pubmedId"`
	IsHighlighted bool   `json:"isHighlighted,omitempty" mapstructure:"isHighlighted"`
}

// Get returns the value stored under key when it is present; nil, blank
// strings, `false` and empty lists all count as absent.
func (v VariantRecord) Get(key string) (interface{}, bool) {
	value, ok := v[key]
	if !ok || !isPresent(value) {
		return nil, false
	}
	return value, true
}

func (v VariantRecord) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

func (v VariantRecord) Text(key string) (string, bool) {
	value, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return Stringify(value), true
}

func (v VariantRecord) TextOr(key string, fallback string) string {
	if text, ok := v.Text(key); ok {
		return text
	}
	return fallback
}

// Strings returns list values as-is and scalar values as a one element list.
func (v VariantRecord) Strings(key string) []string {
	value, ok := v.Get(key)
	if !ok {
		return nil
	}
	switch val := value.(type) {
	case []string:
		return val
	case []FunctionalStudy:
		return nil
	default:
		return []string{Stringify(val)}
	}
}

// IsAffirmative reports "yes" (any casing) or boolean true.
func (v VariantRecord) IsAffirmative(key string) bool {
	value, ok := v.Get(key)
	if !ok {
		return false
	}
	switch val := value.(type) {
	case bool:
		return val
	default:
		return strings.EqualFold(strings.TrimSpace(Stringify(val)), "yes")
	}
}

func (v VariantRecord) Studies(key string) []FunctionalStudy {
	if studies, ok := v[key].([]FunctionalStudy); ok {
		return studies
	}
	return nil
}

// With returns a shallow copy of the record with key set to value.
func (v VariantRecord) With(key string, value interface{}) VariantRecord {
	clone := make(VariantRecord, len(v)+1)
	for k, val := range v {
		clone[k] = val
	}
	clone[key] = value
	return clone
}

func Stringify(value interface{}) string {
	switch val := value.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return CanonicalNumber(val).String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []string:
		return strings.Join(val, ", ")
	case []FunctionalStudy:
		return fmt.Sprintf("%d", len(val))
	default:
		return fmt.Sprint(val)
	}
}

func isPresent(value interface{}) bool {
	switch val := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case bool:
		return val
	case []string:
		return len(val) > 0
	case []FunctionalStudy:
		return len(val) > 0
	default:
		return true
	}
}

// CanonicalNumber prints decimal numbers in their shortest form, so that
// "3716.0" becomes "3716" and "1.50" becomes "1.5". Integer text is kept
// verbatim; exponents outside [1e-6, 1e21) are left untouched.
func CanonicalNumber(n json.Number) json.Number {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		return n
	}
	f, err := n.Float64()
	if err != nil {
		return n
	}
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return n
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}
