package indexes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var ErrEmptyDataset = errors.New("dataset contains no genes")

type rawGene struct {
	FullName   interface{}               `json:"fullName"`
	Chromosome interface{}               `json:"chromosome"`
	Summary    interface{}               `json:"summary"`
	Variants   *[]map[string]interface{} `json:"variants"`
}

// DecodeDataset reads a `{ "<gene symbol>": { ..., "variants": [...] } }`
// JSON document and validates every variant value against the supported
// shapes.
func DecodeDataset(r io.Reader) (map[string]GeneRecord, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw map[string]rawGene
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	genes := make(map[string]GeneRecord, len(raw))
	for symbol, rg := range raw {
		if strings.TrimSpace(symbol) == "" {
			return nil, errors.New("dataset contains a blank gene symbol")
		}
		if rg.Variants == nil {
			return nil, fmt.Errorf("gene %s: missing 'variants' list", symbol)
		}

		gene := GeneRecord{
			FullName:   Stringify(rg.FullName),
			Chromosome: Stringify(rg.Chromosome),
			Summary:    Stringify(rg.Summary),
			Variants:   make([]VariantRecord, 0, len(*rg.Variants)),
		}
		for i, rv := range *rg.Variants {
			if rv == nil {
				return nil, fmt.Errorf("gene %s: variant %d is null", symbol, i)
			}
			variant, err := NormalizeVariant(rv)
			if err != nil {
				return nil, fmt.Errorf("gene %s: variant %d: %w", symbol, i, err)
			}
			gene.Variants = append(gene.Variants, variant)
		}
		genes[symbol] = gene
	}

	return genes, nil
}

func NormalizeVariant(raw map[string]interface{}) (VariantRecord, error) {
	variant := make(VariantRecord, len(raw))
	for key, value := range raw {
		normalized, err := normalizeValue(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		variant[key] = normalized
	}
	return variant, nil
}

func normalizeValue(value interface{}) (interface{}, error) {
	switch val := value.(type) {
	case nil, string, bool, []string, []FunctionalStudy:
		return val, nil
	case json.Number:
		return CanonicalNumber(val), nil
	case float64:
		return json.Number(strconv.FormatFloat(val, 'f', -1, 64)), nil
	case int:
		return json.Number(strconv.Itoa(val)), nil
	case int64:
		return json.Number(strconv.FormatInt(val, 10)), nil
	case []interface{}:
		return normalizeList(val)
	case map[string]interface{}:
		return nil, errors.New("nested objects are not supported")
	default:
		return nil, fmt.Errorf("unsupported value type %T", val)
	}
}

func normalizeList(list []interface{}) (interface{}, error) {
	if len(list) == 0 {
		return []string{}, nil
	}

	switch list[0].(type) {
	case string:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil

	case map[string]interface{}:
		for i, item := range list {
			if _, ok := item.(map[string]interface{}); !ok {
				return nil, fmt.Errorf("list item %d: expected study object, got %T", i, item)
			}
		}
		return DecodeStudies(list)

	default:
		return nil, fmt.Errorf("unsupported list item type %T", list[0])
	}
}

// DecodeStudies decodes a list of generic objects into functional studies.
// Numeric year / pubmed ids and yes/no highlight flags are accepted.
func DecodeStudies(input interface{}) ([]FunctionalStudy, error) {
	var studies []FunctionalStudy
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(numberToTextHook),
			mapstructure.DecodeHookFuncType(yesNoToBoolHook),
		),
		WeaklyTypedInput: true,
		Result:           &studies,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("decoding functional studies: %w", err)
	}
	return studies, nil
}

func numberToTextHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	number, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}
	return CanonicalNumber(number).String(), nil
}

func yesNoToBoolHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())) {
	case "yes", "y":
		return true, nil
	case "no", "n", "":
		return false, nil
	}
	return data, nil
}
