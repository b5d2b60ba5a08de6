package conversion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hmartiniano/variant-catalog/models/ingest"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultGeneColumn = "Gene"

	isoDateTime = "2006-01-02T15:04:05"
)

var (
	ErrNoSheets = errors.New("workbook has no sheets")

	jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

	// quoted literals, [colour]/[$-locale] sections and escaped characters
	numFmtLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)
)

type (
	Options struct {
		GeneColumn string
		Sheet      string // first sheet when empty
	}

	// GeneDocument is the dataset shape written for each gene; metadata
	// fields are left empty for curators to fill in.
	GeneDocument struct {
		FullName   string `json:"fullName"`
		Chromosome string `json:"chromosome"`
		Summary    string `json:"summary"`
		Variants   []Row  `json:"variants"`
	}

	// Row is one variant; it encodes its fields in sheet column order.
	Row struct {
		keys   []string
		values map[string]interface{}
	}

	MissingColumnError struct {
		Column    string
		Available []string
	}
)

func NewRow(capacity int) Row {
	return Row{keys: make([]string, 0, capacity), values: make(map[string]interface{}, capacity)}
}

func (r *Row) Set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r Row) Get(key string) (interface{}, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r Row) Keys() []string {
	return r.keys
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encoder.Encode(key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encoder.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("gene column '%s' not found. Available columns: %v", e.Column, e.Available)
}

// Convert reads the spreadsheet at input and writes the dataset JSON to output
func Convert(input string, output string, opts Options, log *logrus.Logger) (ingest.ConversionReport, error) {
	in, err := os.Open(input)
	if err != nil {
		return ingest.ConversionReport{}, fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	dataset, report, err := ReadWorkbook(in, opts, log)
	if err != nil {
		return report, err
	}
	report.Input = input
	report.Output = output

	out, err := os.Create(output)
	if err != nil {
		return report, fmt.Errorf("creating %s: %w", output, err)
	}
	defer out.Close()

	if err := WriteDataset(out, dataset); err != nil {
		return report, fmt.Errorf("writing %s: %w", output, err)
	}

	log.WithFields(logrus.Fields{
		"input":    input,
		"output":   output,
		"genes":    report.GeneCount,
		"variants": report.VariantCount,
	}).Info("Successfully converted workbook")

	return report, nil
}

// ReadWorkbook groups the rows of one sheet by gene. The header row names
// the variant fields; the gene column itself is dropped from each variant.
func ReadWorkbook(r io.Reader, opts Options, log *logrus.Logger) (map[string]*GeneDocument, ingest.ConversionReport, error) {
	report := ingest.ConversionReport{}

	geneColumn := opts.GeneColumn
	if geneColumn == "" {
		geneColumn = DefaultGeneColumn
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, report, fmt.Errorf("reading workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, report, ErrNoSheets
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, report, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, report, &MissingColumnError{Column: geneColumn, Available: []string{}}
	}

	columns := headerNames(rows[0])
	report.Columns = columns

	geneIndex := -1
	for i, name := range columns {
		if name == geneColumn {
			geneIndex = i
			break
		}
	}
	if geneIndex < 0 {
		return nil, report, &MissingColumnError{Column: geneColumn, Available: columns}
	}

	typed := newCellTypes(f, sheet)

	dataset := map[string]*GeneDocument{}
	for i, row := range rows[1:] {
		// rows are 1-based and the header occupies the first one
		rowNumber := i + 2

		gene := strings.TrimSpace(cell(row, geneIndex))
		if gene == "" {
			log.WithField("row", rowNumber).Warnf("Skipping row with missing gene name in column '%s'", geneColumn)
			report.SkippedRows = append(report.SkippedRows, rowNumber)
			continue
		}

		doc, ok := dataset[gene]
		if !ok {
			doc = &GeneDocument{Variants: []Row{}}
			dataset[gene] = doc
			report.GeneCount++
		}

		variant := NewRow(len(columns) - 1)
		for c, name := range columns {
			if c == geneIndex {
				continue
			}
			text := cell(row, c)
			if value, ok := typed.convert(c, rowNumber, text); ok {
				variant.Set(name, value)
				continue
			}
			variant.Set(name, cellValue(text))
		}
		doc.Variants = append(doc.Variants, variant)
		report.VariantCount++
	}

	return dataset, report, nil
}

// WriteDataset encodes with 4-space indentation and without HTML escaping
func WriteDataset(w io.Writer, dataset map[string]*GeneDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(dataset)
}

// headerNames names blank headers "Unnamed: <i>" and suffixes repeated
// ones with ".1", ".2", ...
func headerNames(header []string) []string {
	names := make([]string, 0, len(header))
	seen := map[string]int{}
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names = append(names, name)
	}
	return names
}

// short rows omit trailing empty cells
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func cellValue(text string) interface{} {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if jsonNumber.MatchString(trimmed) {
		return json.Number(trimmed)
	}
	return text
}

// cellTypes recovers booleans and dates from raw cell values, which
// excelize reports as "0"/"1" and serial day numbers.
type cellTypes struct {
	file     *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newCellTypes(f *excelize.File, sheet string) *cellTypes {
	d := &cellTypes{file: f, sheet: sheet, styles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// convert returns a bool for boolean cells and an ISO 8601 timestamp for
// date-formatted numeric cells.
func (d *cellTypes) convert(col int, rowNumber int, raw string) (interface{}, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, false
	}
	name, err := excelize.CoordinatesToCellName(col+1, rowNumber)
	if err != nil {
		return nil, false
	}

	if serial == 0 || serial == 1 {
		if cellType, err := d.file.GetCellType(d.sheet, name); err == nil && cellType == excelize.CellTypeBool {
			return serial == 1, true
		}
	}

	styleId, err := d.file.GetCellStyle(d.sheet, name)
	if err != nil || !d.isDateStyle(styleId) {
		return nil, false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return nil, false
	}
	t = t.Round(time.Microsecond)
	if t.Nanosecond() != 0 {
		return t.Format(isoDateTime + ".000000"), true
	}
	return t.Format(isoDateTime), true
}

func (d *cellTypes) isDateStyle(styleId int) bool {
	if known, ok := d.styles[styleId]; ok {
		return known
	}
	isDate := false
	if style, err := d.file.GetStyle(styleId); err == nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormat(*style.CustomNumFmt)
		} else {
			isDate = isBuiltInDateFormat(style.NumFmt)
		}
	}
	d.styles[styleId] = isDate
	return isDate
}

func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormat reports whether a custom number format renders dates or times
func IsDateFormat(format string) bool {
	stripped := strings.ToLower(numFmtLiterals.ReplaceAllString(format, ""))
	if section := strings.Index(stripped, ";"); section >= 0 {
		stripped = stripped[:section]
	}
	return strings.ContainsAny(stripped, "ydhs") || strings.Contains(stripped, "mm")
}
