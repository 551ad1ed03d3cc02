package xlsxexport

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tms/internal/domain"
	"tms/internal/validation"
)

// Metadata columns appended after the module's fields.
var metaColumns = []string{"Record ID", "Created At", "Updated At"}

// Columns returns the header row for a module: display names in priority
// order followed by the metadata columns.
func Columns(spec *validation.ModuleSpec) []string {
	fields := spec.Fields()
	cols := make([]string, 0, len(fields)+len(metaColumns))
	for _, f := range fields {
		cols = append(cols, spec.DisplayName(f))
	}
	return append(cols, metaColumns...)
}

// SheetName is the worksheet title used for a module.
func SheetName(m validation.Module) string {
	return validation.Humanize(string(m))
}

// Write renders records as a single-sheet workbook and writes it to w.
func Write(w io.Writer, spec *validation.ModuleSpec, records []domain.FormRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SheetName(spec.Module)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("xlsxexport.Write: rename sheet: %w", err)
	}

	header := Columns(spec)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	fields := spec.Fields()
	for i := range records {
		row, err := recordToRow(&records[i], fields)
		if err != nil {
			return fmt.Errorf("xlsxexport.Write: record %s: %w", records[i].ID, err)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport.Write: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, line int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("xlsxexport: write row %d: %w", line, err)
	}
	return nil
}

func recordToRow(rec *domain.FormRecord, fields []string) ([]string, error) {
	var data validation.FormData
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &data); err != nil {
			return nil, err
		}
	}

	row := make([]string, 0, len(fields)+len(metaColumns))
	for _, f := range fields {
		row = append(row, cellValue(data[f]))
	}
	return append(row,
		rec.ID.String(),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	), nil
}

// cellValue flattens a stored value; attachments show their file name.
func cellValue(v any) string {
	if m, ok := v.(map[string]any); ok {
		name, _ := m["file_name"].(string)
		return name
	}
	return validation.StringValue(v)
}

// Row is one data row read from an import sheet.
type Row struct {
	Line int
	Data validation.FormData
}

// Sheet is the parsed content of an import workbook.
type Sheet struct {
	Fields  []string
	Unknown []string
	Rows    []Row
}

// Read parses the first worksheet of an xlsx stream. Header cells are
// matched to fields by display name or by field key, case-insensitively.
// Metadata columns are skipped and blank rows are dropped.
func Read(r io.Reader, spec *validation.ModuleSpec) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsxexport.Read: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("xlsxexport.Read: rows: %w", err)
	}
	if len(rows) == 0 {
		return &Sheet{}, nil
	}

	lookup := headerLookup(spec)
	out := &Sheet{}
	columns := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" || isMetaColumn(key) {
			continue
		}
		field, ok := lookup[key]
		if !ok {
			out.Unknown = append(out.Unknown, h)
			continue
		}
		columns[i] = field
		out.Fields = append(out.Fields, field)
	}

	for i, cells := range rows[1:] {
		data := validation.FormData{}
		blank := true
		for c, v := range cells {
			if c >= len(columns) || columns[c] == "" {
				continue
			}
			v = strings.TrimSpace(v)
			if v != "" {
				blank = false
				data[columns[c]] = v
			}
		}
		if blank {
			continue
		}
		out.Rows = append(out.Rows, Row{Line: i + 2, Data: data})
	}
	return out, nil
}

func headerLookup(spec *validation.ModuleSpec) map[string]string {
	m := make(map[string]string)
	for _, f := range spec.Fields() {
		m[strings.ToLower(f)] = f
		m[strings.ToLower(spec.DisplayName(f))] = f
	}
	return m
}

func isMetaColumn(key string) bool {
	for _, c := range metaColumns {
		if strings.ToLower(c) == key {
			return true
		}
	}
	return false
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {module}_{YYYY-MM-DD}.xlsx.
func BuildFilename(m validation.Module) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(string(m)), time.Now().Format("2006-01-02"))
}
