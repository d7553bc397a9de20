package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

// ReadRows parses a .csv or .xlsx roster. The header row names the columns;
// employee_id and full_name are required, department, email and phone are
// optional. Fully blank lines are ignored.
func ReadRows(filename string, r io.Reader) ([]roster.Row, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(r)
	case ".xlsx":
		records, err = readXLSX(r)
	default:
		return nil, roster.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, roster.ErrEmptyRosterFile
	}

	columns := headerIndex(records[0])
	if _, ok := columns["employee_id"]; !ok {
		return nil, roster.ErrMissingEmployeeID
	}
	if _, ok := columns["full_name"]; !ok {
		return nil, roster.ErrMissingFullName
	}

	var (
		rows []roster.Row
		errs []error
	)
	for i, record := range records[1:] {
		line := i + 2
		if isBlank(record) {
			continue
		}

		row := roster.Row{
			Line:       line,
			EmployeeID: cell(record, columns, "employee_id"),
			FullName:   cell(record, columns, "full_name"),
			Department: optionalCell(record, columns, "department"),
			Email:      optionalCell(record, columns, "email"),
			Phone:      optionalCell(record, columns, "phone"),
		}
		switch {
		case row.EmployeeID == "":
			errs = append(errs, fmt.Errorf("%w: line %d: employee_id is empty", roster.ErrInvalidRow, line))
		case !validator.IsValidEmployeeID(row.EmployeeID):
			errs = append(errs, fmt.Errorf("%w: line %d: malformed employee_id %q", roster.ErrInvalidRow, line, row.EmployeeID))
		case row.FullName == "":
			errs = append(errs, fmt.Errorf("%w: line %d: full_name is empty", roster.ErrInvalidRow, line))
		default:
			rows = append(rows, row)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

// readXLSX reads the first sheet of the workbook.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, roster.ErrEmptyRosterFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.ReplaceAll(name, " ", "_")
		if _, dup := columns[name]; !dup && name != "" {
			columns[name] = i
		}
	}
	return columns
}

// cell tolerates short rows; spreadsheets drop trailing empty cells.
func cell(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func optionalCell(record []string, columns map[string]int, name string) *string {
	v := cell(record, columns, name)
	if v == "" {
		return nil
	}
	return &v
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
