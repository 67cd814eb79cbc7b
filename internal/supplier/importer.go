package supplier

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"

	"github.com/xuri/excelize/v2"
)

// Import sheet schema: 12 columns, one supplier per row. The products and
// certifications columns hold semicolon-separated sub-lists.
const importColumnCount = 12

type ImportResult struct {
	Imported int
	Errors   []string
}

// ReadCSVRows reads raw rows from a CSV stream. Ragged rows are passed
// through so the per-row parser can report them individually.
func ReadCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV could not be read: %w", err)
	}
	return rows, nil
}

// ReadXLSXRows reads raw rows from the first sheet of an XLSX stream.
func ReadXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("Excel file could not be read: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet could not be read: %w", err)
	}
	return rows, nil
}

// ImportRows parses each row into a supplier and upserts it into the store.
// A bad row is recorded as an error and does not abort the batch.
func ImportRows(rows [][]string) ImportResult {
	result := ImportResult{}

	start := 0
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		s, err := parseRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if _, err := store.Suppliers.Put(s); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id")
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (models.Supplier, error) {
	if len(row) < importColumnCount {
		return models.Supplier{}, fmt.Errorf("expected %d columns, got %d", importColumnCount, len(row))
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid id %q", row[0])
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid rating %q", row[5])
	}
	aiScore, err := strconv.Atoi(strings.TrimSpace(row[6]))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid aiScore %q", row[6])
	}
	verified, err := parseBool(row[9])
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid walmartVerified %q", row[9])
	}
	years, err := strconv.Atoi(strings.TrimSpace(row[10]))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid yearsInBusiness %q", row[10])
	}
	projects, err := strconv.Atoi(strings.TrimSpace(row[11]))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("invalid projectsCompleted %q", row[11])
	}

	return models.Supplier{
		ID:                id,
		Name:              strings.TrimSpace(row[1]),
		Category:          strings.TrimSpace(row[2]),
		Location:          strings.TrimSpace(row[3]),
		Region:            strings.TrimSpace(row[4]),
		Rating:            rating,
		AIScore:           aiScore,
		Products:          splitList(row[7]),
		Certifications:    splitList(row[8]),
		WalmartVerified:   verified,
		YearsInBusiness:   years,
		ProjectsCompleted: projects,
	}, nil
}

// splitList splits a semicolon-joined sub-list field.
func splitList(field string) []string {
	parts := strings.Split(field, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean")
	}
}
