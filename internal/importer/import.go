// Package importer converts uploaded customer spreadsheets into validated
// rows and builds export workbooks. Rows are never dropped silently: every
// exclusion is reported with its row number.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/utils"
)

// Result is the import outcome. Success is true when at least one valid row
// was produced, even alongside errors; callers show both the preview and the
// error list, and may gate the actual upload on an empty error list.
type Result struct {
	Success bool                    `json:"success"`
	Data    []models.ParsedCustomer `json:"data,omitempty"`
	Errors  []string                `json:"errors,omitempty"`
}

// Accepted spellings for the phone column, matched case-insensitively after
// trimming.
var phoneHeaders = []string{"phone_number", "phone number", "phone"}

// ParseCustomerFile reads a .csv or .xlsx upload (first sheet only) into
// validated rows. The returned error covers unreadable files; content-level
// problems land in Result.Errors instead.
func ParseCustomerFile(filename string, r io.Reader, businessID string) (*Result, error) {
	var rows [][]string
	var err error

	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		rows, err = readCSV(r)
	} else {
		rows, err = readXLSX(r)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows, businessID), nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return rows, nil
}

func parseRows(rows [][]string, businessID string) *Result {
	if len(rows) == 0 {
		return &Result{Success: false, Errors: []string{"CSV file is empty"}}
	}

	nameCol, emailCol, phoneCol := -1, -1, -1
	for i, header := range rows[0] {
		h := strings.ToLower(strings.TrimSpace(header))
		switch {
		case h == "name":
			nameCol = i
		case h == "email":
			emailCol = i
		case isPhoneHeader(h):
			if phoneCol == -1 {
				phoneCol = i
			}
		}
	}

	var missing []string
	if nameCol == -1 {
		missing = append(missing, "name")
	}
	if emailCol == -1 {
		missing = append(missing, "email")
	}
	if phoneCol == -1 {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &Result{Success: false, Errors: []string{
			fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", ")),
		}}
	}

	result := &Result{}
	for i, row := range rows[1:] {
		// Header row plus 1-indexing: the first data row reports as row 2.
		rowNum := i + 2

		name := cell(row, nameCol)
		email := cell(row, emailCol)
		phone := cell(row, phoneCol)

		switch {
		case name == "":
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: missing name", rowNum))
			continue
		case email == "":
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: missing email", rowNum))
			continue
		case !utils.IsValidEmail(email):
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid email format", rowNum))
			continue
		case phone == "":
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: missing phone number", rowNum))
			continue
		}

		// The bulk-import endpoint expects digits-first numbers; only a
		// leading + is stripped here, unlike the live-form normalization.
		phone = strings.TrimPrefix(phone, "+")

		result.Data = append(result.Data, models.ParsedCustomer{
			Name:        name,
			Email:       email,
			PhoneNumber: phone,
			BusinessID:  businessID,
		})
	}

	result.Success = len(result.Data) > 0
	if !result.Success && len(result.Errors) == 0 {
		result.Errors = []string{"CSV file is empty"}
	}
	return result
}

func isPhoneHeader(h string) bool {
	for _, candidate := range phoneHeaders {
		if h == candidate {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
