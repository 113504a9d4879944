package importer

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pointnow/web/internal/models"
)

// exportColumns is the fixed header row of the customer export.
var exportColumns = []string{"Name", "Email", "Phone Number", "Points", "Joined Date"}

// ExportFilename returns the attachment name for a customer export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("customers_export_%s.xlsx", now.Format("2006-01-02"))
}

// BuildCustomerWorkbook renders customers into the export workbook. Balances
// go through the per-business resolver like every other display site.
func BuildCustomerWorkbook(customers []models.Customer, businessID string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, customer := range customers {
		values := []any{
			customer.Name,
			customer.Email,
			customer.PhoneNumber,
			customer.PointsForBusiness(businessID),
			customer.CreatedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	return f, nil
}
