package report

import (
	"bytes"
	"fmt"

	"github.com/courtside/venue-service/internal/service"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetSummary   = "Summary"
	SheetRevenue   = "Revenue"
	SheetCustomers = "Top Customers"
)

type sheet struct {
	name   string
	header []string
	widths []float64
	rows   [][]any
}

// DashboardWorkbook renders d as an .xlsx workbook with one sheet per dashboard section.
func DashboardWorkbook(d *service.Dashboard) ([]byte, error) {
	summary := sheet{name: SheetSummary, header: []string{"Metric", "Value"}, widths: []float64{22, 28}}
	for _, s := range d.Stats {
		summary.rows = append(summary.rows, []any{s.Label, s.Value})
	}
	summary.rows = append(summary.rows,
		[]any{"Bookings", d.BookingCount},
		[]any{"Generated At", d.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
	)

	revenue := sheet{name: SheetRevenue, header: []string{"Day", "Date", "Revenue"}, widths: []float64{10, 14, 16}}
	for _, p := range d.RevenueData {
		revenue.rows = append(revenue.rows, []any{p.Name, p.Day.Format("2006-01-02"), p.Rev})
	}

	customers := sheet{name: SheetCustomers, header: []string{"Customer", "Sessions", "Total Spend"}, widths: []float64{28, 12, 16}}
	for _, p := range d.TopPerformers {
		customers.rows = append(customers.rows, []any{p.Name, p.Sessions, p.TotalSpend})
	}

	return build(summary, revenue, customers)
}

func build(sheets ...sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0F7FA"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sh.name, err)
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	header := make([]any, len(sh.header))
	for i, h := range sh.header {
		header[i] = h
	}
	if err := f.SetSheetRow(sh.name, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sh.name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(sh.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sh.name, err)
	}

	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sh.name, i+2, err)
		}
	}

	for i, w := range sh.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, col, col, w); err != nil {
			return fmt.Errorf("%s column width: %w", sh.name, err)
		}
	}
	return nil
}
