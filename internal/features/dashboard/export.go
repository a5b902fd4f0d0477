package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportRevenue renders the revenue breakdown as an xlsx workbook for the
// admin console download.
func (s *DashboardServiceImpl) ExportRevenue(ctx context.Context) ([]byte, string, error) {
	stats, err := s.Revenue(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := renderRevenueWorkbook(stats)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("revenue_%s.xlsx", time.Now().Format("2006-01-02"))
	return data, filename, nil
}

func renderRevenueWorkbook(stats *RevenueStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Revenue"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	headers := []string{"Service", "Completed", "Revenue"}
	for i, col := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, line := range stats.Breakdown {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx+2), line.Service)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx+2), line.Count)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIdx+2), line.Revenue)
	}

	totalRow := len(stats.Breakdown) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), stats.TotalRevenue)
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", totalRow), fmt.Sprintf("C%d", totalRow), headerStyle)

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
