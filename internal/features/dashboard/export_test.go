package dashboard

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRenderRevenueWorkbook(t *testing.T) {
	stats := &RevenueStats{
		TotalRevenue: 42400,
		Breakdown: []RevenueLine{
			{Service: "Passport Issue", Count: 2, Revenue: 40000},
			{Service: "Birth Certificate", Count: 2, Revenue: 2400},
		},
	}

	data, err := renderRevenueWorkbook(stats)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("rendered bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	checks := []struct {
		cell string
		want string
	}{
		{"A1", "Service"},
		{"A2", "Passport Issue"},
		{"B2", "2"},
		{"C2", "40000"},
		{"A3", "Birth Certificate"},
		{"A4", "Total"},
		{"C4", "42400"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue("Revenue", c.cell)
		if err != nil {
			t.Fatalf("read %s: %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}
}
