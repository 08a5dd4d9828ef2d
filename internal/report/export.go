package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"hoopfame/internal"
)

// ExportMissingXLSX writes the missing-inductee report with the fixed
// column order (player_dataset, stats_dataset). Padded cells stay empty.
func ExportMissingXLSX(rows []internal.MissingReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"player_dataset", "stats_dataset"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, r)
		_ = f.SetCellValue(sheet, cell, derefString(row.PlayerDataset))
		cell, _ = excelize.CoordinatesToCellName(2, r)
		_ = f.SetCellValue(sheet, cell, derefString(row.StatsDataset))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// ExportSummaryXLSX writes category counts and career summaries on two
// sheets, the tabular stand-in for the rendered chart.
func ExportSummaryXLSX(counts []internal.CategoryCount, careers []internal.CareerSummary, outputPath string) error {
	f := excelize.NewFile()
	catSheet := f.GetSheetName(0)
	if err := f.SetSheetName(catSheet, "categories"); err != nil {
		return err
	}
	catSheet = "categories"

	catHeaders := []string{"category", "count"}
	for i, h := range catHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(catSheet, cell, h)
	}
	for i, row := range counts {
		r := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, r)
		_ = f.SetCellValue(catSheet, cell, row.Category)
		cell, _ = excelize.CoordinatesToCellName(2, r)
		_ = f.SetCellValue(catSheet, cell, row.Count)
	}

	const careerSheet = "careers"
	if _, err := f.NewSheet(careerSheet); err != nil {
		return err
	}

	careerHeaders := []string{
		"player", "seasons", "games", "points",
		"median_season_pts", "mean_per", "peak_per", "total_win_shares",
	}
	for i, h := range careerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(careerSheet, cell, h)
	}
	for i, row := range careers {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(careerSheet, cell, value)
		}
		set(1, row.Player)
		set(2, row.Seasons)
		set(3, row.Games)
		set(4, row.Points)
		set(5, derefFloat(row.MedianSeasonPts))
		set(6, derefFloat(row.MeanEfficiency))
		set(7, derefFloat(row.PeakEfficiency))
		set(8, derefFloat(row.TotalWinShares))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
