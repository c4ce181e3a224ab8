package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// MonthlyXLSX implements report.ReportService.
func (s *ReportServiceImpl) MonthlyXLSX(ctx context.Context, filter report.MonthlyReportFilter) ([]byte, error) {
	rep, err := s.Monthly(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Monthly Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	f.SetCellValue(sheetName, "A1", "Monthly Attendance Report")
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "F1", headerStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Employee: %s", rep.UserName))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Month: %s", rep.Month))

	f.SetCellValue(sheetName, "A5", "Work Days")
	f.SetCellValue(sheetName, "B5", rep.Summary.WorkDays)
	f.SetCellValue(sheetName, "A6", "Late Days")
	f.SetCellValue(sheetName, "B6", rep.Summary.LateDays)
	f.SetCellValue(sheetName, "A7", "Absent Days")
	f.SetCellValue(sheetName, "B7", rep.Summary.AbsentDays)
	f.SetCellValue(sheetName, "A8", "Leave Days")
	f.SetCellValue(sheetName, "B8", rep.Summary.LeaveDays)
	f.SetCellValue(sheetName, "A9", "Total Work Time")
	f.SetCellValue(sheetName, "B9", rep.TotalTime)
	f.SetCellValue(sheetName, "A10", "Average Work Time")
	f.SetCellValue(sheetName, "B10", rep.AverageTime)

	headers := []string{"Date", "Day Status", "Status", "Clock In", "Clock Out", "Work Time"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s12", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A12", "F12", headerStyle)

	for i, day := range rep.Days {
		row := 13 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), day.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), day.DayStatus)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), deref(day.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), deref(day.ClockIn))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), deref(day.ClockOut))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), day.WorkTime)
	}
	f.SetColWidth(sheetName, "A", "F", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report workbook: %w", err)
	}
	return buf.Bytes(), nil
}
