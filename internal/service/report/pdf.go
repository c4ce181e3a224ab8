package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
)

// MonthlyPDF implements report.ReportService.
func (s *ReportServiceImpl) MonthlyPDF(ctx context.Context, filter report.MonthlyReportFilter) ([]byte, error) {
	rep, err := s.Monthly(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", rep.UserName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", rep.Month))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Work days: %d (late: %d, absent: %d, leave: %d)",
		rep.Summary.WorkDays, rep.Summary.LateDays, rep.Summary.AbsentDays, rep.Summary.LeaveDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total work time: %s", rep.TotalTime))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average work time: %s", rep.AverageTime))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{28, 32, 24, 24, 24, 30}
	headers := []string{"Date", "Day Status", "Status", "Clock In", "Clock Out", "Work Time"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range rep.Days {
		cells := []string{
			day.Date,
			day.DayStatus,
			deref(day.Status),
			deref(day.ClockIn),
			deref(day.ClockOut),
			day.WorkTime,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
