package report

import (
	"context"
)

// ReportService produces monthly attendance reports.
type ReportService interface {
	// Monthly builds the aggregate and per-day report for one user's month
	Monthly(ctx context.Context, filter MonthlyReportFilter) (MonthlyReportResponse, error)

	// MonthlyPDF renders the monthly report as a PDF document
	MonthlyPDF(ctx context.Context, filter MonthlyReportFilter) ([]byte, error)

	// MonthlyXLSX renders the monthly report as a spreadsheet
	MonthlyXLSX(ctx context.Context, filter MonthlyReportFilter) ([]byte, error)
}
