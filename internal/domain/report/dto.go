package report

import (
	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type MonthlyReportFilter struct {
	UserID string
	Month  string // "YYYY-MM"
}

func (f *MonthlyReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyReportResponse is one employee's month: the aggregate statistics
// plus the per-day rows the statistics were derived from.
type MonthlyReportResponse struct {
	UserID      string                   `json:"user_id"`
	UserName    string                   `json:"user_name,omitempty"`
	Month       string                   `json:"month"`
	Summary     timeclock.MonthlySummary `json:"summary"`
	TotalTime   string                   `json:"total_work_time"`
	AverageTime string                   `json:"avg_work_time"`
	Days        []DailyReportRow         `json:"days"`
}

// DailyReportRow is one calendar day in the monthly report.
type DailyReportRow struct {
	Date      string  `json:"date"`
	DayStatus string  `json:"day_status"`
	Status    *string `json:"status,omitempty"`
	ClockIn   *string `json:"clock_in,omitempty"`
	ClockOut  *string `json:"clock_out,omitempty"`
	WorkTime  string  `json:"work_time"`
}
