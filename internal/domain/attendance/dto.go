package attendance

import (
	"github.com/shiftwise/attendance-backend-go/internal/pkg/timeclock"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type MyAttendanceFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
	SortOrder string
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, timeclock.RecordStatusValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of present, late, absent, leave, holiday",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	UserID    *string
	UserName  *string
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *AttendanceFilter) Validate() error {
	my := MyAttendanceFilter{
		Date:      f.Date,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
	}
	return my.Validate()
}

// UpdateAttendanceRequest is the administrative fix-up for a record,
// including the explicit status override.
type UpdateAttendanceRequest struct {
	ID         string    `json:"-"`
	ClockIn    *string   `json:"clock_in,omitempty"`
	ClockOut   *string   `json:"clock_out,omitempty"`
	BreakStart *[]string `json:"break_start,omitempty"`
	BreakEnd   *[]string `json:"break_end,omitempty"`
	Status     *string   `json:"status,omitempty"`
	Revision   int       `json:"revision"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ClockIn != nil && *r.ClockIn != "" && !timeclock.IsValidClock(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
	}
	if r.ClockOut != nil && *r.ClockOut != "" && !timeclock.IsValidClock(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:MM format",
		})
	}
	if r.BreakStart != nil {
		for _, b := range *r.BreakStart {
			if !timeclock.IsValidClock(b) {
				errs = append(errs, validator.ValidationError{
					Field:   "break_start",
					Message: "break_start entries must be in HH:MM format",
				})
				break
			}
		}
	}
	if r.BreakEnd != nil {
		for _, b := range *r.BreakEnd {
			if !timeclock.IsValidClock(b) {
				errs = append(errs, validator.ValidationError{
					Field:   "break_end",
					Message: "break_end entries must be in HH:MM format",
				})
				break
			}
		}
	}
	if r.BreakStart != nil && r.BreakEnd != nil {
		starts, ends := len(*r.BreakStart), len(*r.BreakEnd)
		if ends > starts || starts-ends > 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must pair with break_start, with at most one open break",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, timeclock.RecordStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, leave, holiday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayStatusFilter struct {
	UserID string
	Date   string
}

func (f *DayStatusFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name,omitempty"`
	Date        string   `json:"date"`
	ClockIn     *string  `json:"clock_in"`
	ClockOut    *string  `json:"clock_out"`
	BreakStart  []string `json:"break_start"`
	BreakEnd    []string `json:"break_end"`
	WorkMinutes int      `json:"work_minutes"`
	WorkTime    string   `json:"work_time"`
	Status      string   `json:"status"`
	Revision    int      `json:"revision"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Showing    string               `json:"showing"`
	Records    []AttendanceResponse `json:"records"`
}

// TodayResponse is today's record together with the display label the daily
// classifier resolves for it.
type TodayResponse struct {
	Date      string              `json:"date"`
	DayStatus string              `json:"day_status"`
	Record    *AttendanceResponse `json:"record"`
}

type DayStatusResponse struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	DayStatus string `json:"day_status"`
}
