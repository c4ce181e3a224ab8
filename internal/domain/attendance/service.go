package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn creates today's record for the authenticated employee.
	// Fails when a record for today already exists.
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut ends today's work day
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// StartBreak opens a break on today's record
	StartBreak(ctx context.Context) (AttendanceResponse, error)

	// EndBreak closes the open break on today's record
	EndBreak(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// GetToday returns today's record plus its daily display status
	GetToday(ctx context.Context) (TodayResponse, error)

	// ListAttendance retrieves records with filters (manager/admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// UpdateAttendance fixes a record's clock data or overrides its status (admin)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a record (admin)
	DeleteAttendance(ctx context.Context, id string) error

	// DayStatus resolves the display status for one user on one date. It is
	// the single source of truth for status badges.
	DayStatus(ctx context.Context, filter DayStatusFilter) (DayStatusResponse, error)
}
