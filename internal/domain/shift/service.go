package shift

import (
	"context"
)

// ShiftService defines business logic for shift-table administration.
type ShiftService interface {
	// UpsertShift writes one shift-table cell (admin). Admin-created
	// assignments are approved immediately.
	UpsertShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)

	// ListShifts retrieves assignments for a date range. Employees see only
	// their own row; managers and admins see everyone.
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftsResponse, error)

	// DeleteShift clears a shift-table cell (admin)
	DeleteShift(ctx context.Context, id string) error
}
