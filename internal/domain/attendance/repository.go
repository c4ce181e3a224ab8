package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByUserAndDate retrieves the record for one user on one date.
	// Returns nil when no record exists; used to prevent double clock-in.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*AttendanceRecord, error)

	// Update writes a mutated record back. The record's Revision must match
	// the stored row; a stale revision fails with ErrRevisionConflict.
	Update(ctx context.Context, record AttendanceRecord) error

	// List retrieves records with filters and pagination (manager/admin view)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, int64, error)

	// GetMyAttendance retrieves records for a specific user
	GetMyAttendance(ctx context.Context, userID string, filter MyAttendanceFilter) ([]AttendanceRecord, int64, error)

	// ListByUserAndRange retrieves all of a user's records in an inclusive
	// date range, unpaginated. Used by reporting and the daily classifier.
	ListByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]AttendanceRecord, error)

	// Delete removes a record (admin only)
	Delete(ctx context.Context, id string) error
}
