package shift

import (
	"context"
)

// ShiftRepository defines data access for shift assignments.
type ShiftRepository interface {
	// Upsert writes the assignment for (user, date), replacing any existing one
	Upsert(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)

	// GetByUserAndDate returns the assignment for one cell, nil when empty
	GetByUserAndDate(ctx context.Context, userID string, date string) (*ShiftAssignment, error)

	// List retrieves assignments intersecting the filter's date range
	List(ctx context.Context, filter ShiftFilter) ([]ShiftAssignment, error)

	// Delete removes an assignment by ID
	Delete(ctx context.Context, id string) error
}
