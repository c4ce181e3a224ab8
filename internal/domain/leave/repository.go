package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create stores a new pending request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// ListApprovedInRange retrieves a user's approved requests whose date
	// range intersects [startDate, endDate]. Used by the daily classifier
	// and monthly reporting.
	ListApprovedInRange(ctx context.Context, userID string, startDate, endDate string) ([]LeaveRequest, error)

	// UpdateDecision records the single status transition of a request
	UpdateDecision(ctx context.Context, request LeaveRequest) error
}
