package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// CreateLeave submits a request for the authenticated employee
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetMyLeave retrieves the authenticated employee's requests
	GetMyLeave(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// ListLeave retrieves requests with filters (manager/admin)
	ListLeave(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Approve transitions a pending request to approved (admin)
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// Reject transitions a pending request to rejected (admin)
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
