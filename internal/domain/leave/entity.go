package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid    LeaveType = "paid"
	LeaveTypeSick    LeaveType = "sick"
	LeaveTypeSpecial LeaveType = "special"
	LeaveTypeUnpaid  LeaveType = "unpaid"
)

var LeaveTypeValues = []string{
	string(LeaveTypePaid),
	string(LeaveTypeSick),
	string(LeaveTypeSpecial),
	string(LeaveTypeUnpaid),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest is an employee-submitted absence over an inclusive date
// range. The status transitions exactly once, pending to approved or
// rejected, and the request is read-only afterwards.
type LeaveRequest struct {
	ID        string
	UserID    string
	Type      LeaveType
	StartDate string
	EndDate   string
	Reason    string

	Status     LeaveRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	Comment    *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	UserName *string
}
