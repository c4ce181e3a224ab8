package leave

import (
	"testing"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

const today = "2025-06-15"

func validRequest() CreateLeaveRequest {
	return CreateLeaveRequest{
		Type:      "paid",
		StartDate: "2025-06-20",
		EndDate:   "2025-06-22",
		Reason:    "family trip",
	}
}

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T (%v)", err, err)
	}
	return errs.ToMap()[field]
}

func TestCreateLeaveRequest_Valid(t *testing.T) {
	req := validRequest()
	if err := req.Validate(today); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestCreateLeaveRequest_EndBeforeStart(t *testing.T) {
	req := validRequest()
	req.StartDate = "2025-06-22"
	req.EndDate = "2025-06-20"
	err := req.Validate(today)
	if err == nil {
		t.Fatal("expected rejection for end before start")
	}
	if msg := fieldMessage(t, err, "end_date"); msg == "" {
		t.Error("expected a reason on end_date")
	}
}

func TestCreateLeaveRequest_SpanLimit(t *testing.T) {
	// Exactly 30 days inclusive: accepted.
	req := validRequest()
	req.StartDate = "2025-07-01"
	req.EndDate = "2025-07-30"
	if err := req.Validate(today); err != nil {
		t.Errorf("30-day span rejected: %v", err)
	}

	// 31 days inclusive: rejected.
	req.EndDate = "2025-07-31"
	err := req.Validate(today)
	if err == nil {
		t.Fatal("expected rejection for 31-day span")
	}
	if msg := fieldMessage(t, err, "end_date"); msg == "" {
		t.Error("expected a reason on end_date")
	}
}

func TestCreateLeaveRequest_StartInPast(t *testing.T) {
	req := validRequest()
	req.StartDate = "2025-06-14"
	req.EndDate = "2025-06-16"
	if err := req.Validate(today); err == nil {
		t.Error("expected rejection for past start_date")
	}

	// Starting today is allowed.
	req.StartDate = today
	req.EndDate = "2025-06-16"
	if err := req.Validate(today); err != nil {
		t.Errorf("same-day start rejected: %v", err)
	}
}

func TestCreateLeaveRequest_InvalidType(t *testing.T) {
	req := validRequest()
	req.Type = "sabbatical"
	if err := req.Validate(today); err == nil {
		t.Error("expected rejection for unknown leave type")
	}
}

func TestCreateLeaveRequest_MissingReason(t *testing.T) {
	req := validRequest()
	req.Reason = "   "
	if err := req.Validate(today); err == nil {
		t.Error("expected rejection for empty reason")
	}
}
