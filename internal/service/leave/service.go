package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftwise/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	location *time.Location
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository, location *time.Location) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		location:               location,
	}
}

func claimString(ctx context.Context, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s claim is missing or invalid", key)
	}

	return value, nil
}

func mapLeaveToResponse(req leave.LeaveRequest) leave.LeaveResponse {
	var userName string
	if req.UserName != nil {
		userName = *req.UserName
	}

	var approvedAt *string
	if req.ApprovedAt != nil {
		formatted := req.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &formatted
	}

	return leave.LeaveResponse{
		ID:          req.ID,
		UserID:      req.UserID,
		UserName:    userName,
		Type:        string(req.Type),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      string(req.Status),
		ApprovedBy:  req.ApprovedBy,
		ApprovedAt:  approvedAt,
		Comment:     req.Comment,
		SubmittedAt: req.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	userID, err := claimString(ctx, "user_id")
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	today := time.Now().In(l.location).Format("2006-01-02")
	if err := req.Validate(today); err != nil {
		return leave.LeaveResponse{}, err
	}

	request := leave.LeaveRequest{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        leave.LeaveType(req.Type),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
		SubmittedAt: time.Now(),
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// GetMyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeave(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	userID, err := claimString(ctx, "user_id")
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}
	filter.UserID = &userID

	return l.listLeave(ctx, filter)
}

// ListLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeave(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	return l.listLeave(ctx, filter)
}

func (l *LeaveServiceImpl) listLeave(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveToResponse(req))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}

// decide performs the single pending -> approved/rejected transition.
func (l *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, status leave.LeaveRequestStatus) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	approverID, err := claimString(ctx, "user_id")
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now()
	request.Status = status
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	request.Comment = req.Comment

	if err := l.LeaveRequestRepository.UpdateDecision(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveToResponse(request), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return l.decide(ctx, req, leave.LeaveRequestStatusApproved)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return l.decide(ctx, req, leave.LeaveRequestStatusRejected)
}
