package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// Apply submits the signed-in student's application for a posting.
func Apply(ctx context.Context, f Fetcher, req types.ApplyRequest) (*types.Application, error) {
	if err := types.ValidateID("jobId", req.JobID); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPost, "/applications", req)
	if err != nil {
		return nil, err
	}
	return decode[types.Application](raw, "application")
}

// MyApplications lists the signed-in student's applications.
func MyApplications(ctx context.Context, f Fetcher) ([]types.Application, error) {
	raw, err := get(ctx, f, "/applications/my")
	if err != nil {
		return nil, err
	}
	return decodeList[types.Application](raw, "my applications")
}

// ListApplications lists every application (administrators only).
func ListApplications(ctx context.Context, f Fetcher) ([]types.Application, error) {
	raw, err := get(ctx, f, "/applications")
	if err != nil {
		return nil, err
	}
	return decodeList[types.Application](raw, "applications")
}

// GetApplication retrieves one application.
func GetApplication(ctx context.Context, f Fetcher, id int64) (*types.Application, error) {
	if err := types.ValidateID("applicationId", id); err != nil {
		return nil, err
	}
	raw, err := get(ctx, f, fmt.Sprintf("/applications/%d", id))
	if err != nil {
		return nil, err
	}
	return decode[types.Application](raw, "application")
}

// WithdrawApplication withdraws a pending application. The result is nil
// when the backend answers 204.
func WithdrawApplication(ctx context.Context, f Fetcher, id int64) (*types.Application, error) {
	if err := types.ValidateID("applicationId", id); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPut, fmt.Sprintf("/applications/%d/withdraw", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOptional[types.Application](raw, "withdrawn application")
}

// ReviewApplication approves or rejects an application with optional notes.
func ReviewApplication(ctx context.Context, f Fetcher, id int64, req types.ReviewRequest) (*types.Application, error) {
	if err := types.ValidateID("applicationId", id); err != nil {
		return nil, err
	}
	if err := types.ValidateReview(req); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPut, fmt.Sprintf("/applications/%d/review", id), req)
	if err != nil {
		return nil, err
	}
	return decode[types.Application](raw, "reviewed application")
}
