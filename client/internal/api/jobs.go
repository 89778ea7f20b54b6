package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// ListJobs returns every posting (administrators see all statuses).
func ListJobs(ctx context.Context, f Fetcher) ([]types.JobPosting, error) {
	raw, err := get(ctx, f, "/jobs")
	if err != nil {
		return nil, err
	}
	return decodeList[types.JobPosting](raw, "jobs")
}

// ListActiveJobs returns postings students can still apply to.
func ListActiveJobs(ctx context.Context, f Fetcher) ([]types.JobPosting, error) {
	raw, err := get(ctx, f, "/jobs/active")
	if err != nil {
		return nil, err
	}
	return decodeList[types.JobPosting](raw, "active jobs")
}

// GetJob retrieves a posting by ID.
func GetJob(ctx context.Context, f Fetcher, id int64) (*types.JobPosting, error) {
	if err := types.ValidateID("jobId", id); err != nil {
		return nil, err
	}
	raw, err := get(ctx, f, fmt.Sprintf("/jobs/%d", id))
	if err != nil {
		return nil, err
	}
	return decode[types.JobPosting](raw, "job")
}

// CreateJob publishes a new posting.
func CreateJob(ctx context.Context, f Fetcher, req types.JobPostingRequest) (*types.JobPosting, error) {
	if err := types.ValidateJobPosting(req); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPost, "/jobs", req)
	if err != nil {
		return nil, err
	}
	return decode[types.JobPosting](raw, "created job")
}

// UpdateJob replaces the editable fields of a posting.
func UpdateJob(ctx context.Context, f Fetcher, id int64, req types.JobPostingRequest) (*types.JobPosting, error) {
	if err := types.ValidateID("jobId", id); err != nil {
		return nil, err
	}
	if err := types.ValidateJobPosting(req); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPut, fmt.Sprintf("/jobs/%d", id), req)
	if err != nil {
		return nil, err
	}
	return decode[types.JobPosting](raw, "updated job")
}

// DeleteJob removes a posting. Backend returns 204 No Content on success.
func DeleteJob(ctx context.Context, f Fetcher, id int64) error {
	if err := types.ValidateID("jobId", id); err != nil {
		return err
	}
	_, err := send(ctx, f, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil)
	return err
}

// CloseJob stops accepting applications. The result is nil when the
// backend answers 204.
func CloseJob(ctx context.Context, f Fetcher, id int64) (*types.JobPosting, error) {
	if err := types.ValidateID("jobId", id); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPut, fmt.Sprintf("/jobs/%d/close", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOptional[types.JobPosting](raw, "closed job")
}
