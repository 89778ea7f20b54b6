package client

import (
	"context"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/api"
)

// ListJobs returns every posting, including closed and filled ones.
func (c *Client) ListJobs(ctx context.Context) ([]JobPosting, error) {
	return api.ListJobs(ctx, c)
}

// ListActiveJobs returns postings students can still apply to.
func (c *Client) ListActiveJobs(ctx context.Context) ([]JobPosting, error) {
	return api.ListActiveJobs(ctx, c)
}

func (c *Client) GetJob(ctx context.Context, id int64) (*JobPosting, error) {
	return api.GetJob(ctx, c, id)
}

// CreateJob validates req locally and posts it. Admin only.
func (c *Client) CreateJob(ctx context.Context, req JobPostingRequest) (*JobPosting, error) {
	return api.CreateJob(ctx, c, req)
}

// UpdateJob replaces the posting's editable fields. Admin only.
func (c *Client) UpdateJob(ctx context.Context, id int64, req JobPostingRequest) (*JobPosting, error) {
	return api.UpdateJob(ctx, c, id, req)
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return api.DeleteJob(ctx, c, id)
}

// CloseJob stops a posting from accepting applications. The result is nil
// when the backend answers 204.
func (c *Client) CloseJob(ctx context.Context, id int64) (*JobPosting, error) {
	return api.CloseJob(ctx, c, id)
}
