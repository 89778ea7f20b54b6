package client

import (
	"context"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/api"
)

// Apply submits an application for jobID as the logged-in student.
func (c *Client) Apply(ctx context.Context, jobID int64, coverLetter string) (*Application, error) {
	return api.Apply(ctx, c, ApplyRequest{JobID: jobID, CoverLetter: coverLetter})
}

// MyApplications lists the logged-in student's applications.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	return api.MyApplications(ctx, c)
}

// ListApplications lists every application. Admin only.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	return api.ListApplications(ctx, c)
}

func (c *Client) GetApplication(ctx context.Context, id int64) (*Application, error) {
	return api.GetApplication(ctx, c, id)
}

// WithdrawApplication withdraws a pending application. The result is nil
// when the backend answers 204.
func (c *Client) WithdrawApplication(ctx context.Context, id int64) (*Application, error) {
	return api.WithdrawApplication(ctx, c, id)
}

// ReviewApplication approves or rejects an application. Admin only.
func (c *Client) ReviewApplication(ctx context.Context, id int64, status ApplicationStatus, notes string) (*Application, error) {
	return api.ReviewApplication(ctx, c, id, ReviewRequest{Status: status, AdminNotes: notes})
}

func (c *Client) StudentDashboard(ctx context.Context) (*StudentDashboard, error) {
	return api.StudentDashboard(ctx, c)
}

func (c *Client) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	return api.AdminDashboard(ctx, c)
}
