package api

import (
	"context"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// StudentDashboard fetches the signed-in student's summary.
func StudentDashboard(ctx context.Context, f Fetcher) (*types.StudentDashboard, error) {
	raw, err := get(ctx, f, "/dashboard/student")
	if err != nil {
		return nil, err
	}
	return decode[types.StudentDashboard](raw, "student dashboard")
}

// AdminDashboard fetches board-wide counters.
func AdminDashboard(ctx context.Context, f Fetcher) (*types.AdminDashboard, error) {
	raw, err := get(ctx, f, "/dashboard/admin")
	if err != nil {
		return nil, err
	}
	return decode[types.AdminDashboard](raw, "admin dashboard")
}
