package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Pavan19102006/Jagadeesh-project/client"
)

func newDashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show summary counts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "student",
		Short: "Your applications, open jobs and hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.StudentDashboard(ctx)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "admin",
		Short: "Job board totals (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AdminDashboard(ctx)
			})
		},
	})
	return cmd
}
