package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pavan19102006/Jagadeesh-project/client"
)

func newApplicationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Apply to postings and review applications",
	}
	cmd.AddCommand(newApplyCmd(a))
	cmd.AddCommand(newAppsListCmd(a, "mine", "List your applications", (*client.Client).MyApplications))
	cmd.AddCommand(newAppsListCmd(a, "list", "List all applications (admin)", (*client.Client).ListApplications))
	cmd.AddCommand(newAppsGetCmd(a))
	cmd.AddCommand(newWithdrawCmd(a))
	cmd.AddCommand(newReviewCmd(a))
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var coverLetter string

	cmd := &cobra.Command{
		Use:   "apply JOB_ID",
		Short: "Apply to a posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Apply(ctx, jobID, coverLetter)
			})
		},
	}
	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "Why you are a good fit")
	return cmd
}

func newAppsListCmd(a *app, use, short string, list func(*client.Client, context.Context) ([]client.Application, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return list(c, ctx)
			})
		},
	}
}

func newAppsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetApplication(ctx, id)
			})
		},
	}
}

func newWithdrawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw ID",
		Short: "Withdraw a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.WithdrawApplication(ctx, id)
			})
		},
	}
}

func newReviewCmd(a *app) *cobra.Command {
	var status, notes string

	cmd := &cobra.Command{
		Use:   "review ID",
		Short: "Approve or reject an application (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st := client.ApplicationStatus(strings.ToUpper(status))
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ReviewApplication(ctx, id, st, notes)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "APPROVED or REJECTED (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes shown to the student")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
