package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Pavan19102006/Jagadeesh-project/client"
	"github.com/Pavan19102006/Jagadeesh-project/internal/batch"
	"github.com/Pavan19102006/Jagadeesh-project/internal/shardqueue"
)

var errImportFailures = errors.New("some postings were not created")

func newJobsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage job postings",
	}
	cmd.AddCommand(newJobsListCmd(a))
	cmd.AddCommand(newJobsGetCmd(a))
	cmd.AddCommand(newJobsCreateCmd(a))
	cmd.AddCommand(newJobsUpdateCmd(a))
	cmd.AddCommand(newJobsDeleteCmd(a))
	cmd.AddCommand(newJobsCloseCmd(a))
	cmd.AddCommand(newJobsImportCmd(a))
	return cmd
}

func newJobsListCmd(a *app) *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				if active {
					return c.ListActiveJobs(ctx)
				}
				return c.ListJobs(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&active, "active", false, "Only postings accepting applications")
	return cmd
}

func newJobsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetJob(ctx, id)
			})
		},
	}
}

// postingFlags binds the editable posting fields to flags.
func postingFlags(fs *pflag.FlagSet, req *client.JobPostingRequest) {
	fs.StringVar(&req.Title, "title", req.Title, "Job title")
	fs.StringVar(&req.Description, "description", req.Description, "Description")
	fs.StringVar(&req.Department, "department", req.Department, "Department")
	fs.StringVar(&req.Location, "location", req.Location, "Location")
	fs.Float64Var(&req.HourlyRate, "hourly-rate", req.HourlyRate, "Hourly rate")
	fs.IntVar(&req.MaxHoursPerWeek, "max-hours", req.MaxHoursPerWeek, "Maximum hours per week")
	fs.IntVar(&req.TotalPositions, "positions", req.TotalPositions, "Number of positions")
	fs.StringVar(&req.ApplicationDeadline, "deadline", req.ApplicationDeadline, "Application deadline (YYYY-MM-DD)")
}

func newJobsCreateCmd(a *app) *cobra.Command {
	req := client.NewJobPostingRequest()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a posting (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateJob(ctx, req)
			})
		},
	}
	postingFlags(cmd.Flags(), &req)
	return cmd
}

func newJobsUpdateCmd(a *app) *cobra.Command {
	var edits client.JobPostingRequest

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a posting (admin); unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				current, err := c.GetJob(ctx, id)
				if err != nil {
					return nil, err
				}
				req := current.ToRequest()
				applyChanged(cmd.Flags(), &req, edits)
				return c.UpdateJob(ctx, id, req)
			})
		},
	}
	postingFlags(cmd.Flags(), &edits)
	return cmd
}

// applyChanged copies the fields whose flags were set from edits into req.
func applyChanged(fs *pflag.FlagSet, req *client.JobPostingRequest, edits client.JobPostingRequest) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "title":
			req.Title = edits.Title
		case "description":
			req.Description = edits.Description
		case "department":
			req.Department = edits.Department
		case "location":
			req.Location = edits.Location
		case "hourly-rate":
			req.HourlyRate = edits.HourlyRate
		case "max-hours":
			req.MaxHoursPerWeek = edits.MaxHoursPerWeek
		case "positions":
			req.TotalPositions = edits.TotalPositions
		case "deadline":
			req.ApplicationDeadline = edits.ApplicationDeadline
		}
	})
}

func newJobsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a posting (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return nil, c.DeleteJob(ctx, id)
			})
		},
	}
}

func newJobsCloseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "close ID",
		Short: "Stop accepting applications for a posting (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CloseJob(ctx, id)
			})
		},
	}
}

func newJobsImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create postings from a YAML or JSON file (admin)",
		Long: `Create postings from a YAML or JSON file holding a list of postings or
{postings: [...]}. Postings of one department are created in file order.
Executor tunables come from SQ_* environment variables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postings, err := batch.ParseFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := shardqueue.LoadConfig()
			if err != nil {
				return err
			}
			if a.retries > 0 {
				cfg.MaxAttempts = a.retries + 1
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			report, err := batch.NewImporter(c, cfg).Import(cmd.Context(), postings)
			if perr := printJSON(cmd.OutOrStdout(), report); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}
			log.Info().Int("created", report.Created).Int("failed", report.Failed).Msg("import finished")
			if report.Failed > 0 {
				return errImportFailures
			}
			return nil
		},
	}
}
