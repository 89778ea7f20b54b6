// Command workstudy is a command line client for the work-study job board.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Pavan19102006/Jagadeesh-project/client"
	"github.com/Pavan19102006/Jagadeesh-project/client/store"
	"github.com/Pavan19102006/Jagadeesh-project/internal/config"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the resolved settings shared by every subcommand.
type app struct {
	apiURL      string
	storagePath string
	debug       bool
	retries     int
	metrics     bool

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "workstudy",
		Short:         "Work-study job board client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLoggerTo(cmd.ErrOrStderr())

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if !cmd.Flags().Changed("api-url") {
				a.apiURL = cfg.APIURL
			}
			if !cmd.Flags().Changed("storage") {
				a.storagePath = cfg.StoragePath
			}
			if !cmd.Flags().Changed("debug") {
				a.debug = cfg.Debug
			}

			level, _ := config.ParseLevel(cfg.LogLevel)
			if a.debug {
				level = zerolog.DebugLevel
				log.Debug().Msg("debug logging enabled")
			}
			config.SetLogLevel(level)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), prometheus.DefaultGatherer)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend base URL (default $WORKSTUDY_API_URL or "+client.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&a.storagePath, "storage", "", "Session file (default $WORKSTUDY_STORAGE_PATH or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output and HTTP dumps")
	rootCmd.PersistentFlags().IntVar(&a.retries, "retries", 0, "Extra attempts for failures that may succeed on retry")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Print client metrics to stderr after the command")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newRegisterCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoamiCmd(a))
	rootCmd.AddCommand(newFetchCmd(a))
	rootCmd.AddCommand(newJobsCmd(a))
	rootCmd.AddCommand(newApplicationsCmd(a))
	rootCmd.AddCommand(newDashboardCmd(a))

	return rootCmd
}

// client builds a Client bound to the session file.
func (a *app) client() (*client.Client, error) {
	opts := []client.Option{
		client.WithStore(store.NewFileStore(a.storagePath)),
		client.WithDebugLogging(a.debug),
	}
	if a.cfg != nil && a.cfg.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(a.cfg.HTTPTimeout))
	}
	log.Debug().Str("api_url", a.apiURL).Str("storage", a.storagePath).Msg("creating client")
	return client.New(a.apiURL, opts...)
}

// run opens a client, calls fn under the retry policy and prints its
// result as indented JSON.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := a.client()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	var out any
	err = client.Retry(cmd.Context(), a.retries+1, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx, c)
		return err
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	if raw, ok := v.(json.RawMessage); ok && raw != nil {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			v = decoded
		}
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
