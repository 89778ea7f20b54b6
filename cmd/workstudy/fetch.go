package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pavan19102006/Jagadeesh-project/client"
)

func newFetchCmd(a *app) *cobra.Command {
	var method, data string
	var headers []string

	cmd := &cobra.Command{
		Use:   "fetch ENDPOINT",
		Short: "Call any endpoint with the stored credential",
		Example: `  workstudy fetch /jobs/active
  workstudy fetch /jobs/5/close -X PUT
  workstudy fetch /applications -X POST --data '{"jobId":5}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &client.RequestOptions{Method: strings.ToUpper(method)}
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				opts.Body = json.RawMessage(data)
			}
			if len(headers) > 0 {
				opts.Headers = make(map[string]string, len(headers))
				for _, h := range headers {
					k, v, ok := strings.Cut(h, ":")
					if !ok {
						return fmt.Errorf("header %q must be Name: value", h)
					}
					opts.Headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
				}
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Fetch(ctx, args[0], opts)
			})
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "HTTP method")
	cmd.Flags().StringVar(&data, "data", "", "JSON request body")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Extra header as 'Name: value' (empty value removes it)")
	return cmd
}
