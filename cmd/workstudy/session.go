package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Pavan19102006/Jagadeesh-project/client"
)

type loginResult struct {
	User client.User `json:"user"`
	Home string      `json:"home"`
}

func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				resp, err := c.Login(ctx, username, password)
				if err != nil {
					return nil, err
				}
				log.Info().Str("username", resp.User.Username).Str("role", string(resp.User.Role)).Msg("logged in")
				return loginResult{User: resp.User, Home: client.HomePath(&resp.User)}, nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a student account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				resp, err := c.Register(ctx, req)
				if err != nil {
					return nil, err
				}
				return loginResult{User: resp.User, Home: client.HomePath(&resp.User)}, nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "Password again (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department or major")
	for _, f := range []string{"username", "password", "confirm-password", "email", "full-name"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			if err := c.Logout(); err != nil {
				return err
			}
			log.Info().Msg("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			u, err := c.CurrentUser()
			if err != nil {
				return err
			}
			if u == nil {
				return errors.New("not logged in")
			}
			return printJSON(cmd.OutOrStdout(), loginResult{User: *u, Home: client.HomePath(u)})
		},
	}
}
