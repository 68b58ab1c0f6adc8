package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/relaxapp/relax/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "relax: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	opts := app.Options{}

	root := &cobra.Command{
		Use:           "relax",
		Short:         "Guided breathing and meditation in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")

	addRegister(root, &opts)
	addLogin(root, &opts)
	addLogout(root, &opts)
	addHistory(root, &opts)
	addLogs(root, &opts)
	return root
}

func addRegister(root *cobra.Command, opts *app.Options) {
	var name, email, password string

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account",
		Example: `relax register --name Asha --email asha@example.com --password secret`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
				return errors.New("register requires --name, --email and --password")
			}
			if err := app.Register(cmd.Context(), opts.ConfigPath, name, email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s; run `relax login` to sign in\n", strings.TrimSpace(email))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	root.AddCommand(cmd)
}

func addLogin(root *cobra.Command, opts *app.Options) {
	var email, password, photoURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Example: `
relax login --email asha@example.com --password secret
relax login --email asha@example.com --password secret --photo-url https://example.com/me.png
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return errors.New("login requires --email and --password")
			}
			user, err := app.Login(cmd.Context(), opts.ConfigPath, email, password, photoURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&photoURL, "photo-url", "", "profile photo URL (optional)")
	root.AddCommand(cmd)
}

func addLogout(root *cobra.Command, opts *app.Options) {
	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Logout(opts.ConfigPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	})
}
