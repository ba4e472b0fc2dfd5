// Package main implements the crm CLI, a terminal client for the CRM API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/crm-api/internal/client"
)

var (
	// serverURL is the base URL of the CRM API
	serverURL   string
	sessionPath string
	outputJSON  bool

	version = "dev"

	api *client.Client
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crm",
	Short: "CLI for the CRM API",
	Long: `crm is a command-line client for the CRM API.

It keeps the login token in a session file, so log in once and the other
commands reuse it until you log out or the token stops being accepted.

Examples:
  crm register --name Alice --email alice@example.com
  crm login --email alice@example.com
  crm contacts list --search acme
  crm projects create --name Website --status 1 --contact-id 3`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := sessionPath
		if path == "" {
			def, err := client.DefaultSessionPath()
			if err != nil {
				return fmt.Errorf("locate session file: %w", err)
			}
			path = def
		}

		session, err := client.LoadSession(path)
		if err != nil {
			return err
		}
		api = client.New(serverURL, session)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("CRM_SERVER", "http://localhost:8080"), "CRM API URL")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", os.Getenv("CRM_SESSION"), "session file (defaults to the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output results as JSON")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// run points the user back to login when the API rejects the token.
func run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}
		if client.IsUnauthenticated(err) {
			return fmt.Errorf("%w (run `crm login`)", err)
		}
		return err
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func pageFooter(w io.Writer, current, last int, total int64) {
	fmt.Fprintf(w, "\npage %d of %d (%d total)\n", current, last, total)
}
