package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/crm-api/internal/client"
	"github.com/BruksfildServices01/crm-api/internal/dto"
)

var (
	authName     string
	authEmail    string
	authPassword string
)

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, meCmd, forgotPasswordCmd, resetPasswordCmd)

	for _, cmd := range []*cobra.Command{loginCmd, registerCmd, forgotPasswordCmd, resetPasswordCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "Account email (required)")
		_ = cmd.MarkFlagRequired("email")
	}
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd, resetPasswordCmd} {
		cmd.Flags().StringVar(&authPassword, "password", "", "Password (read from stdin when omitted)")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "Display name (required)")
	_ = registerCmd.MarkFlagRequired("name")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Log in with email and password. The token is saved to the session file.

Examples:
  crm login --email alice@example.com
  echo "$PASS" | crm login --email alice@example.com`,
	Args: cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := api.Login(cmd.Context(), authEmail, password)
		if err != nil {
			return err
		}
		return printAuth(cmd, res)
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := api.Register(cmd.Context(), client.RegisterInput{
			Name:                 authName,
			Email:                authEmail,
			Password:             password,
			PasswordConfirmation: password,
		})
		if err != nil {
			return err
		}
		return printAuth(cmd, res)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the token and delete the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !api.Session().Authenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		err := api.Logout(cmd.Context())
		if client.IsUnauthenticated(err) {
			err = nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		u, err := api.Me(cmd.Context())
		if err != nil {
			return err
		}
		return printUsers(cmd, []dto.UserDTO{*u})
	}),
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		msg, err := api.ForgotPassword(cmd.Context(), authEmail)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}),
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for an account",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		err = api.ResetPassword(cmd.Context(), client.ResetPasswordInput{
			Email:                authEmail,
			Password:             password,
			PasswordConfirmation: password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
		return nil
	}),
}

// readPassword uses --password when given, otherwise the first line of in.
func readPassword(in io.Reader) (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("password is required (use --password or pipe it on stdin)")
	}
	return line, nil
}

func printAuth(cmd *cobra.Command, res *client.AuthResult) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Logged in as %s <%s>.\n", res.Message, res.User.Name, res.User.Email)
	return nil
}

