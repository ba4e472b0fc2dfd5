package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/crm-api/internal/client"
	"github.com/BruksfildServices01/crm-api/internal/domain/project"
	"github.com/BruksfildServices01/crm-api/internal/dto"
)

var (
	usSearch  string
	usPage    int
	usPerPage int
)

func init() {
	rootCmd.AddCommand(usersCmd, statsCmd)
	usersCmd.AddCommand(usersListCmd)

	usersListCmd.Flags().StringVar(&usSearch, "search", "", "Match name or email")
	usersListCmd.Flags().IntVar(&usPage, "page", 1, "Page number")
	usersListCmd.Flags().IntVar(&usPerPage, "per-page", 0, "Page size (server default when 0)")
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		page, err := api.ListUsers(cmd.Context(), client.ListParams{
			Search:  usSearch,
			Page:    usPage,
			PerPage: usPerPage,
		})
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), page)
		}
		if err := printUsers(cmd, page.Data); err != nil {
			return err
		}
		m := page.Pagination
		pageFooter(cmd.OutOrStdout(), m.CurrentPage, m.LastPage, m.Total)
		return nil
	}),
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard totals",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		stats, err := api.DashboardStats(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), stats)
		}

		tw := newTable(cmd.OutOrStdout(), "METRIC", "COUNT")
		fmt.Fprintf(tw, "users\t%d\n", stats.TotalUsers)
		fmt.Fprintf(tw, "contacts\t%d\n", stats.TotalContacts)
		fmt.Fprintf(tw, "projects\t%d\n", stats.TotalProjects)

		keys := make([]string, 0, len(stats.ProjectsByStatus))
		for k := range stats.ProjectsByStatus {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			s, _ := strconv.Atoi(k)
			fmt.Fprintf(tw, "  %s\t%d\n", project.StatusText(s), stats.ProjectsByStatus[k])
		}
		return tw.Flush()
	}),
}

func printUsers(cmd *cobra.Command, items []dto.UserDTO) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), items)
	}
	tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "EMAIL", "VERIFIED")
	for _, u := range items {
		verified := "no"
		if u.EmailVerifiedAt != nil {
			verified = u.EmailVerifiedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, verified)
	}
	return tw.Flush()
}
