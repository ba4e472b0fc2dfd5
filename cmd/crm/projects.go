package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/crm-api/internal/client"
	"github.com/BruksfildServices01/crm-api/internal/dto"
)

var (
	pjSearch       string
	pjFilterStatus int
	pjPage         int
	pjPerPage      int

	pjName        string
	pjDescription string
	pjStatus      int
	pjContactID   uint
)

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsGetCmd, projectsCreateCmd, projectsUpdateCmd, projectsDeleteCmd)

	projectsListCmd.Flags().StringVar(&pjSearch, "search", "", "Match name or description")
	projectsListCmd.Flags().IntVar(&pjFilterStatus, "status", 0, "Filter by status (1 To Do, 2 In Progress, 3 Completed)")
	projectsListCmd.Flags().IntVar(&pjPage, "page", 1, "Page number")
	projectsListCmd.Flags().IntVar(&pjPerPage, "per-page", 0, "Page size (server default when 0)")

	for _, cmd := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		cmd.Flags().StringVar(&pjName, "name", "", "Project name")
		cmd.Flags().StringVar(&pjDescription, "description", "", "Description (empty clears it)")
		cmd.Flags().IntVar(&pjStatus, "status", 1, "Status (1 To Do, 2 In Progress, 3 Completed)")
		cmd.Flags().UintVar(&pjContactID, "contact-id", 0, "Linked contact (0 unlinks)")
	}
	_ = projectsCreateCmd.MarkFlagRequired("name")
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
	Long: `Manage your projects.

Examples:
  crm projects list --status 2
  crm projects create --name Website --contact-id 3
  crm projects update 7 --status 3
  crm projects delete 7`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		page, err := api.ListProjects(cmd.Context(), client.ListParams{
			Search:  pjSearch,
			Status:  pjFilterStatus,
			Page:    pjPage,
			PerPage: pjPerPage,
		})
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), page)
		}
		if err := printProjects(cmd, page.Data); err != nil {
			return err
		}
		m := page.Pagination
		pageFooter(cmd.OutOrStdout(), m.CurrentPage, m.LastPage, m.Total)
		return nil
	}),
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := api.GetProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printProject(cmd, p)
	}),
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		in := client.ProjectInput{Name: pjName, Status: pjStatus}
		applyProjectFlags(cmd, &in)
		p, err := api.CreateProject(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printProject(cmd, p)
	}),
}

// The API replaces a project whole, so update starts from the stored
// values and overlays the flags that were set.
var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		current, err := api.GetProject(cmd.Context(), id)
		if err != nil {
			return err
		}

		in := client.ProjectInput{
			Name:        current.Name,
			Description: current.Description,
			Status:      current.Status,
			ContactID:   current.ContactID,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			in.Name = pjName
		}
		if flags.Changed("status") {
			in.Status = pjStatus
		}
		applyProjectFlags(cmd, &in)

		p, err := api.UpdateProject(cmd.Context(), id, in)
		if err != nil {
			return err
		}
		return printProject(cmd, p)
	}),
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := api.DeleteProject(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project %d deleted.\n", id)
		return nil
	}),
}

func applyProjectFlags(cmd *cobra.Command, in *client.ProjectInput) {
	flags := cmd.Flags()
	if flags.Changed("description") {
		in.Description = nil
		if pjDescription != "" {
			in.Description = &pjDescription
		}
	}
	if flags.Changed("contact-id") {
		in.ContactID = nil
		if pjContactID != 0 {
			in.ContactID = &pjContactID
		}
	}
}

func printProject(cmd *cobra.Command, p *dto.ProjectDTO) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), p)
	}
	return printProjects(cmd, []dto.ProjectDTO{*p})
}

func printProjects(cmd *cobra.Command, items []dto.ProjectDTO) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), items)
	}
	tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "STATUS", "CONTACT", "DESCRIPTION")
	for _, p := range items {
		contact := "-"
		if p.ContactID != nil {
			contact = fmt.Sprint(*p.ContactID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.StatusText, contact, deref(p.Description))
	}
	return tw.Flush()
}
