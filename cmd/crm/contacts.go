package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/crm-api/internal/client"
	"github.com/BruksfildServices01/crm-api/internal/dto"
)

var (
	ctSearch  string
	ctAll     bool
	ctPage    int
	ctPerPage int

	ctName    string
	ctEmail   string
	ctPhone   string
	ctCompany string
	ctUserID  uint
)

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.AddCommand(contactsListCmd, contactsGetCmd, contactsCreateCmd, contactsUpdateCmd, contactsDeleteCmd)

	contactsListCmd.Flags().StringVar(&ctSearch, "search", "", "Match name, email or company")
	contactsListCmd.Flags().BoolVar(&ctAll, "all", false, "Include contacts owned by other users")
	contactsListCmd.Flags().IntVar(&ctPage, "page", 1, "Page number")
	contactsListCmd.Flags().IntVar(&ctPerPage, "per-page", 0, "Page size (server default when 0)")

	for _, cmd := range []*cobra.Command{contactsCreateCmd, contactsUpdateCmd} {
		cmd.Flags().StringVar(&ctName, "name", "", "Contact name")
		cmd.Flags().StringVar(&ctEmail, "email", "", "Contact email")
		cmd.Flags().StringVar(&ctPhone, "phone", "", "Phone number")
		cmd.Flags().StringVar(&ctCompany, "company", "", "Company")
		cmd.Flags().UintVar(&ctUserID, "user-id", 0, "Owner user id")
	}
	_ = contactsCreateCmd.MarkFlagRequired("email")
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage contacts",
	Long: `Manage contacts. Without --all only your own contacts are listed.

Examples:
  crm contacts list --search acme
  crm contacts create --email bob@acme.test --company Acme
  crm contacts update 4 --phone 555-0100
  crm contacts delete 4`,
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		page, err := api.ListContacts(cmd.Context(), client.ListParams{
			Search:  ctSearch,
			All:     ctAll,
			Page:    ctPage,
			PerPage: ctPerPage,
		})
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), page)
		}
		if err := printContacts(cmd, page.Data); err != nil {
			return err
		}
		m := page.Pagination
		pageFooter(cmd.OutOrStdout(), m.CurrentPage, m.LastPage, m.Total)
		return nil
	}),
}

var contactsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a contact",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ct, err := api.GetContact(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printContact(cmd, ct)
	}),
}

var contactsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a contact",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, args []string) error {
		ct, err := api.CreateContact(cmd.Context(), contactInput(cmd))
		if err != nil {
			return err
		}
		return printContact(cmd, ct)
	}),
}

var contactsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the given fields of a contact",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ct, err := api.UpdateContact(cmd.Context(), id, contactInput(cmd))
		if err != nil {
			return err
		}
		return printContact(cmd, ct)
	}),
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact (its projects are unlinked)",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := api.DeleteContact(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contact %d deleted.\n", id)
		return nil
	}),
}

// contactInput sends only the flags the user actually set.
func contactInput(cmd *cobra.Command) client.ContactInput {
	var in client.ContactInput
	flags := cmd.Flags()
	if flags.Changed("name") {
		in.Name = &ctName
	}
	if flags.Changed("email") {
		in.Email = &ctEmail
	}
	if flags.Changed("phone") {
		in.PhoneNumber = &ctPhone
	}
	if flags.Changed("company") {
		in.Company = &ctCompany
	}
	if flags.Changed("user-id") {
		in.UserID = &ctUserID
	}
	return in
}

func printContact(cmd *cobra.Command, ct *dto.ContactDTO) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), ct)
	}
	return printContacts(cmd, []dto.ContactDTO{*ct})
}

func printContacts(cmd *cobra.Command, items []dto.ContactDTO) error {
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), items)
	}
	tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "EMAIL", "PHONE", "COMPANY", "OWNER")
	for _, ct := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			ct.ID, deref(ct.Name), ct.Email, deref(ct.PhoneNumber), deref(ct.Company), ct.UserID)
	}
	return tw.Flush()
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
