package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage contacts",
	Long:  `List, search, inspect, create, update, and delete contacts.`,
}

var (
	listLimit int
	listJSON  bool
	listPlain bool
	listQuiet bool
)

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `Lists contacts in Contacts.app iteration order, up to the limit
(default 50).`,
	Args: cobra.NoArgs,
	RunE: runContactsList,
}

var (
	searchJSON  bool
	searchPlain bool
	searchQuiet bool
)

var contactsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts by name",
	Long: `Searches contacts whose composite name contains the query as a
substring, using Contacts.app's own matching.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactsSearch,
}

var getJSON bool

var contactsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a contact by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsGet,
}

var createJSON bool

var contactsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new contact",
	Long: `Creates a contact. At least one of --first-name, --last-name, or
--organization is required. The email is stored with the "work" label
and the phone with the "mobile" label.`,
	Args: cobra.NoArgs,
	RunE: runContactsCreate,
}

var updateJSON bool

var contactsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing contact",
	Long: `Updates only the fields whose flags are supplied; omitted fields
keep their current values in Contacts.app.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactsUpdate,
}

var (
	deleteForce bool
	deleteJSON  bool
)

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsDelete,
}

func init() {
	contactsListCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of contacts to return (default 50)")
	contactsListCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	contactsListCmd.Flags().BoolVar(&listPlain, "plain", false, "output as tab-separated plain text")
	contactsListCmd.Flags().BoolVar(&listQuiet, "quiet", false, "output count only")

	contactsSearchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	contactsSearchCmd.Flags().BoolVar(&searchPlain, "plain", false, "output as tab-separated plain text")
	contactsSearchCmd.Flags().BoolVar(&searchQuiet, "quiet", false, "output count only")

	contactsGetCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")

	contactsCreateCmd.Flags().String("first-name", "", "first name")
	contactsCreateCmd.Flags().String("last-name", "", "last name")
	contactsCreateCmd.Flags().String("email", "", "email address")
	contactsCreateCmd.Flags().String("phone", "", "phone number")
	contactsCreateCmd.Flags().String("organization", "", "organization/company")
	contactsCreateCmd.Flags().String("job-title", "", "job title")
	contactsCreateCmd.Flags().BoolVar(&createJSON, "json", false, "output as JSON")

	contactsUpdateCmd.Flags().String("first-name", "", "first name")
	contactsUpdateCmd.Flags().String("last-name", "", "last name")
	contactsUpdateCmd.Flags().String("organization", "", "organization/company")
	contactsUpdateCmd.Flags().String("job-title", "", "job title")
	contactsUpdateCmd.Flags().BoolVar(&updateJSON, "json", false, "output as JSON")

	contactsDeleteCmd.Flags().BoolVar(&deleteForce, "force", false, "skip confirmation")
	contactsDeleteCmd.Flags().BoolVar(&deleteJSON, "json", false, "output as JSON")

	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsSearchCmd)
	contactsCmd.AddCommand(contactsGetCmd)
	contactsCmd.AddCommand(contactsCreateCmd)
	contactsCmd.AddCommand(contactsUpdateCmd)
	contactsCmd.AddCommand(contactsDeleteCmd)
	rootCmd.AddCommand(contactsCmd)
}

func runContactsList(cmd *cobra.Command, _ []string) error {
	contacts, err := contactsService.List(cmd.Context(), listLimit)
	if err != nil {
		return fmt.Errorf("listing contacts: %w", err)
	}

	switch {
	case listJSON:
		return outputJSON(cmd, contacts)
	case listQuiet:
		cmd.Println(len(contacts))
	case listPlain:
		outputContactsPlain(cmd, contacts)
	default:
		if len(contacts) == 0 {
			cmd.Println("No contacts found")
			return nil
		}
		cmd.Printf("Found %d contact(s):\n\n", len(contacts))
		for i := range contacts {
			printContact(cmd, contacts[i], false)
		}
	}
	return nil
}

func runContactsSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	contacts, err := contactsService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("searching contacts: %w", err)
	}

	switch {
	case searchJSON:
		return outputJSON(cmd, contacts)
	case searchQuiet:
		cmd.Println(len(contacts))
	case searchPlain:
		outputContactsPlain(cmd, contacts)
	default:
		if len(contacts) == 0 {
			cmd.Printf("No contacts matching '%s'\n", query)
			return nil
		}
		cmd.Printf("Found %d contact(s) matching '%s':\n\n", len(contacts), query)
		for i := range contacts {
			printContact(cmd, contacts[i], false)
		}
	}
	return nil
}

func runContactsGet(cmd *cobra.Command, args []string) error {
	contact, err := contactsService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting contact: %w", err)
	}
	if contact == nil {
		return fmt.Errorf("contact %s: %w", args[0], domain.ErrNotFound)
	}

	if getJSON {
		return outputJSON(cmd, contact)
	}
	printContact(cmd, *contact, true)
	return nil
}

func runContactsCreate(cmd *cobra.Command, _ []string) error {
	draft := domain.ContactDraft{
		FirstName:    changedFlag(cmd, "first-name"),
		LastName:     changedFlag(cmd, "last-name"),
		Email:        changedFlag(cmd, "email"),
		Phone:        changedFlag(cmd, "phone"),
		Organization: changedFlag(cmd, "organization"),
		JobTitle:     changedFlag(cmd, "job-title"),
	}

	id, err := contactsService.Create(cmd.Context(), draft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("creating contact: %w", err)
	}

	if createJSON {
		return outputJSON(cmd, map[string]any{"id": id, "success": true})
	}
	cmd.Printf("Contact created with ID: %s\n", id)
	return nil
}

func runContactsUpdate(cmd *cobra.Command, args []string) error {
	update := domain.ContactUpdate{
		FirstName:    changedFlag(cmd, "first-name"),
		LastName:     changedFlag(cmd, "last-name"),
		Organization: changedFlag(cmd, "organization"),
		JobTitle:     changedFlag(cmd, "job-title"),
	}

	updated, err := contactsService.Update(cmd.Context(), args[0], update)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}

	if updateJSON {
		return outputJSON(cmd, map[string]any{"success": updated})
	}
	if updated {
		cmd.Println("Contact updated successfully")
	} else {
		cmd.Println("No updates applied (either contact not found or no fields provided)")
	}
	return nil
}

func runContactsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !deleteForce && !deleteJSON && term.IsTerminal(int(os.Stdin.Fd())) {
		cmd.Printf("Are you sure you want to delete contact %s? (y/N) ", id)
		reader := bufio.NewReader(cmd.InOrStdin())
		response, _ := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			cmd.Println("Cancelled")
			return nil
		}
	}

	deleted, err := contactsService.Delete(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	if deleteJSON {
		return outputJSON(cmd, map[string]any{"success": deleted})
	}
	if deleted {
		cmd.Println("Contact deleted successfully")
	} else {
		cmd.Println("Failed to delete contact (may not exist)")
	}
	return nil
}

// changedFlag returns a pointer to the flag value when it was explicitly
// supplied, distinguishing "unset" from "set to empty".
func changedFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}
