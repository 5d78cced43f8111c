package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

// outputJSON pretty-prints any value as JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputContactsPlain prints one tab-separated line per contact:
// id, full name, phones, emails.
func outputContactsPlain(cmd *cobra.Command, contacts []domain.Contact) {
	for i := range contacts {
		cmd.Printf("%s\t%s\t%s\t%s\n",
			contacts[i].ID,
			contacts[i].FullName,
			strings.Join(contacts[i].Phones, ";"),
			strings.Join(contacts[i].Emails, ";"))
	}
}

// printContact renders a human-readable contact card.
func printContact(cmd *cobra.Command, contact domain.Contact, detailed bool) {
	cmd.Printf("[%s]\n", contact.ID)
	cmd.Printf("  Name: %s\n", contact.FullName)

	switch {
	case contact.Organization != nil && contact.JobTitle != nil:
		cmd.Printf("  Work: %s at %s\n", *contact.JobTitle, *contact.Organization)
	case contact.Organization != nil:
		cmd.Printf("  Organization: %s\n", *contact.Organization)
	case contact.JobTitle != nil:
		cmd.Printf("  Title: %s\n", *contact.JobTitle)
	}

	if len(contact.Emails) > 0 {
		cmd.Printf("  Email: %s\n", strings.Join(contact.Emails, ", "))
	}
	if len(contact.Phones) > 0 {
		cmd.Printf("  Phone: %s\n", strings.Join(contact.Phones, ", "))
	}

	if detailed {
		if contact.Birthday != nil {
			cmd.Printf("  Birthday: %s\n", *contact.Birthday)
		}
		if len(contact.Addresses) > 0 {
			cmd.Println("  Addresses:")
			for _, addr := range contact.Addresses {
				cmd.Printf("    - %s\n", strings.ReplaceAll(addr, "\n", ", "))
			}
		}
		if contact.Note != nil {
			cmd.Printf("  Note: %s\n", *contact.Note)
		}
	}

	cmd.Println()
}
