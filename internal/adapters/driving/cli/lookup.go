package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [phone-number]",
	Short: "Look up a contact by phone number",
	Long: `Finds the first contact whose phone values match the given number.

The number is normalized by stripping every non-digit character and
matching on its trailing seven digits, so mixed international formats
still hit. Scanning a large directory can take a while.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	contact, err := contactsService.LookupByPhone(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up phone number: %w", err)
	}

	if lookupJSON {
		if contact == nil {
			return outputJSON(cmd, map[string]any{"found": false})
		}
		return outputJSON(cmd, contact)
	}

	if contact == nil {
		cmd.Println(domain.UnknownName)
		return nil
	}
	cmd.Println(contact.FullName)
	return nil
}
