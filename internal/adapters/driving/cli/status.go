package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

var (
	statusJSON  bool
	statusPlain bool
	statusQuiet bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Contacts authorization status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var (
	authorizeJSON  bool
	authorizePlain bool
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Request Contacts access",
	Long: `Requests automation access to Contacts.app. The first request makes
macOS show its consent prompt; later requests just report the stored
decision. Exits non-zero when access is not granted.`,
	Args: cobra.NoArgs,
	RunE: runAuthorize,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	statusCmd.Flags().BoolVar(&statusPlain, "plain", false, "output the raw status only")
	statusCmd.Flags().BoolVar(&statusQuiet, "quiet", false, "omit guidance")
	rootCmd.AddCommand(statusCmd)

	authorizeCmd.Flags().BoolVar(&authorizeJSON, "json", false, "output as JSON")
	authorizeCmd.Flags().BoolVar(&authorizePlain, "plain", false, "output the raw status only")
	rootCmd.AddCommand(authorizeCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	status, err := contactsService.AuthorizationStatus(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading authorization status: %w", err)
	}

	return printStatus(cmd, status, statusJSON, statusPlain, statusQuiet)
}

func runAuthorize(cmd *cobra.Command, _ []string) error {
	// The probe itself triggers the consent prompt when the user has not
	// been asked yet, so status and request are the same call.
	status, err := contactsService.AuthorizationStatus(cmd.Context())
	if err != nil {
		return fmt.Errorf("requesting authorization: %w", err)
	}

	if err := printStatus(cmd, status, authorizeJSON, authorizePlain, false); err != nil {
		return err
	}

	if !status.IsAuthorized() {
		return domain.ErrAccessDenied
	}
	return nil
}

func printStatus(cmd *cobra.Command, status domain.AuthorizationStatus, asJSON, asPlain, quiet bool) error {
	switch {
	case asJSON:
		return outputJSON(cmd, map[string]any{
			"status":     status.String(),
			"authorized": status.IsAuthorized(),
		})
	case asPlain:
		cmd.Println(status.String())
	default:
		cmd.Printf("Contacts access: %s\n", status.Description())
		if !quiet && !status.IsAuthorized() {
			cmd.Println(status.Guidance())
		}
	}
	return nil
}
