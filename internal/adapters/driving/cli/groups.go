package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage contact groups",
}

var groupsJSON bool

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact groups",
	Args:  cobra.NoArgs,
	RunE:  runGroupsList,
}

var (
	membersJSON  bool
	membersPlain bool
)

var groupsMembersCmd = &cobra.Command{
	Use:   "members [name]",
	Short: "List the contacts in a group",
	Long: `Lists the members of the group with the exact given name. A group
that does not exist yields no members.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupsMembers,
}

func init() {
	groupsListCmd.Flags().BoolVar(&groupsJSON, "json", false, "output as JSON")

	groupsMembersCmd.Flags().BoolVar(&membersJSON, "json", false, "output as JSON")
	groupsMembersCmd.Flags().BoolVar(&membersPlain, "plain", false, "output as tab-separated plain text")

	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsMembersCmd)
	rootCmd.AddCommand(groupsCmd)
}

func runGroupsList(cmd *cobra.Command, _ []string) error {
	groups, err := contactsService.ListGroups(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing groups: %w", err)
	}

	if groupsJSON {
		return outputJSON(cmd, groups)
	}

	if len(groups) == 0 {
		cmd.Println("No groups found")
		return nil
	}
	cmd.Printf("Found %d group(s):\n\n", len(groups))
	for i := range groups {
		cmd.Printf("[%s]\n  Name: %s\n  Members: %d\n\n", groups[i].ID, groups[i].Name, groups[i].MemberCount)
	}
	return nil
}

func runGroupsMembers(cmd *cobra.Command, args []string) error {
	name := args[0]

	contacts, err := contactsService.GroupMembers(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("listing group members: %w", err)
	}

	switch {
	case membersJSON:
		return outputJSON(cmd, contacts)
	case membersPlain:
		outputContactsPlain(cmd, contacts)
	default:
		if len(contacts) == 0 {
			cmd.Printf("No members in group '%s'\n", name)
			return nil
		}
		cmd.Printf("Found %d member(s) in group '%s':\n\n", len(contacts), name)
		for i := range contacts {
			printContact(cmd, contacts[i], false)
		}
	}
	return nil
}
