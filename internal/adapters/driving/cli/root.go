// Package cli implements the cobra command tree for the contactbook
// binary. Commands talk to the core exclusively through the driving
// ports, so tests can swap in mock services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/Contactbook/internal/adapters/driven/config/file"
	"github.com/salmonumbrella/Contactbook/internal/adapters/driven/osascript"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driven"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driving"
	"github.com/salmonumbrella/Contactbook/internal/core/services"
	"github.com/salmonumbrella/Contactbook/internal/logger"
)

// version is overridden via ldflags at release time.
var version = "1.0.0"

var (
	verbose bool

	contactsService driving.ContactsService
	configStore     driven.ConfigStore
	scriptRunner    *osascript.Runner
)

var rootCmd = &cobra.Command{
	Use:   "contactbook",
	Short: "Apple Contacts CLI and MCP server",
	Long: `Contactbook queries and mutates the Apple Contacts directory by
driving Contacts.app through generated AppleScripts.

The directory itself lives inside Contacts.app; every read is a fresh
query and every write is immediately durable or immediately failed.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute wires the default adapters and runs the root command.
func Execute() error {
	if contactsService == nil {
		if err := initServices(); err != nil {
			return err
		}
	}
	return rootCmd.Execute()
}

// initServices builds the production service graph: TOML config,
// osascript runner, contacts service.
func initServices() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	scriptRunner = osascript.New()
	contactsService = services.NewContactsService(scriptRunner)
	applyConfig()

	return nil
}

// applyConfig pushes the store's current values into the wired adapters.
// It runs at startup and again after every config reload, so edits to
// the config file reach a running MCP server.
func applyConfig() {
	if configStore == nil {
		return
	}
	if scriptRunner != nil {
		scriptRunner.SetBinary(configStore.GetString(driven.ConfigKeyInterpreterPath))
	}
	if svc, ok := contactsService.(*services.ContactsService); ok {
		svc.Configure(configStore)
	}
}
