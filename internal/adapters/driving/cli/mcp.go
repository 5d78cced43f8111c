package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/Contactbook/internal/adapters/driven/config/file"
	"github.com/salmonumbrella/Contactbook/internal/adapters/driving/mcp"
	"github.com/salmonumbrella/Contactbook/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "contactbook": {
        "command": "/path/to/contactbook",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Contacts: contactsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// The server outlives a single config read; pick up edits to the
	// config file while it runs and push them into the live adapters.
	if store, ok := configStore.(*file.ConfigStore); ok {
		go func() {
			if err := store.Watch(cmd.Context(), applyConfig); err != nil {
				logger.Warn("Config watch stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
