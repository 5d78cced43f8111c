// Command contactbook is a CLI and MCP server for the Apple Contacts
// directory, driving Contacts.app through generated AppleScripts.
package main

import (
	"fmt"
	"os"

	"github.com/salmonumbrella/Contactbook/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
