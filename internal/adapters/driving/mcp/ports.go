package mcp

import (
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts exposes the Apple Contacts directory.
	Contacts driving.ContactsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactsService
	}
	return nil
}
