// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Contactbook. It enables AI assistants like Claude to query and mutate the
// Apple Contacts directory.
package mcp

import "errors"

// ErrMissingContactsService is returned when the contacts service is not provided.
var ErrMissingContactsService = errors.New("mcp: contacts service is required")
