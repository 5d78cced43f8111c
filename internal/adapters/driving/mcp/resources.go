package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Contactbook resources.
const uriScheme = "contactbook://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing groups.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "groups",
		Name:        "groups",
		Description: "Contact groups with their member counts",
		MIMEType:    "application/json",
	}, s.handleGroupsResource)

	// Template for a single contact.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "contacts/{contactId}",
		Name:        "contact",
		Description: "A single contact by identifier",
		MIMEType:    "application/json",
	}, s.handleContactResource)
}

// handleGroupsResource returns all contact groups as JSON.
func (s *Server) handleGroupsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	groups, err := s.ports.Contacts.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	output := make([]GroupOutput, len(groups))
	for i := range groups {
		output[i] = GroupOutput{
			ID:          groups[i].ID,
			Name:        groups[i].Name,
			MemberCount: groups[i].MemberCount,
		}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleContactResource returns one contact as JSON, or ResourceNotFound
// when the id does not match.
func (s *Server) handleContactResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := strings.TrimPrefix(req.Params.URI, uriScheme+"contacts/")

	contact, err := s.ports.Contacts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	out := contactOutput(*contact)
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
