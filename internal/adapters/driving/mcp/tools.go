package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

// ContactOutput represents a contact in tool results.
type ContactOutput struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	FullName     string   `json:"full_name"`
	Emails       []string `json:"emails"`
	Phones       []string `json:"phones"`
	Organization string   `json:"organization,omitempty"`
	JobTitle     string   `json:"job_title,omitempty"`
	Note         string   `json:"note,omitempty"`
	Birthday     string   `json:"birthday,omitempty"`
	Addresses    []string `json:"addresses,omitempty"`
}

// GroupOutput represents a contact group in tool results.
type GroupOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

// ListInput is the input schema for the contacts_list tool.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of contacts to return (default 50)"`
}

// SearchInput is the input schema for the contacts_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"substring to match against contact names"`
}

// GetInput is the input schema for the contacts_get tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"the contact identifier"`
}

// CreateInput is the input schema for the contacts_create tool.
type CreateInput struct {
	FirstName    *string `json:"first_name,omitempty" jsonschema:"first name"`
	LastName     *string `json:"last_name,omitempty" jsonschema:"last name"`
	Email        *string `json:"email,omitempty" jsonschema:"email address, stored with the work label"`
	Phone        *string `json:"phone,omitempty" jsonschema:"phone number, stored with the mobile label"`
	Organization *string `json:"organization,omitempty" jsonschema:"organization or company"`
	JobTitle     *string `json:"job_title,omitempty" jsonschema:"job title"`
}

// UpdateInput is the input schema for the contacts_update tool.
// Omitted fields are left untouched.
type UpdateInput struct {
	ID           string  `json:"id" jsonschema:"the contact identifier"`
	FirstName    *string `json:"first_name,omitempty" jsonschema:"new first name"`
	LastName     *string `json:"last_name,omitempty" jsonschema:"new last name"`
	Organization *string `json:"organization,omitempty" jsonschema:"new organization"`
	JobTitle     *string `json:"job_title,omitempty" jsonschema:"new job title"`
}

// DeleteInput is the input schema for the contacts_delete tool.
type DeleteInput struct {
	ID string `json:"id" jsonschema:"the contact identifier"`
}

// MembersInput is the input schema for the group_members tool.
type MembersInput struct {
	GroupName string `json:"group_name" jsonschema:"exact name of the contact group"`
}

// LookupInput is the input schema for the lookup_by_phone tool.
type LookupInput struct {
	PhoneNumber string `json:"phone_number" jsonschema:"phone number in any format, e.g. +31 648 502 148"`
}

// ContactsOutput is the output schema for tools returning contact lists.
type ContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// ContactOutputOptional is the output schema for tools returning at most
// one contact.
type ContactOutputOptional struct {
	Found   bool           `json:"found"`
	Contact *ContactOutput `json:"contact,omitempty"`
}

// CreateOutput is the output schema for the contacts_create tool.
type CreateOutput struct {
	ID string `json:"id"`
}

// UpdateOutput is the output schema for the contacts_update tool.
type UpdateOutput struct {
	Updated bool `json:"updated"`
}

// DeleteOutput is the output schema for the contacts_delete tool.
type DeleteOutput struct {
	Deleted bool `json:"deleted"`
}

// GroupsOutput is the output schema for the groups_list tool.
type GroupsOutput struct {
	Groups []GroupOutput `json:"groups"`
	Count  int           `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_list",
		Description: "List contacts from the Apple Contacts directory",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_search",
		Description: "Search contacts by name substring",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_get",
		Description: "Get a single contact by its identifier",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_create",
		Description: "Create a new contact; requires a first name, last name, or organization",
	}, s.handleCreate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_update",
		Description: "Update fields of an existing contact; omitted fields are untouched",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contacts_delete",
		Description: "Delete a contact by its identifier",
	}, s.handleDelete)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "groups_list",
		Description: "List contact groups with their member counts",
	}, s.handleGroups)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "group_members",
		Description: "List the contacts in a named group",
	}, s.handleGroupMembers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_by_phone",
		Description: "Find the contact matching a phone number in any format",
	}, s.handleLookup)
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ContactsOutput, error) {
	contacts, err := s.ports.Contacts.List(ctx, input.Limit)
	if err != nil {
		return nil, ContactsOutput{}, err
	}
	return nil, contactsOutput(contacts), nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ContactsOutput, error) {
	contacts, err := s.ports.Contacts.Search(ctx, input.Query)
	if err != nil {
		return nil, ContactsOutput{}, err
	}
	return nil, contactsOutput(contacts), nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, ContactOutputOptional, error) {
	contact, err := s.ports.Contacts.Get(ctx, input.ID)
	if err != nil {
		return nil, ContactOutputOptional{}, err
	}
	return nil, optionalOutput(contact), nil
}

func (s *Server) handleCreate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateInput,
) (*mcp.CallToolResult, CreateOutput, error) {
	draft := domain.ContactDraft{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Organization: input.Organization,
		JobTitle:     input.JobTitle,
	}

	id, err := s.ports.Contacts.Create(ctx, draft)
	if err != nil {
		return nil, CreateOutput{}, err
	}
	return nil, CreateOutput{ID: id}, nil
}

func (s *Server) handleUpdate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateInput,
) (*mcp.CallToolResult, UpdateOutput, error) {
	update := domain.ContactUpdate{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Organization: input.Organization,
		JobTitle:     input.JobTitle,
	}

	updated, err := s.ports.Contacts.Update(ctx, input.ID, update)
	if err != nil {
		return nil, UpdateOutput{}, err
	}
	return nil, UpdateOutput{Updated: updated}, nil
}

func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	deleted, err := s.ports.Contacts.Delete(ctx, input.ID)
	if err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{Deleted: deleted}, nil
}

func (s *Server) handleGroups(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, GroupsOutput, error) {
	groups, err := s.ports.Contacts.ListGroups(ctx)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	output := GroupsOutput{
		Groups: make([]GroupOutput, len(groups)),
		Count:  len(groups),
	}
	for i := range groups {
		output.Groups[i] = GroupOutput{
			ID:          groups[i].ID,
			Name:        groups[i].Name,
			MemberCount: groups[i].MemberCount,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGroupMembers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MembersInput,
) (*mcp.CallToolResult, ContactsOutput, error) {
	contacts, err := s.ports.Contacts.GroupMembers(ctx, input.GroupName)
	if err != nil {
		return nil, ContactsOutput{}, err
	}
	return nil, contactsOutput(contacts), nil
}

func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, ContactOutputOptional, error) {
	contact, err := s.ports.Contacts.LookupByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return nil, ContactOutputOptional{}, err
	}
	return nil, optionalOutput(contact), nil
}

// contactOutput converts a domain contact to its tool representation.
func contactOutput(c domain.Contact) ContactOutput {
	out := ContactOutput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName,
		Emails:    c.Emails,
		Phones:    c.Phones,
		Addresses: c.Addresses,
	}
	if c.Organization != nil {
		out.Organization = *c.Organization
	}
	if c.JobTitle != nil {
		out.JobTitle = *c.JobTitle
	}
	if c.Note != nil {
		out.Note = *c.Note
	}
	if c.Birthday != nil {
		out.Birthday = *c.Birthday
	}
	return out
}

func contactsOutput(contacts []domain.Contact) ContactsOutput {
	output := ContactsOutput{
		Contacts: make([]ContactOutput, len(contacts)),
		Count:    len(contacts),
	}
	for i := range contacts {
		output.Contacts[i] = contactOutput(contacts[i])
	}
	return output
}

func optionalOutput(contact *domain.Contact) ContactOutputOptional {
	if contact == nil {
		return ContactOutputOptional{Found: false}
	}
	out := contactOutput(*contact)
	return ContactOutputOptional{Found: true, Contact: &out}
}
