package mcp

import (
	"context"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driving"
)

// Ensure mock implements the interface.
var _ driving.ContactsService = (*mockContactsService)(nil)

// mockContactsService is a hand-written mock returning canned values.
type mockContactsService struct {
	contacts []domain.Contact
	contact  *domain.Contact
	groups   []domain.ContactGroup
	newID    string
	updated  bool
	deleted  bool
	status   domain.AuthorizationStatus
	err      error

	lastQuery  string
	lastID     string
	lastDraft  domain.ContactDraft
	lastUpdate domain.ContactUpdate
	lastGroup  string
	lastPhone  string
}

func (m *mockContactsService) List(_ context.Context, _ int) ([]domain.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactsService) Search(_ context.Context, query string) ([]domain.Contact, error) {
	m.lastQuery = query
	return m.contacts, m.err
}

func (m *mockContactsService) Get(_ context.Context, id string) (*domain.Contact, error) {
	m.lastID = id
	return m.contact, m.err
}

func (m *mockContactsService) Create(_ context.Context, draft domain.ContactDraft) (string, error) {
	m.lastDraft = draft
	return m.newID, m.err
}

func (m *mockContactsService) Update(_ context.Context, id string, update domain.ContactUpdate) (bool, error) {
	m.lastID = id
	m.lastUpdate = update
	return m.updated, m.err
}

func (m *mockContactsService) Delete(_ context.Context, id string) (bool, error) {
	m.lastID = id
	return m.deleted, m.err
}

func (m *mockContactsService) ListGroups(_ context.Context) ([]domain.ContactGroup, error) {
	return m.groups, m.err
}

func (m *mockContactsService) GroupMembers(_ context.Context, name string) ([]domain.Contact, error) {
	m.lastGroup = name
	return m.contacts, m.err
}

func (m *mockContactsService) LookupByPhone(_ context.Context, number string) (*domain.Contact, error) {
	m.lastPhone = number
	return m.contact, m.err
}

func (m *mockContactsService) AuthorizationStatus(_ context.Context) (domain.AuthorizationStatus, error) {
	return m.status, m.err
}
