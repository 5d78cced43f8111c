package cli

import (
	"context"
	"time"

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

	lastLimit  int
	lastQuery  string
	lastID     string
	lastDraft  domain.ContactDraft
	lastUpdate domain.ContactUpdate
	lastGroup  string
	lastPhone  string
	calls      int
}

func (m *mockContactsService) List(_ context.Context, limit int) ([]domain.Contact, error) {
	m.calls++
	m.lastLimit = limit
	return m.contacts, m.err
}

func (m *mockContactsService) Search(_ context.Context, query string) ([]domain.Contact, error) {
	m.calls++
	m.lastQuery = query
	return m.contacts, m.err
}

func (m *mockContactsService) Get(_ context.Context, id string) (*domain.Contact, error) {
	m.calls++
	m.lastID = id
	return m.contact, m.err
}

func (m *mockContactsService) Create(_ context.Context, draft domain.ContactDraft) (string, error) {
	m.calls++
	m.lastDraft = draft
	return m.newID, m.err
}

func (m *mockContactsService) Update(_ context.Context, id string, update domain.ContactUpdate) (bool, error) {
	m.calls++
	m.lastID = id
	m.lastUpdate = update
	return m.updated, m.err
}

func (m *mockContactsService) Delete(_ context.Context, id string) (bool, error) {
	m.calls++
	m.lastID = id
	return m.deleted, m.err
}

func (m *mockContactsService) ListGroups(_ context.Context) ([]domain.ContactGroup, error) {
	m.calls++
	return m.groups, m.err
}

func (m *mockContactsService) GroupMembers(_ context.Context, name string) ([]domain.Contact, error) {
	m.calls++
	m.lastGroup = name
	return m.contacts, m.err
}

func (m *mockContactsService) LookupByPhone(_ context.Context, number string) (*domain.Contact, error) {
	m.calls++
	m.lastPhone = number
	return m.contact, m.err
}

func (m *mockContactsService) AuthorizationStatus(_ context.Context) (domain.AuthorizationStatus, error) {
	m.calls++
	return m.status, m.err
}

// recordingRunner captures the last script handed to a real service.
type recordingRunner struct {
	script  string
	timeout time.Duration
}

func (r *recordingRunner) Run(_ context.Context, script string, timeout time.Duration) (string, error) {
	r.script = script
	r.timeout = timeout
	return "", nil
}
