package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

func sampleContact() domain.Contact {
	org := "Analytical Engines"
	title := "Countess"
	return domain.Contact{
		ID:           "id-1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		FullName:     "Ada Lovelace",
		Emails:       []string{"ada@example.org"},
		Phones:       []string{"+44 20 555 0100"},
		Organization: &org,
		JobTitle:     &title,
		Addresses:    []string{},
	}
}

func TestContactsList(t *testing.T) {
	mock := &mockContactsService{contacts: []domain.Contact{sampleContact()}}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 contact(s)")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Work: Countess at Analytical Engines")
}

func TestContactsList_LimitFlag(t *testing.T) {
	mock := &mockContactsService{}
	setupTestServices(t, mock)

	_, err := executeCommand("contacts", "list", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, mock.lastLimit)
}

func TestContactsList_Empty(t *testing.T) {
	setupTestServices(t, &mockContactsService{})

	out, err := executeCommand("contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts found")
}

func TestContactsList_Quiet(t *testing.T) {
	mock := &mockContactsService{contacts: []domain.Contact{sampleContact()}}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestContactsList_Plain(t *testing.T) {
	mock := &mockContactsService{contacts: []domain.Contact{sampleContact()}}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "list", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "id-1\tAda Lovelace\t+44 20 555 0100\tada@example.org\n", out)
}

func TestContactsList_JSON(t *testing.T) {
	mock := &mockContactsService{contacts: []domain.Contact{sampleContact()}}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fullName": "Ada Lovelace"`)
}

func TestContactsList_ServiceError(t *testing.T) {
	setupTestServices(t, &mockContactsService{err: errors.New("script failed")})

	_, err := executeCommand("contacts", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing contacts")
}

func TestContactsSearch(t *testing.T) {
	mock := &mockContactsService{contacts: []domain.Contact{sampleContact()}}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "search", "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", mock.lastQuery)
	assert.Contains(t, out, "matching 'ada'")
}

func TestContactsSearch_NoMatches(t *testing.T) {
	setupTestServices(t, &mockContactsService{})

	out, err := executeCommand("contacts", "search", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts matching 'nobody'")
}

func TestContactsGet(t *testing.T) {
	contact := sampleContact()
	mock := &mockContactsService{contact: &contact}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "get", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", mock.lastID)
	assert.Contains(t, out, "Ada Lovelace")
}

func TestContactsGet_NotFound(t *testing.T) {
	setupTestServices(t, &mockContactsService{})

	_, err := executeCommand("contacts", "get", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactsCreate(t *testing.T) {
	mock := &mockContactsService{newID: "new-id"}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "create",
		"--first-name", "Ada",
		"--email", "ada@example.org")
	require.NoError(t, err)
	assert.Contains(t, out, "Contact created with ID: new-id")

	require.NotNil(t, mock.lastDraft.FirstName)
	assert.Equal(t, "Ada", *mock.lastDraft.FirstName)
	require.NotNil(t, mock.lastDraft.Email)
	assert.Equal(t, "ada@example.org", *mock.lastDraft.Email)
	assert.Nil(t, mock.lastDraft.LastName, "unset flags must stay nil")
	assert.Nil(t, mock.lastDraft.Organization)
}

func TestContactsCreate_InvalidInput(t *testing.T) {
	setupTestServices(t, &mockContactsService{err: domain.ErrInvalidInput})

	_, err := executeCommand("contacts", "create", "--email", "a@b.c")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactsUpdate(t *testing.T) {
	mock := &mockContactsService{updated: true}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "update", "id-1", "--job-title", "Countess")
	require.NoError(t, err)
	assert.Contains(t, out, "updated successfully")

	assert.Equal(t, "id-1", mock.lastID)
	require.NotNil(t, mock.lastUpdate.JobTitle)
	assert.Equal(t, "Countess", *mock.lastUpdate.JobTitle)
	assert.Nil(t, mock.lastUpdate.FirstName)
}

func TestContactsUpdate_EmptyStringFlag(t *testing.T) {
	mock := &mockContactsService{updated: true}
	setupTestServices(t, mock)

	_, err := executeCommand("contacts", "update", "id-1", "--organization", "")
	require.NoError(t, err)

	// An explicit empty value clears the field, so it must be forwarded.
	require.NotNil(t, mock.lastUpdate.Organization)
	assert.Equal(t, "", *mock.lastUpdate.Organization)
}

func TestContactsUpdate_NothingApplied(t *testing.T) {
	setupTestServices(t, &mockContactsService{updated: false})

	out, err := executeCommand("contacts", "update", "id-1")
	require.NoError(t, err)
	assert.Contains(t, out, "No updates applied")
}

func TestContactsDelete_Force(t *testing.T) {
	mock := &mockContactsService{deleted: true}
	setupTestServices(t, mock)

	out, err := executeCommand("contacts", "delete", "id-1", "--force")
	require.NoError(t, err)
	assert.Equal(t, "id-1", mock.lastID)
	assert.Contains(t, out, "deleted successfully")
}

func TestContactsDelete_NotFound(t *testing.T) {
	setupTestServices(t, &mockContactsService{deleted: false})

	out, err := executeCommand("contacts", "delete", "missing", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Failed to delete contact")
}

func TestContactsDelete_JSON(t *testing.T) {
	setupTestServices(t, &mockContactsService{deleted: true})

	out, err := executeCommand("contacts", "delete", "id-1", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
}
