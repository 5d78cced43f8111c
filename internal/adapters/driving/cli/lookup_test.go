package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

func TestLookup_Found(t *testing.T) {
	contact := sampleContact()
	mock := &mockContactsService{contact: &contact}
	setupTestServices(t, mock)

	out, err := executeCommand("lookup", "+31 648 502 148")
	require.NoError(t, err)
	assert.Equal(t, "+31 648 502 148", mock.lastPhone)
	assert.Equal(t, "Ada Lovelace\n", out)
}

func TestLookup_NoMatch(t *testing.T) {
	setupTestServices(t, &mockContactsService{})

	out, err := executeCommand("lookup", "5550100")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownName+"\n", out)
}

func TestLookup_NoMatchJSON(t *testing.T) {
	setupTestServices(t, &mockContactsService{})

	out, err := executeCommand("lookup", "5550100", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"found": false`)
}

func TestLookup_FoundJSON(t *testing.T) {
	contact := sampleContact()
	setupTestServices(t, &mockContactsService{contact: &contact})

	out, err := executeCommand("lookup", "5550100", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fullName": "Ada Lovelace"`)
}
