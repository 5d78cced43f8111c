package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

func strPtr(s string) *string { return &s }

// mockRunner records every script it is asked to run and returns canned
// output. An optional delay simulates a slow osascript process.
type mockRunner struct {
	mu       sync.Mutex
	scripts  []string
	timeouts []time.Duration
	output   string
	err      error
	delay    time.Duration
	starts   []time.Time
	ends     []time.Time
}

func (m *mockRunner) Run(_ context.Context, script string, timeout time.Duration) (string, error) {
	m.mu.Lock()
	m.scripts = append(m.scripts, script)
	m.timeouts = append(m.timeouts, timeout)
	m.starts = append(m.starts, time.Now())
	m.mu.Unlock()

	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	m.ends = append(m.ends, time.Now())
	m.mu.Unlock()
	return m.output, m.err
}

func (m *mockRunner) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scripts)
}

func (m *mockRunner) lastScript() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.scripts) == 0 {
		return ""
	}
	return m.scripts[len(m.scripts)-1]
}

func contactRow(id, first, last string) string {
	return strings.Join([]string{id, first, last, "", "", "", "", "", ""}, "\t")
}

func TestList_ParsesRows(t *testing.T) {
	runner := &mockRunner{output: contactRow("id-1", "Ada", "Lovelace") + "\n" + contactRow("id-2", "Grace", "Hopper")}
	svc := NewContactsService(runner)

	contacts, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ada Lovelace", contacts[0].FullName)

	// Default limit applies when the caller passes zero.
	assert.Contains(t, runner.lastScript(), fmt.Sprintf("contactCount >= %d", DefaultListLimit))
}

func TestList_ExplicitLimit(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	_, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Contains(t, runner.lastScript(), "contactCount >= 5")
}

func TestList_RunnerErrorPropagates(t *testing.T) {
	runner := &mockRunner{err: &domain.ScriptError{Stderr: "boom"}}
	svc := NewContactsService(runner)

	_, err := svc.List(context.Background(), 0)
	require.Error(t, err)

	var scriptErr *domain.ScriptError
	assert.True(t, errors.As(err, &scriptErr))
}

func TestSearch_EmptyOutputIsEmptySlice(t *testing.T) {
	runner := &mockRunner{output: ""}
	svc := NewContactsService(runner)

	contacts, err := svc.Search(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestGet_NotFoundIsNil(t *testing.T) {
	runner := &mockRunner{output: ""}
	svc := NewContactsService(runner)

	contact, err := svc.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, contact)
}

func TestGet_Found(t *testing.T) {
	runner := &mockRunner{output: contactRow("id-1", "Ada", "Lovelace")}
	svc := NewContactsService(runner)

	contact, err := svc.Get(context.Background(), "id-1")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "id-1", contact.ID)
}

func TestCreate_RequiresIdentity(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	_, err := svc.Create(context.Background(), domain.ContactDraft{
		Email: strPtr("a@b.c"),
		Phone: strPtr("555"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.calls(), "no script must run for an invalid draft")
}

func TestCreate_ReturnsNewID(t *testing.T) {
	runner := &mockRunner{output: "new-id-42"}
	svc := NewContactsService(runner)

	id, err := svc.Create(context.Background(), domain.ContactDraft{FirstName: strPtr("Ada")})
	require.NoError(t, err)
	assert.Equal(t, "new-id-42", id)
	assert.Contains(t, runner.lastScript(), `first name:"Ada"`)
}

func TestUpdate_EmptyIsNoOp(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	changed, err := svc.Update(context.Background(), "id-1", domain.ContactUpdate{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, runner.calls(), "no script must run for an empty update")
}

func TestUpdate_ReportsOutcome(t *testing.T) {
	runner := &mockRunner{output: "true"}
	svc := NewContactsService(runner)

	changed, err := svc.Update(context.Background(), "id-1", domain.ContactUpdate{FirstName: strPtr("Ada")})
	require.NoError(t, err)
	assert.True(t, changed)

	runner.output = "false"
	changed, err = svc.Update(context.Background(), "missing", domain.ContactUpdate{FirstName: strPtr("Ada")})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDelete_ReportsOutcome(t *testing.T) {
	runner := &mockRunner{output: "true"}
	svc := NewContactsService(runner)

	deleted, err := svc.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	runner.output = "false"
	deleted, err = svc.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListGroups(t *testing.T) {
	runner := &mockRunner{output: "g-1\tFamily\t3"}
	svc := NewContactsService(runner)

	groups, err := svc.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Family", groups[0].Name)
	assert.Equal(t, 3, groups[0].MemberCount)
}

func TestGroupMembers_MissingGroupIsEmpty(t *testing.T) {
	runner := &mockRunner{output: ""}
	svc := NewContactsService(runner)

	members, err := svc.GroupMembers(context.Background(), "Nobody Here")
	require.NoError(t, err)
	assert.Empty(t, members)
	assert.Contains(t, runner.lastScript(), `whose name is "Nobody Here"`)
}

func TestLookupByPhone_NormalizesSuffix(t *testing.T) {
	runner := &mockRunner{output: contactRow("id-1", "Ada", "Lovelace")}
	svc := NewContactsService(runner)

	contact, err := svc.LookupByPhone(context.Background(), "+31 648 502 148")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Contains(t, runner.lastScript(), `contains "8502148"`)
}

func TestLookupByPhone_UsesLookupTimeout(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	_, err := svc.LookupByPhone(context.Background(), "5550100")
	require.NoError(t, err)
	require.Len(t, runner.timeouts, 1)
	assert.Equal(t, DefaultLookupTimeout, runner.timeouts[0])
}

func TestLookupByPhone_NoDigitsSkipsScript(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	contact, err := svc.LookupByPhone(context.Background(), "no digits here")
	require.NoError(t, err)
	assert.Nil(t, contact)
	assert.Zero(t, runner.calls())
}

func TestLookupByPhone_NoMatchIsNil(t *testing.T) {
	runner := &mockRunner{output: ""}
	svc := NewContactsService(runner)

	contact, err := svc.LookupByPhone(context.Background(), "5550100")
	require.NoError(t, err)
	assert.Nil(t, contact)
}

func TestAuthorizationStatus(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		err      error
		expected domain.AuthorizationStatus
	}{
		{"authorized", "42", nil, domain.AuthorizationAuthorized},
		{"prompt pending", "", nil, domain.AuthorizationNotDetermined},
		{"denied", "", &domain.ScriptError{Stderr: "Not authorized to send Apple events (-1743)"}, domain.AuthorizationDenied},
		{"restricted", "", &domain.ScriptError{Stderr: "some policy failure"}, domain.AuthorizationRestricted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactsService(&mockRunner{output: tt.output, err: tt.err})

			status, err := svc.AuthorizationStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestAuthorizationStatus_NonScriptError(t *testing.T) {
	svc := NewContactsService(&mockRunner{err: errors.New("exec failed")})

	_, err := svc.AuthorizationStatus(context.Background())
	require.Error(t, err)
}

func TestConfigure_Overrides(t *testing.T) {
	svc := NewContactsService(&mockRunner{})
	svc.Configure(stubConfig{
		"script_timeout_seconds": 10,
		"lookup_timeout_seconds": 20,
		"list_limit":             7,
	})

	assert.Equal(t, 10*time.Second, svc.scriptTimeout)
	assert.Equal(t, 20*time.Second, svc.lookupTimeout)
	assert.Equal(t, 7, svc.listLimit)
}

func TestConfigure_ReappliedOverridesTakeEffect(t *testing.T) {
	runner := &mockRunner{}
	svc := NewContactsService(runner)

	_, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Contains(t, runner.lastScript(), fmt.Sprintf("contactCount >= %d", DefaultListLimit))

	// A config reload after startup reconfigures the running service.
	svc.Configure(stubConfig{
		"script_timeout_seconds": 30,
		"list_limit":             5,
	})

	_, err = svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Contains(t, runner.lastScript(), "contactCount >= 5")
	assert.Equal(t, 30*time.Second, runner.timeouts[len(runner.timeouts)-1])
}

func TestConfigure_ZeroValuesKeepDefaults(t *testing.T) {
	svc := NewContactsService(&mockRunner{})
	svc.Configure(stubConfig{})

	assert.Equal(t, DefaultScriptTimeout, svc.scriptTimeout)
	assert.Equal(t, DefaultLookupTimeout, svc.lookupTimeout)
	assert.Equal(t, DefaultListLimit, svc.listLimit)
}

func TestRun_SerializesConcurrentCallers(t *testing.T) {
	runner := &mockRunner{delay: 30 * time.Millisecond}
	svc := NewContactsService(runner)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.List(context.Background(), 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, runner.starts, 4)
	require.Len(t, runner.ends, 4)

	// Under the single-flight lock, each execution must finish before
	// the next one starts.
	for i := 1; i < len(runner.starts); i++ {
		assert.False(t, runner.starts[i].Before(runner.ends[i-1]),
			"execution %d started before execution %d finished", i, i-1)
	}
}
