package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/salmonumbrella/Contactbook/internal/applescript"
	"github.com/salmonumbrella/Contactbook/internal/core/domain"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driven"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driving"
	"github.com/salmonumbrella/Contactbook/internal/logger"
)

// Ensure ContactsService implements the interface.
var _ driving.ContactsService = (*ContactsService)(nil)

const (
	// DefaultScriptTimeout bounds ordinary script executions.
	DefaultScriptTimeout = 120 * time.Second

	// DefaultLookupTimeout bounds the phone lookup, which may linearly
	// scan every directory entry. Sized for large directories; the
	// AppleScript-level timeout inside the generated script is longer
	// still, so the process-level budget is the one that fires.
	DefaultLookupTimeout = 180 * time.Second

	// DefaultListLimit is the number of contacts returned by List when
	// the caller does not override it.
	DefaultListLimit = 50
)

// ContactsService drives Contacts.app through generated AppleScripts.
// Contacts.app is a single shared, stateful resource: exactly one script
// may run at a time from this process, so every operation funnels
// through one mutex and concurrent callers queue.
type ContactsService struct {
	runner driven.ScriptRunner

	// mu is the single-flight serialization point for script execution.
	mu sync.Mutex

	// cfgMu guards the tunables, which Configure may swap while
	// operations are in flight (config hot reload).
	cfgMu         sync.RWMutex
	scriptTimeout time.Duration
	lookupTimeout time.Duration
	listLimit     int
}

// NewContactsService creates a contacts service with default timeouts.
func NewContactsService(runner driven.ScriptRunner) *ContactsService {
	return &ContactsService{
		runner:        runner,
		scriptTimeout: DefaultScriptTimeout,
		lookupTimeout: DefaultLookupTimeout,
		listLimit:     DefaultListLimit,
	}
}

// Configure applies overrides from the config store. Zero or missing
// values keep the defaults. It is called at startup and again after
// every config reload, so later calls take effect on in-flight servers.
func (s *ContactsService) Configure(cfg driven.ConfigStore) {
	if cfg == nil {
		return
	}

	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()

	if secs := cfg.GetInt(driven.ConfigKeyScriptTimeoutSeconds); secs > 0 {
		s.scriptTimeout = time.Duration(secs) * time.Second
	}
	if secs := cfg.GetInt(driven.ConfigKeyLookupTimeoutSeconds); secs > 0 {
		s.lookupTimeout = time.Duration(secs) * time.Second
	}
	if limit := cfg.GetInt(driven.ConfigKeyListLimit); limit > 0 {
		s.listLimit = limit
	}
}

func (s *ContactsService) scriptBudget() time.Duration {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.scriptTimeout
}

func (s *ContactsService) lookupBudget() time.Duration {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.lookupTimeout
}

func (s *ContactsService) defaultLimit() int {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.listLimit
}

// run executes one script under the single-flight lock.
func (s *ContactsService) run(ctx context.Context, script string, timeout time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Debug("Running script (%d bytes, timeout %s)", len(script), timeout)
	start := time.Now()

	out, err := s.runner.Run(ctx, script, timeout)
	if err != nil {
		logger.Warn("Script failed after %s: %v", time.Since(start), err)
		return "", err
	}

	logger.Debug("Script finished in %s (%d bytes of output)", time.Since(start), len(out))
	return out, nil
}

// List returns up to limit contacts in Contacts.app iteration order.
func (s *ContactsService) List(ctx context.Context, limit int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = s.defaultLimit()
	}

	out, err := s.run(ctx, applescript.ListContacts(limit), s.scriptBudget())
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contacts := applescript.ParseContacts(out)
	logger.Debug("List: %d contact(s)", len(contacts))
	return contacts, nil
}

// Search returns every contact whose name contains the query.
func (s *ContactsService) Search(ctx context.Context, query string) ([]domain.Contact, error) {
	out, err := s.run(ctx, applescript.SearchContacts(query), s.scriptBudget())
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}

	contacts := applescript.ParseContacts(out)
	logger.Debug("Search %q: %d contact(s)", query, len(contacts))
	return contacts, nil
}

// Get returns the contact with the given id, or nil when none matches.
func (s *ContactsService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	out, err := s.run(ctx, applescript.GetContact(id), s.scriptBudget())
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return applescript.FirstContact(out), nil
}

// Create adds a contact and returns its new id.
func (s *ContactsService) Create(ctx context.Context, draft domain.ContactDraft) (string, error) {
	if !draft.HasIdentity() {
		return "", fmt.Errorf("%w: at least one of first name, last name, or organization is required", domain.ErrInvalidInput)
	}

	id, err := s.run(ctx, applescript.CreateContact(draft), s.scriptBudget())
	if err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}

	logger.Info("Created contact %s", id)
	return id, nil
}

// Update mutates only the supplied fields of the contact with the given
// id. An empty update returns false without running any script.
func (s *ContactsService) Update(ctx context.Context, id string, update domain.ContactUpdate) (bool, error) {
	if update.IsEmpty() {
		logger.Debug("Update %s: no fields supplied, skipping", id)
		return false, nil
	}

	out, err := s.run(ctx, applescript.UpdateContact(id, update), s.scriptBudget())
	if err != nil {
		return false, fmt.Errorf("update contact: %w", err)
	}

	return out == "true", nil
}

// Delete removes the contact with the given id. Not-found reports false.
func (s *ContactsService) Delete(ctx context.Context, id string) (bool, error) {
	out, err := s.run(ctx, applescript.DeleteContact(id), s.scriptBudget())
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}

	return out == "true", nil
}

// ListGroups returns every contact group with its member count.
func (s *ContactsService) ListGroups(ctx context.Context) ([]domain.ContactGroup, error) {
	out, err := s.run(ctx, applescript.ListGroups(), s.scriptBudget())
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return applescript.ParseGroups(out), nil
}

// GroupMembers returns the contacts in the named group. A missing group
// yields an empty slice.
func (s *ContactsService) GroupMembers(ctx context.Context, name string) ([]domain.Contact, error) {
	out, err := s.run(ctx, applescript.GroupMembers(name), s.scriptBudget())
	if err != nil {
		return nil, fmt.Errorf("group members: %w", err)
	}

	return applescript.ParseContacts(out), nil
}

// LookupByPhone finds the first contact whose phone values contain the
// normalized suffix of the given number.
func (s *ContactsService) LookupByPhone(ctx context.Context, number string) (*domain.Contact, error) {
	suffix := applescript.PhoneSearchSuffix(number)
	if suffix == "" {
		logger.Debug("Lookup %q: no digits, skipping", number)
		return nil, nil
	}

	logger.Debug("Lookup %q: matching suffix %q", number, suffix)
	out, err := s.run(ctx, applescript.LookupByPhone(suffix), s.lookupBudget())
	if err != nil {
		return nil, fmt.Errorf("lookup by phone: %w", err)
	}

	return applescript.FirstContact(out), nil
}

// AuthorizationStatus probes Contacts access with a trivial script. A
// clean run means access is granted; a permission failure maps onto the
// denied or restricted states; no output at all means the consent
// prompt is still pending.
func (s *ContactsService) AuthorizationStatus(ctx context.Context) (domain.AuthorizationStatus, error) {
	out, err := s.run(ctx, applescript.AuthorizationProbe(), s.scriptBudget())
	if err != nil {
		var scriptErr *domain.ScriptError
		if errors.As(err, &scriptErr) {
			status := domain.AuthorizationFromScriptFailure(scriptErr.Stderr)
			logger.Debug("Authorization probe failed: %s", status)
			return status, nil
		}
		return "", fmt.Errorf("authorization probe: %w", err)
	}

	if out == "" {
		return domain.AuthorizationNotDetermined, nil
	}
	return domain.AuthorizationAuthorized, nil
}
