package driving

import (
	"context"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

// ContactsService exposes the Apple Contacts directory to external
// actors. Every call executes a fresh script against Contacts.app;
// nothing is cached. Calls against the same instance are serialized, so
// concurrent operations queue rather than overlap.
type ContactsService interface {
	// List returns up to limit contacts in Contacts.app iteration order.
	// A non-positive limit applies the configured default.
	List(ctx context.Context, limit int) ([]domain.Contact, error)

	// Search returns every contact whose composite name contains the
	// query as a substring.
	Search(ctx context.Context, query string) ([]domain.Contact, error)

	// Get returns the contact with the given id, or nil when no contact
	// matches. A missing id is not an error.
	Get(ctx context.Context, id string) (*domain.Contact, error)

	// Create adds a contact and returns its new id. The draft must carry
	// at least one of first name, last name, or organization; otherwise
	// Create fails with domain.ErrInvalidInput before any script runs.
	Create(ctx context.Context, draft domain.ContactDraft) (string, error)

	// Update mutates only the supplied fields of the contact with the
	// given id. It reports success as a boolean: false when the contact
	// does not exist, and false without any script execution when the
	// update is empty.
	Update(ctx context.Context, id string, update domain.ContactUpdate) (bool, error)

	// Delete removes the contact with the given id, reporting success as
	// a boolean. Not-found collapses to false, not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// ListGroups returns every contact group with its member count.
	ListGroups(ctx context.Context) ([]domain.ContactGroup, error)

	// GroupMembers returns the contacts in the group with the given
	// name. A missing group yields an empty slice.
	GroupMembers(ctx context.Context, name string) ([]domain.Contact, error)

	// LookupByPhone finds the first contact whose phone values contain
	// the normalized suffix of the given number, or nil when none match.
	LookupByPhone(ctx context.Context, number string) (*domain.Contact, error)

	// AuthorizationStatus probes whether this process may drive
	// Contacts.app. Probing for the first time triggers the macOS
	// consent prompt, so it doubles as the access request.
	AuthorizationStatus(ctx context.Context) (domain.AuthorizationStatus, error)
}
