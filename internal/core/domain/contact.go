package domain

import "strings"

// UnknownName is the display name for a contact with neither name parts
// nor an organization.
const UnknownName = "Unknown"

// Contact represents a single entry in the Apple Contacts database.
// The record reflects the state at the time it was read; Contactbook
// never caches contacts locally.
type Contact struct {
	// ID is the opaque identifier issued by Contacts.app. It is the sole
	// handle for get, update, and delete.
	ID string `json:"id"`

	// FirstName and LastName may each be empty, never absent.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// FullName is derived from the name parts, falling back to the
	// organization and finally to UnknownName. It is never transmitted
	// by Contacts.app.
	FullName string `json:"fullName"`

	// Emails and Phones preserve the order Contacts.app returned them in.
	// Duplicates are not removed.
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`

	Organization *string `json:"organization,omitempty"`
	JobTitle     *string `json:"jobTitle,omitempty"`
	Note         *string `json:"note,omitempty"`
	Birthday     *string `json:"birthday,omitempty"`

	// Addresses holds pre-flattened single-line postal addresses
	// (street, city, state zip, country joined by ", ").
	Addresses []string `json:"addresses"`
}

// DeriveFullName computes the display name for a contact: the non-empty
// name parts joined by a space, then the organization, then UnknownName.
func DeriveFullName(firstName, lastName string, organization *string) string {
	parts := make([]string, 0, 2)
	if firstName != "" {
		parts = append(parts, firstName)
	}
	if lastName != "" {
		parts = append(parts, lastName)
	}

	if full := strings.Join(parts, " "); full != "" {
		return full
	}
	if organization != nil && *organization != "" {
		return *organization
	}
	return UnknownName
}

// ContactGroup represents a named group in the Apple Contacts database.
type ContactGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// MemberCount is the number of contained contacts at read time.
	MemberCount int `json:"memberCount"`
}

// ContactDraft holds the fields accepted when creating a contact.
// Nil fields are omitted from the created record entirely, not set to
// empty values.
type ContactDraft struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Organization *string
	JobTitle     *string
}

// HasIdentity reports whether the draft carries at least one of the
// fields that can identify a contact: first name, last name, or
// organization. Contacts.app rejects entries without any of them.
func (d ContactDraft) HasIdentity() bool {
	return d.FirstName != nil || d.LastName != nil || d.Organization != nil
}

// ContactUpdate holds the fields accepted when updating a contact.
// Only non-nil fields are touched; nil fields keep their current value
// in the Contacts database.
type ContactUpdate struct {
	FirstName    *string
	LastName     *string
	Organization *string
	JobTitle     *string
}

// IsEmpty reports whether no fields were supplied. An empty update is a
// no-op and must not reach Contacts.app.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Organization == nil && u.JobTitle == nil
}
