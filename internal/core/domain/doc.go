// Package domain defines the core business entities for Contactbook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Contact: A single Apple Contacts entry
//   - ContactGroup: A named group of contacts
//   - ContactDraft: Fields accepted when creating a contact
//   - ContactUpdate: Fields accepted when updating a contact
//   - AuthorizationStatus: Contacts access state of the host application
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
