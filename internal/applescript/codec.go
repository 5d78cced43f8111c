package applescript

import (
	"strconv"
	"strings"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

// Sentinel is the literal Contacts.app emits for an absent property.
const Sentinel = "missing value"

// listSeparator joins multi-valued fields within a row.
const listSeparator = ";;;"

// minContactFields is the minimum number of tab-separated fields in a
// contact row. The trailing addresses field is optional.
const minContactFields = 9

// ParseContacts decodes newline-separated contact rows into typed
// records. Rows with fewer than nine tab-separated fields are silently
// dropped. An empty input decodes to zero contacts.
func ParseContacts(output string) []domain.Contact {
	contacts := []domain.Contact{}
	if output == "" {
		return contacts
	}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < minContactFields {
			continue
		}

		contact := domain.Contact{
			ID:           fields[0],
			FirstName:    nameField(fields[1]),
			LastName:     nameField(fields[2]),
			Organization: optionalField(fields[3]),
			JobTitle:     optionalField(fields[4]),
			Note:         optionalField(fields[5]),
			Birthday:     optionalField(fields[6]),
			Emails:       splitList(fields[7]),
			Phones:       splitList(fields[8]),
			Addresses:    []string{},
		}
		if len(fields) > minContactFields {
			contact.Addresses = splitList(fields[9])
		}
		contact.FullName = domain.DeriveFullName(contact.FirstName, contact.LastName, contact.Organization)

		contacts = append(contacts, contact)
	}

	return contacts
}

// FirstContact decodes the first contact row, or nil when the output is
// empty or holds no valid row.
func FirstContact(output string) *domain.Contact {
	contacts := ParseContacts(output)
	if len(contacts) == 0 {
		return nil
	}
	return &contacts[0]
}

// ParseGroups decodes newline-separated group rows: id, name, and member
// count. A non-numeric count decodes to zero.
func ParseGroups(output string) []domain.ContactGroup {
	groups := []domain.ContactGroup{}
	if output == "" {
		return groups
	}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}

		count, err := strconv.Atoi(fields[2])
		if err != nil {
			count = 0
		}

		groups = append(groups, domain.ContactGroup{
			ID:          fields[0],
			Name:        fields[1],
			MemberCount: count,
		})
	}

	return groups
}

// nameField maps the sentinel to an empty string. Name parts are always
// present on the record, possibly empty.
func nameField(field string) string {
	if field == Sentinel {
		return ""
	}
	return field
}

// optionalField maps the sentinel and the empty string to absent.
func optionalField(field string) *string {
	if field == Sentinel || field == "" {
		return nil
	}
	return &field
}

// splitList decodes a ";;;"-joined sub-list, dropping empty and sentinel
// elements while preserving the order of the rest.
func splitList(field string) []string {
	values := []string{}
	if field == "" {
		return values
	}

	for _, v := range strings.Split(field, listSeparator) {
		if v == "" || v == Sentinel {
			continue
		}
		values = append(values, v)
	}

	return values
}
