package applescript

import (
	"fmt"
	"strings"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
)

// lookupTimeoutSeconds is the AppleScript-level timeout wrapped around
// the phone lookup, which may scan the whole directory. It exceeds the
// process-level lookup timeout so osascript, not Contacts.app, decides
// when to give up.
const lookupTimeoutSeconds = 300

// rowSnippet collects the row fields for the person bound to the
// variable p and leaves the tab-joined row in recordLine. Every read
// script embeds it so a single decode path serves all of them.
const rowSnippet = `set contactId to id of p
set firstName to first name of p
set lastName to last name of p
set orgName to organization of p
set jobTitleVal to job title of p
set noteVal to note of p
set birthdayVal to ""
try
	set birthdayVal to birth date of p as string
end try
set emailList to ""
repeat with e in emails of p
	if emailList is not "" then set emailList to emailList & ";;;"
	set emailList to emailList & (value of e)
end repeat
set phoneList to ""
repeat with ph in phones of p
	if phoneList is not "" then set phoneList to phoneList & ";;;"
	set phoneList to phoneList & (value of ph)
end repeat
set addrList to ""
repeat with a in addresses of p
	if addrList is not "" then set addrList to addrList & ";;;"
	set addrParts to ""
	try
		set addrParts to (street of a) & ", " & (city of a) & ", " & (state of a) & " " & (zip of a) & ", " & (country of a)
	end try
	set addrList to addrList & addrParts
end repeat
set recordLine to contactId & tab & firstName & tab & lastName & tab & orgName & tab & jobTitleVal & tab & noteVal & tab & birthdayVal & tab & emailList & tab & phoneList & tab & addrList`

// appendRowSnippet accumulates recordLine into the output variable.
const appendRowSnippet = `if output is not "" then set output to output & linefeed
set output to output & recordLine`

// ListContacts iterates directory entries in Contacts.app order and
// stops after limit rows.
func ListContacts(limit int) string {
	return fmt.Sprintf(`tell application "Contacts"
	set output to ""
	set contactCount to 0
	repeat with p in people
		if contactCount >= %d then exit repeat
%s
%s
		set contactCount to contactCount + 1
	end repeat
	return output
end tell`, limit, indent(rowSnippet, 2), indent(appendRowSnippet, 2))
}

// SearchContacts matches the query as a substring of the composite name
// field, using Contacts.app's own matching. All matches are returned.
func SearchContacts(query string) string {
	return fmt.Sprintf(`tell application "Contacts"
	set output to ""
	set matchedPeople to (every person whose name contains "%s")
	repeat with p in matchedPeople
%s
%s
	end repeat
	return output
end tell`, Escape(query), indent(rowSnippet, 2), indent(appendRowSnippet, 2))
}

// GetContact looks a contact up by id. The lookup is wrapped in a local
// error handler so a missing id yields empty output instead of
// propagating Contacts.app's own not-found failure.
func GetContact(id string) string {
	return fmt.Sprintf(`tell application "Contacts"
	try
		set p to first person whose id is "%s"
%s
		return recordLine
	on error
		return ""
	end try
end tell`, Escape(id), indent(rowSnippet, 2))
}

// CreateContact builds a single make-new-person expression carrying only
// the supplied identifying properties, attaches one work email and one
// mobile phone when given, saves, and returns the new id.
func CreateContact(draft domain.ContactDraft) string {
	props := make([]string, 0, 4)
	if draft.FirstName != nil {
		props = append(props, fmt.Sprintf(`first name:"%s"`, Escape(*draft.FirstName)))
	}
	if draft.LastName != nil {
		props = append(props, fmt.Sprintf(`last name:"%s"`, Escape(*draft.LastName)))
	}
	if draft.Organization != nil {
		props = append(props, fmt.Sprintf(`organization:"%s"`, Escape(*draft.Organization)))
	}
	if draft.JobTitle != nil {
		props = append(props, fmt.Sprintf(`job title:"%s"`, Escape(*draft.JobTitle)))
	}

	statements := []string{
		"set newPerson to make new person with properties {" + strings.Join(props, ", ") + "}",
	}
	if draft.Email != nil && *draft.Email != "" {
		statements = append(statements, fmt.Sprintf(
			`make new email at end of emails of newPerson with properties {label:"work", value:"%s"}`,
			Escape(*draft.Email)))
	}
	if draft.Phone != nil && *draft.Phone != "" {
		statements = append(statements, fmt.Sprintf(
			`make new phone at end of phones of newPerson with properties {label:"mobile", value:"%s"}`,
			Escape(*draft.Phone)))
	}
	statements = append(statements, "save", "return id of newPerson")

	return fmt.Sprintf(`tell application "Contacts"
%s
end tell`, indent(strings.Join(statements, "\n"), 1))
}

// UpdateContact assigns one statement per supplied field inside a
// lookup-then-mutate-then-save block and returns "true" or "false".
// Callers must not invoke it with an empty update.
func UpdateContact(id string, update domain.ContactUpdate) string {
	assignments := make([]string, 0, 4)
	if update.FirstName != nil {
		assignments = append(assignments, fmt.Sprintf(`set first name of p to "%s"`, Escape(*update.FirstName)))
	}
	if update.LastName != nil {
		assignments = append(assignments, fmt.Sprintf(`set last name of p to "%s"`, Escape(*update.LastName)))
	}
	if update.Organization != nil {
		assignments = append(assignments, fmt.Sprintf(`set organization of p to "%s"`, Escape(*update.Organization)))
	}
	if update.JobTitle != nil {
		assignments = append(assignments, fmt.Sprintf(`set job title of p to "%s"`, Escape(*update.JobTitle)))
	}

	return fmt.Sprintf(`tell application "Contacts"
	try
		set p to first person whose id is "%s"
%s
		save
		return "true"
	on error
		return "false"
	end try
end tell`, Escape(id), indent(strings.Join(assignments, "\n"), 2))
}

// DeleteContact removes a contact by id and returns "true" or "false".
// Not-found collapses to "false" rather than an error.
func DeleteContact(id string) string {
	return fmt.Sprintf(`tell application "Contacts"
	try
		set p to first person whose id is "%s"
		delete p
		save
		return "true"
	on error
		return "false"
	end try
end tell`, Escape(id))
}

// ListGroups emits one id/name/memberCount row per group.
func ListGroups() string {
	return `tell application "Contacts"
	set output to ""
	repeat with g in groups
		set gId to id of g
		set gName to name of g
		set memberCount to count of people of g
		set recordLine to gId & tab & gName & tab & memberCount
		if output is not "" then set output to output & linefeed
		set output to output & recordLine
	end repeat
	return output
end tell`
}

// GroupMembers looks a group up by exact name and emits the same row
// shape as ListContacts for each member. A missing group collapses to
// empty output.
func GroupMembers(name string) string {
	return fmt.Sprintf(`tell application "Contacts"
	set output to ""
	try
		set g to first group whose name is "%s"
		repeat with p in people of g
%s
%s
		end repeat
	end try
	return output
end tell`, Escape(name), indent(rowSnippet, 3), indent(appendRowSnippet, 3))
}

// LookupByPhone scans every entry's raw phone values for the given
// digit suffix, returning the first match and stopping there. Phone
// numbers are stored in mixed international formats, so the suffix is
// matched as a substring of each unnormalized value.
func LookupByPhone(suffix string) string {
	return fmt.Sprintf(`with timeout of %d seconds
	tell application "Contacts"
		repeat with candidate in people
			repeat with cph in phones of candidate
				if value of cph contains "%s" then
					set p to candidate
%s
					return recordLine
				end if
			end repeat
		end repeat
		return ""
	end tell
end timeout`, lookupTimeoutSeconds, Escape(suffix), indent(rowSnippet, 5))
}

// AuthorizationProbe is a minimal script whose outcome reveals whether
// this process may drive Contacts.app. Running it for the first time
// triggers the macOS automation consent prompt.
func AuthorizationProbe() string {
	return `tell application "Contacts"
	return count of people
end tell`
}

// indent prefixes every non-empty line with the given number of tabs.
func indent(snippet string, depth int) string {
	prefix := strings.Repeat("\t", depth)
	lines := strings.Split(snippet, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
