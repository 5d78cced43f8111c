// Package applescript synthesizes the AppleScript sources Contactbook
// executes against Contacts.app and decodes their textual output.
//
// Every read script emits one row per contact: nine or ten tab-separated
// fields in fixed order, with multi-valued fields joined by ";;;" and
// absent scalars marked by the "missing value" sentinel. A single decode
// path (ParseContacts) therefore serves every read operation.
//
// Every value interpolated into generated script source passes through
// Escape first. This is the only defense against script injection via
// contact data or search queries.
package applescript
