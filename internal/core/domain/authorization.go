package domain

import "strings"

// AuthorizationStatus describes whether this process may drive
// Contacts.app via Apple events.
type AuthorizationStatus string

// Authorization states, mirroring the macOS privacy database.
const (
	// AuthorizationNotDetermined means the user has not been asked yet.
	AuthorizationNotDetermined AuthorizationStatus = "not-determined"

	// AuthorizationRestricted means access is blocked by system policy
	// (parental controls, MDM).
	AuthorizationRestricted AuthorizationStatus = "restricted"

	// AuthorizationDenied means the user refused access.
	AuthorizationDenied AuthorizationStatus = "denied"

	// AuthorizationAuthorized means full access is granted.
	AuthorizationAuthorized AuthorizationStatus = "authorized"
)

// IsAuthorized returns true if scripts may be executed.
func (s AuthorizationStatus) IsAuthorized() bool {
	return s == AuthorizationAuthorized
}

// String returns the string representation.
func (s AuthorizationStatus) String() string {
	return string(s)
}

// Description returns a human-readable description of the status.
func (s AuthorizationStatus) Description() string {
	switch s {
	case AuthorizationNotDetermined:
		return "Not determined"
	case AuthorizationRestricted:
		return "Restricted"
	case AuthorizationDenied:
		return "Denied"
	case AuthorizationAuthorized:
		return "Authorized"
	default:
		return UnknownName
	}
}

// Guidance returns a hint for the user on how to proceed.
func (s AuthorizationStatus) Guidance() string {
	switch s {
	case AuthorizationNotDetermined:
		return "Run 'contactbook authorize' to request access."
	case AuthorizationDenied:
		return "Access denied. Enable in System Settings -> Privacy & Security -> Automation."
	case AuthorizationRestricted:
		return "Access restricted by system policy (parental controls, MDM, etc.)."
	case AuthorizationAuthorized:
		return "Full access granted."
	default:
		return ""
	}
}

// AppleScript error -1743 is errAEEventNotPermitted: the user declined
// the automation prompt, or it was never shown.
const appleEventNotPermitted = "-1743"

// AuthorizationFromScriptFailure maps an osascript failure from the
// authorization probe onto a status. A permission error means the user
// denied access; anything else is treated as a policy restriction.
func AuthorizationFromScriptFailure(stderr string) AuthorizationStatus {
	if strings.Contains(stderr, appleEventNotPermitted) {
		return AuthorizationDenied
	}
	return AuthorizationRestricted
}
