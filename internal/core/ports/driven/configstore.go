package driven

// Configuration keys understood by Contactbook.
const (
	// ConfigKeyInterpreterPath overrides the osascript binary location.
	ConfigKeyInterpreterPath = "interpreter_path"

	// ConfigKeyScriptTimeoutSeconds overrides the per-script time budget
	// for ordinary operations.
	ConfigKeyScriptTimeoutSeconds = "script_timeout_seconds"

	// ConfigKeyLookupTimeoutSeconds overrides the time budget for the
	// phone lookup, which may scan the whole directory.
	ConfigKeyLookupTimeoutSeconds = "lookup_timeout_seconds"

	// ConfigKeyListLimit overrides the default number of contacts
	// returned by list.
	ConfigKeyListLimit = "list_limit"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
