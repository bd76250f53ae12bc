package driven

// Settings keys read outside the category service.
const (
	// ConfigExportDelimiter overrides the field delimiter of export CSVs.
	ConfigExportDelimiter = "export.delimiter"

	// ConfigSummaryMaxContacts caps each summary contact list when the
	// caller gives no limit.
	ConfigSummaryMaxContacts = "summary.max_contacts"
)

// ConfigStore provides access to application configuration.
// Nested tables are addressed with dot-notation keys, so
// "categories.founders" is the founders entry of the [categories] table.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is missing or not an integer.
	GetInt(key string) int

	// GetStringSlice returns nil if the key is missing or not a list.
	// Non-string list items are skipped.
	GetStringSlice(key string) []string

	// Keys returns all keys under a dot-notation prefix, sorted.
	// Keys("categories") returns e.g. ["categories.founders", "categories.recruiters"].
	Keys(prefix string) []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Delete removes a value and persists immediately. Missing keys are a no-op.
	Delete(key string) error
}
