package config

// Default values for configuration.
const (
	// Export defaults
	DefaultExportDir    = "."
	DefaultMessagesFile = "messages.json"
	DefaultMediaDir     = "media"
	DefaultExportFormat = "markdown"

	// Processing defaults
	DefaultMergeWindowSeconds = 30

	// Logging defaults
	DefaultLogLevel = "info"
)
