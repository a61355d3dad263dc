package translator

// Config holds the orchestrator configuration.
// Designed for environment-based configuration using popular env parsing
// libraries.
type Config struct {
	// Endpoint is the CDN base URL. Empty disables synchronization and cache
	// persistence; the service then serves bundle fallbacks only.
	Endpoint string `env:"LOCALIZE_ENDPOINT"`

	// Language is the active catalog language.
	Language string `env:"LOCALIZE_LANGUAGE" envDefault:"en"`

	// Namespaces lists the namespace tables to load besides the base table.
	Namespaces []string `env:"LOCALIZE_NAMESPACES" envSeparator:","`

	// AppVersion is the consuming application's build signature. When it
	// differs from the signature that wrote the cache, the cache is cleared
	// on Init.
	AppVersion string `env:"LOCALIZE_APP_VERSION"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		Language: "en",
	}
}
