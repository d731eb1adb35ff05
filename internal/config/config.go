package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultDBMaxConns caps the view-state store pool.
	DefaultDBMaxConns = 10

	// DefaultUpstreamURL is the REST API the proposes are read from.
	DefaultUpstreamURL = "http://localhost:3000"

	// DefaultUpstreamTimeout bounds a single upstream request.
	DefaultUpstreamTimeout = 15 * time.Second

	// DefaultCacheTTL is how long a fetched page is served from cache.
	DefaultCacheTTL = 30 * time.Second

	// DefaultSearchDebounce is the quiet period before a typed search commits.
	DefaultSearchDebounce = 300 * time.Millisecond

	// DefaultSessionIdle is how long an unused view session stays in memory.
	DefaultSessionIdle = 30 * time.Minute

	// DefaultPurgeAge is the idle age after which persisted view states are purged.
	DefaultPurgeAge = 90 * 24 * time.Hour

	// MaxExportPages caps how many upstream pages one export may read.
	MaxExportPages = 50
)

// Server holds the runtime settings of the serve command.
type Server struct {
	Port            string
	UpstreamURL     string
	UpstreamToken   string
	UpstreamTimeout time.Duration
	RedisURL        string
	CacheTTL        time.Duration
	SearchDebounce  time.Duration
	SessionIdle     time.Duration
	CORSOrigins     []string
	CatalogPath     string
}
