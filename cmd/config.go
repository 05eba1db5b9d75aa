package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RouteAIBaseURL is the external route optimization service. Empty means
	// every route is planned by the deterministic fallback.
	RouteAIBaseURL   string
	RouteAITimeoutMs string

	// RedisHost enables the route result cache when set.
	RedisHost string
}
