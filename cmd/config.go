package cmd

// Config carries the environment-supplied settings for the application.
// Values are read once at startup; TrackingCacheTTL is a Go duration string
// (for example "60s") and falls back to a default when empty.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	RedisURL         string
	TrackingCacheTTL string
}
