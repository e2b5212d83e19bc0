package cmd

// Config carries all runtime settings, loaded from the environment in main.
// StorageBackend selects between "postgres" and "inmemory"; the in-memory
// backend needs no database and publishes events straight to the log.
type Config struct {
	HTTPPort          string
	StorageBackend    string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	PricingServiceURL string
}
