package config

// IndexConfig holds target index and submission configuration
type IndexConfig struct {
	Name           string   `env:"NAME" envDefault:"documents"`
	Recreate       bool     `env:"RECREATE" envDefault:"false"`
	Concurrency    int      `env:"CONCURRENCY" envDefault:"8"`
	Bulk           bool     `env:"BULK" envDefault:"false"`
	RequiredFields []string `env:"REQUIRED_FIELDS" envSeparator:","`
}
