package config

// Config holds all application configuration loaded from environment variables
type Config struct {
	ApplicationConfig
	Http   HttpConfig   `envPrefix:"HTTP_"`
	Search SearchConfig `envPrefix:"SEARCH_"`
	Index  IndexConfig  `envPrefix:"INDEX_"`
	Source SourceConfig `envPrefix:"SOURCE_"`
	OIDC   OIDCConfig   `envPrefix:"OIDC_"`
}
