package config

// SearchConfig holds the remote search service connection configuration
type SearchConfig struct {
	ApplicationID string `env:"APPLICATION_ID"`
	APIKey        string `env:"API_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	URL           string `env:"URL"`
	User          string `env:"USER"`
	Password      string `env:"PASSWORD"`
	Refresh       string `env:"REFRESH"`
}

// HasCredentials returns true if an API key, a secret key or a user/password pair is configured
func (c *SearchConfig) HasCredentials() bool {
	return c.APIKey != "" || c.SecretKey != "" || (c.User != "" && c.Password != "")
}

// Params returns the client parameters that are passed through to the search connector.
// Only non-empty values are included.
func (c *SearchConfig) Params() map[string]any {
	params := map[string]any{}
	for key, value := range map[string]string{
		"url":      c.URL,
		"user":     c.User,
		"password": c.Password,
		"refresh":  c.Refresh,
	} {
		if value != "" {
			params[key] = value
		}
	}
	return params
}
