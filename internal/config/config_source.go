package config

// SourceKind names the kind of file source to collect from
type SourceKind string

const (
	SourceNone       SourceKind = ""
	SourceFilesystem SourceKind = "filesystem"
	SourceFeed       SourceKind = "feed"
)

// SourceConfig holds file source configuration.
// A local directory takes precedence over a remote feed.
type SourceConfig struct {
	Dir          string   `env:"DIR"`
	Extensions   []string `env:"EXTENSIONS" envSeparator:"," envDefault:".md,.markdown,.txt"`
	FeedURL      string   `env:"FEED_URL"`
	FeedUser     string   `env:"FEED_USER"`
	FeedPassword string   `env:"FEED_PASSWORD"`
}

// Kind returns which source is configured
func (c *SourceConfig) Kind() SourceKind {
	switch {
	case c.Dir != "":
		return SourceFilesystem
	case c.FeedURL != "":
		return SourceFeed
	default:
		return SourceNone
	}
}

// HasFeedCredentials returns true if feed authentication credentials are configured
func (c *SourceConfig) HasFeedCredentials() bool {
	return c.FeedUser != "" && c.FeedPassword != ""
}
