package elasticsearch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// Passthrough parameters understood by the connector. Any other parameter is ignored.
const (
	ParamURL      = "url"
	ParamUser     = "user"
	ParamPassword = "password"
	ParamRefresh  = "refresh"
)

// Connector implements ports.Connector for Elasticsearch.
// The application ID is used as the Elastic Cloud ID and the API key as the
// Elasticsearch API key; self-hosted clusters are reached through ParamURL,
// which takes precedence over the cloud ID when both are set.
type Connector struct {
	logger *slog.Logger
}

// NewConnector creates a new Elasticsearch Connector
func NewConnector() *Connector {
	return &Connector{
		logger: slog.Default().With("component", "elasticsearch"),
	}
}

// Client implements ports.SearchClient for Elasticsearch
type Client struct {
	es      *elasticsearch.Client
	refresh string
	logger  *slog.Logger
}

// Connect creates an Elasticsearch client from the credentials and verifies the connection.
func (c *Connector) Connect(ctx context.Context, creds domain.Credentials) (ports.SearchClient, error) {
	esCfg := clientConfig(creds)
	if creds.ApplicationID != "" && esCfg.CloudID == "" {
		c.logger.WarnContext(ctx, "cloud ID ignored because explicit addresses are configured",
			"addresses", esCfg.Addresses,
		)
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	// Verify connection
	res, err := es.Info(es.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch connection error: %s - %s", res.Status(), string(body))
	}

	c.logger.InfoContext(ctx, "connected to elasticsearch",
		"addresses", esCfg.Addresses,
		"cloud", esCfg.CloudID != "",
		"authenticated", esCfg.APIKey != "" || esCfg.Username != "",
	)

	return &Client{
		es:      es,
		refresh: creds.Param(ParamRefresh),
		logger:  c.logger,
	}, nil
}

// InitIndex returns a handle bound to the named index
func (c *Client) InitIndex(name string) ports.SearchIndex {
	return &Index{
		client: c,
		name:   name,
	}
}

// clientConfig maps credentials to a client configuration.
// Explicit addresses from ParamURL take precedence over the cloud ID; the two are never set together.
// Basic auth is only used when no API key is configured.
func clientConfig(creds domain.Credentials) elasticsearch.Config {
	esCfg := elasticsearch.Config{
		APIKey: creds.APIKey,
	}

	if addresses := splitAddresses(creds.Param(ParamURL)); len(addresses) > 0 {
		esCfg.Addresses = addresses
	} else {
		esCfg.CloudID = creds.ApplicationID
	}

	user, password := creds.Param(ParamUser), creds.Param(ParamPassword)
	if creds.APIKey == "" && user != "" && password != "" {
		esCfg.Username = user
		esCfg.Password = password
	}

	return esCfg
}

// splitAddresses parses a comma separated list of node URLs
func splitAddresses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
