package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9/esapi"
	"github.com/javaBin/search-indexer/internal/domain"
)

// Index implements ports.SearchIndex and ports.IndexManager for one Elasticsearch index.
type Index struct {
	client *Client
	name   string
}

// Name returns the name of the bound index
func (i *Index) Name() string {
	return i.name
}

// AddObject indexes a single document using its objectID as the document ID.
func (i *Index) AddObject(ctx context.Context, doc domain.Document) error {
	id := doc.ID()
	if id == "" {
		return fmt.Errorf("document has no %s", domain.ObjectIDField)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", id, err)
	}

	req := esapi.IndexRequest{
		Index:      i.name,
		DocumentID: id,
		Body:       bytes.NewReader(body),
		Refresh:    i.client.refresh,
	}

	res, err := req.Do(ctx, i.client.es)
	if err != nil {
		return fmt.Errorf("failed to index document %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index document error: %s - %s", res.Status(), string(resBody))
	}

	i.client.logger.DebugContext(ctx, "indexed document", "index", i.name, "id", id)
	return nil
}

// AddObjects indexes multiple documents using the Bulk API.
// Each document is indexed with its objectID as the document ID.
func (i *Index) AddObjects(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		i.client.logger.InfoContext(ctx, "no documents to index", "index", i.name)
		return nil
	}

	var buf bytes.Buffer

	for _, doc := range docs {
		id := doc.ID()
		if id == "" {
			return fmt.Errorf("document has no %s", domain.ObjectIDField)
		}

		meta := map[string]any{
			"index": map[string]any{
				"_index": i.name,
				"_id":    id,
			},
		}
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal bulk metadata for document %s: %w", id, err)
		}

		docJSON, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", id, err)
		}

		// Each line must be newline-delimited
		buf.Write(metaJSON)
		buf.WriteByte('\n')
		buf.Write(docJSON)
		buf.WriteByte('\n')
	}

	req := esapi.BulkRequest{
		Body:    bytes.NewReader(buf.Bytes()),
		Refresh: i.client.refresh,
	}

	res, err := req.Do(ctx, i.client.es)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("bulk index error: %s - %s", res.Status(), string(body))
	}

	var bulkResponse struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string `json:"_id"`
			Status int    `json:"status"`
			Error  struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}

	if err := json.NewDecoder(res.Body).Decode(&bulkResponse); err != nil {
		return fmt.Errorf("failed to parse bulk response: %w", err)
	}

	if bulkResponse.Errors {
		var errorDetails []string
		for _, item := range bulkResponse.Items {
			for action, details := range item {
				if details.Status >= 400 {
					errorDetails = append(errorDetails, fmt.Sprintf(
						"%s failed for doc %s (status %d): %s - %s",
						action, details.ID, details.Status, details.Error.Type, details.Error.Reason,
					))
				}
			}
		}
		return fmt.Errorf("bulk index had errors: %s", strings.Join(errorDetails, "; "))
	}

	i.client.logger.InfoContext(ctx, "bulk indexed documents", "index", i.name, "count", len(docs))
	return nil
}

// DeleteIndex removes the index. A missing index is not an error.
func (i *Index) DeleteIndex(ctx context.Context) error {
	req := esapi.IndicesDeleteRequest{
		Index: []string{i.name},
	}

	res, err := req.Do(ctx, i.client.es)
	if err != nil {
		return fmt.Errorf("failed to delete index %s: %w", i.name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			i.client.logger.InfoContext(ctx, "index does not exist (already deleted)", "index", i.name)
			return nil
		}

		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("delete index error: %s - %s", res.Status(), string(body))
	}

	i.client.logger.InfoContext(ctx, "deleted index", "index", i.name)
	return nil
}

// CreateIndex creates the index with the specified mapping.
func (i *Index) CreateIndex(ctx context.Context, mapping string) error {
	req := esapi.IndicesCreateRequest{
		Index: i.name,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(ctx, i.client.es)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", i.name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("create index error: %s - %s", res.Status(), string(body))
	}

	i.client.logger.InfoContext(ctx, "created index", "index", i.name)
	return nil
}

// IndexExists checks if the index exists.
func (i *Index) IndexExists(ctx context.Context) (bool, error) {
	req := esapi.IndicesExistsRequest{
		Index: []string{i.name},
	}

	res, err := req.Do(ctx, i.client.es)
	if err != nil {
		return false, fmt.Errorf("failed to check if index exists %s: %w", i.name, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}

	body, _ := io.ReadAll(res.Body)
	return false, fmt.Errorf("index exists check error: %s - %s", res.Status(), string(body))
}

// EnsureIndex creates the index with the given mapping if it does not exist
func (i *Index) EnsureIndex(ctx context.Context, mapping string) error {
	exists, err := i.IndexExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.CreateIndex(ctx, mapping)
}

// RecreateIndex deletes the index and creates it again with the given mapping
func (i *Index) RecreateIndex(ctx context.Context, mapping string) error {
	if err := i.DeleteIndex(ctx); err != nil {
		return err
	}
	return i.CreateIndex(ctx, mapping)
}
