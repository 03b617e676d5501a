package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Resource is a typed view of one backend collection. T is the record type
// as decoded from the API, F the payload sent on create and full update.
type Resource[T any, F any] struct {
	client *Client
	path   string
}

// NewResource binds a collection path like "/products" to a client.
func NewResource[T any, F any](client *Client, path string) *Resource[T, F] {
	return &Resource[T, F]{client: client, path: path}
}

// List fetches the full collection. A response body that is not a JSON
// array is treated as an empty collection, not an error.
func (r *Resource[T, F]) List(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: decode collection: %v", httpx.ErrUpstream, err)
	}
	return records, nil
}

// Get fetches one record by identifier.
func (r *Resource[T, F]) Get(ctx context.Context, id string) (T, error) {
	var record T
	err := r.client.Do(ctx, http.MethodGet, r.path+"/"+escapeID(id), nil, &record)
	return record, err
}

// Create posts a new record payload.
func (r *Resource[T, F]) Create(ctx context.Context, form F) error {
	return r.client.Do(ctx, http.MethodPost, r.path, form, nil)
}

// Update replaces a record with the given payload.
func (r *Resource[T, F]) Update(ctx context.Context, id string, form F) error {
	return r.client.Do(ctx, http.MethodPut, r.path+"/"+escapeID(id), form, nil)
}

// Patch sends a partial payload over PUT. The backend tolerates partial
// bodies for order status updates.
func (r *Resource[T, F]) Patch(ctx context.Context, id string, body any) error {
	return r.client.Do(ctx, http.MethodPut, r.path+"/"+escapeID(id), body, nil)
}

// Delete removes a record by identifier.
func (r *Resource[T, F]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.path+"/"+escapeID(id), nil, nil)
}
