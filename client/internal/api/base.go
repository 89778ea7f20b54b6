package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// Fetcher performs a single authenticated call and returns the raw JSON
// outcome: nil for 204 No Content. The client package supplies the only
// production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, opts *types.RequestOptions) (json.RawMessage, error)
}

func get(ctx context.Context, f Fetcher, endpoint string) (json.RawMessage, error) {
	return f.Fetch(ctx, endpoint, nil)
}

func send(ctx context.Context, f Fetcher, method, endpoint string, body any) (json.RawMessage, error) {
	return f.Fetch(ctx, endpoint, &types.RequestOptions{Method: method, Body: body})
}

// decode unmarshals a required object body.
func decode[T any](raw json.RawMessage, what string) (*T, error) {
	if raw == nil {
		return nil, fmt.Errorf("%s: empty response", what)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return &v, nil
}

// decodeOptional is decode for endpoints that may answer 204.
func decodeOptional[T any](raw json.RawMessage, what string) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	return decode[T](raw, what)
}

// decodeList unmarshals an array body; 204 yields an empty list.
func decodeList[T any](raw json.RawMessage, what string) ([]T, error) {
	if raw == nil {
		return []T{}, nil
	}
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}
