package adh

import (
	"context"
	"net/http"
)

// TypesClient covers the SDS type endpoints.
type TypesClient struct {
	c *Client
}

// GetType fetches one type definition by id.
func (t *TypesClient) GetType(ctx context.Context, namespace, id string) (*Type, error) {
	var out Type
	if err := t.c.get(ctx, t.c.namespaceURL(namespace, "Types", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTypes lists all type definitions in the namespace.
func (t *TypesClient) GetTypes(ctx context.Context, namespace string) ([]Type, error) {
	var out []Type
	if err := t.c.get(ctx, t.c.namespaceURL(namespace, "Types"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrCreateType returns the stored definition for def.ID, creating it when
// it does not exist yet. The operation is idempotent: repeated calls with the
// same definition return the same type.
func (t *TypesClient) GetOrCreateType(ctx context.Context, namespace string, def Type) (*Type, error) {
	existing, err := t.GetType(ctx, namespace, def.ID)
	if err == nil {
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	var out Type
	if err := t.c.do(ctx, http.MethodPost, t.c.namespaceURL(namespace, "Types", def.ID), nil, def, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
