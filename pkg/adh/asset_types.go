package adh

import (
	"context"
	"net/http"
)

// AssetTypesClient covers the asset type endpoints.
type AssetTypesClient struct {
	c *Client
}

// CreateOrUpdateAssetType upserts the asset type definition. Last write wins
// on the metadata schema; the store enforces compatibility with existing
// assets, not this client.
func (a *AssetTypesClient) CreateOrUpdateAssetType(ctx context.Context, namespace string, def AssetType) (*AssetType, error) {
	var out AssetType
	if err := a.c.do(ctx, http.MethodPut, a.c.namespaceURL(namespace, "AssetTypes", def.ID), nil, def, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssetTypes lists all asset types in the namespace.
func (a *AssetTypesClient) GetAssetTypes(ctx context.Context, namespace string) ([]AssetType, error) {
	var out []AssetType
	if err := a.c.get(ctx, a.c.namespaceURL(namespace, "AssetTypes"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
