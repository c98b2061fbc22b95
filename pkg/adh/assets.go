package adh

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AssetsClient covers the asset API endpoints.
type AssetsClient struct {
	c *Client
}

// CreateOrUpdateAsset upserts the full asset definition. The returned asset
// is the store's authoritative copy, which may differ from the submitted one
// where the service normalizes fields.
func (a *AssetsClient) CreateOrUpdateAsset(ctx context.Context, namespace string, def Asset) (*Asset, error) {
	var out Asset
	if err := a.c.do(ctx, http.MethodPut, a.c.namespaceURL(namespace, "Assets", def.ID), nil, def, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssetByID fetches one asset.
func (a *AssetsClient) GetAssetByID(ctx context.Context, namespace, id string) (*Asset, error) {
	var out Asset
	if err := a.c.get(ctx, a.c.namespaceURL(namespace, "Assets", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAsset removes the asset by id. Deleting an unknown id is a lookup
// miss, not a silent success.
func (a *AssetsClient) DeleteAsset(ctx context.Context, namespace, id string) error {
	return a.c.do(ctx, http.MethodDelete, a.c.namespaceURL(namespace, "Assets", id), nil, nil, nil)
}

// GetAssets lists assets, optionally filtered by an asset search query such
// as "AssetTypeId:Forecast".
func (a *AssetsClient) GetAssets(ctx context.Context, namespace, query string) ([]Asset, error) {
	values := url.Values{}
	if query != "" {
		values.Set("query", query)
	}

	var out []Asset
	if err := a.c.get(ctx, a.c.namespaceURL(namespace, "Assets"), values, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAssetInterpolatedData reads interpolated values across the asset's
// referenced streams. When streams is non-empty the read is restricted to
// those stream references.
func (a *AssetsClient) GetAssetInterpolatedData(ctx context.Context, namespace, assetID, start, end string, count int, streams []string) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("startIndex", start)
	query.Set("endIndex", end)
	query.Set("count", strconv.Itoa(count))
	for _, s := range streams {
		query.Add("stream", s)
	}

	var out []map[string]any
	if err := a.c.get(ctx, a.c.namespaceURL(namespace, "Assets", assetID, "Data", "Interpolated"), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
