// Package adh is a minimal client for the AVEVA Data Hub REST API, covering
// the SDS type/stream surface and the asset API that the gateway consumes.
// The client is capability based: each API family is reached through its own
// sub-client so consumers can depend on exactly the operations they use.
package adh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
)

// Options carries the connection parameters for a tenant.
type Options struct {
	// Resource is the service base URL, e.g. https://uswe.datahub.connect.aveva.com.
	Resource     string
	APIVersion   string
	TenantID     string
	ClientID     string
	ClientSecret string

	// HTTPClient overrides the OAuth2 client-credentials transport. Tests use
	// this to point the client at an httptest server without authentication.
	HTTPClient *http.Client
}

// Client is the ADH API client. Construct it once at process start and share
// it; it is safe for concurrent use and holds the OAuth2 token source for the
// lifetime of the process.
type Client struct {
	baseURL    string
	apiVersion string
	tenantID   string
	httpClient *http.Client

	Types      *TypesClient
	Streams    *StreamsClient
	Assets     *AssetsClient
	AssetTypes *AssetTypesClient
}

// NewClient validates opts and builds a client authenticated with the OAuth2
// client-credentials flow against the tenant's identity endpoint.
func NewClient(opts Options) (*Client, error) {
	if opts.Resource == "" || opts.APIVersion == "" || opts.TenantID == "" {
		return nil, fmt.Errorf("adh: resource, api version and tenant id are required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.ClientID == "" || opts.ClientSecret == "" {
			return nil, fmt.Errorf("adh: client id and client secret are required")
		}
		creds := clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     strings.TrimSuffix(opts.Resource, "/") + "/identity/connect/token",
		}
		httpClient = creds.Client(context.Background())
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(opts.Resource, "/"),
		apiVersion: opts.APIVersion,
		tenantID:   opts.TenantID,
		httpClient: httpClient,
	}
	c.Types = &TypesClient{c: c}
	c.Streams = &StreamsClient{c: c}
	c.Assets = &AssetsClient{c: c}
	c.AssetTypes = &AssetTypesClient{c: c}
	return c, nil
}

// namespaceURL builds an absolute URL below the namespace root, escaping each
// path segment.
func (c *Client) namespaceURL(namespace string, segments ...string) string {
	parts := []string{
		c.baseURL, "api", c.apiVersion,
		"Tenants", url.PathEscape(c.tenantID),
		"Namespaces", url.PathEscape(namespace),
	}
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

// do issues one request and decodes a JSON body into out when out is non-nil.
// Any non-2xx answer becomes an *Error.
func (c *Client) do(ctx context.Context, method, rawURL string, query url.Values, body, out any) error {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("adh: encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return fmt.Errorf("adh: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("adh: %s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("adh: decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, rawURL, query, nil, out)
}
