package engine

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adhconnect/forecast-gateway/internal/config"
	"github.com/adhconnect/forecast-gateway/internal/logger"
	"github.com/adhconnect/forecast-gateway/pkg/adh"
	"github.com/stretchr/testify/require"
)

// basePath is where the fake store serves the test tenant and namespace.
const basePath = "/api/v1/Tenants/tenant/Namespaces/ns"

// newTestServer wires a Server against a fake ADH API.
func newTestServer(t *testing.T, store http.Handler) *Server {
	t.Helper()

	backend := httptest.NewServer(store)
	t.Cleanup(backend.Close)

	client, err := adh.NewClient(adh.Options{
		Resource:   backend.URL,
		APIVersion: "v1",
		TenantID:   "tenant",
		HTTPClient: backend.Client(),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		NamespaceID:    "ns",
		RequestTimeout: 5,
		CORSOrigins:    []string{"http://localhost:3000"},
	}
	log := logger.New("test", logger.Config{Level: "error", Output: io.Discard})

	eng := NewEngine(cfg, log)
	eng.SetClient(client)
	return NewServer(eng)
}
