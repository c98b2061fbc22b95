package engine

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adhconnect/forecast-gateway/internal/forecast"
	"github.com/adhconnect/forecast-gateway/pkg/adh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelStore is a stateful fake of the store endpoints the model lifecycle
// touches.
type modelStore struct {
	mux     *http.ServeMux
	streams map[string]adh.Stream
	types   map[string]bool
	asset   *adh.Asset
}

func newModelStore(existing ...adh.Stream) *modelStore {
	s := &modelStore{
		mux:     http.NewServeMux(),
		streams: make(map[string]adh.Stream),
		types:   make(map[string]bool),
	}
	for _, stream := range existing {
		s.streams[stream.ID] = stream
	}

	s.mux.HandleFunc(basePath+"/Types/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, basePath+"/Types/")
		switch r.Method {
		case http.MethodGet:
			if !s.types[id] {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(adh.Type{ID: id, Name: id})
		case http.MethodPost:
			s.types[id] = true
			var def adh.Type
			json.NewDecoder(r.Body).Decode(&def)
			json.NewEncoder(w).Encode(def)
		}
	})

	s.mux.HandleFunc(basePath+"/Streams/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, basePath+"/Streams/")
		switch r.Method {
		case http.MethodGet:
			stream, ok := s.streams[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"Error": "stream not found: " + id})
				return
			}
			json.NewEncoder(w).Encode(stream)
		case http.MethodPost:
			var def adh.Stream
			json.NewDecoder(r.Body).Decode(&def)
			s.streams[def.ID] = def
			json.NewEncoder(w).Encode(def)
		}
	})

	s.mux.HandleFunc(basePath+"/AssetTypes/", func(w http.ResponseWriter, r *http.Request) {
		var def adh.AssetType
		json.NewDecoder(r.Body).Decode(&def)
		json.NewEncoder(w).Encode(def)
	})

	s.mux.HandleFunc(basePath+"/Assets/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, basePath+"/Assets/")
		switch r.Method {
		case http.MethodPut:
			var def adh.Asset
			json.NewDecoder(r.Body).Decode(&def)
			def.CreatedDate = "2026-02-01T00:00:00Z"
			s.asset = &def
			json.NewEncoder(w).Encode(def)
		case http.MethodDelete:
			if s.asset == nil || s.asset.ID != id {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			s.asset = nil
			w.WriteHeader(http.StatusNoContent)
		}
	})

	return s
}

func (s *modelStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func createBody(t *testing.T, req ModelCreateRequest) *bytes.Buffer {
	t.Helper()
	encoded, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(encoded)
}

func TestCreateModelAssemblesAsset(t *testing.T) {
	store := newModelStore(
		adh.Stream{ID: "s1", Name: "Sensor 1"},
		adh.Stream{ID: "s2", Name: "Sensor 2"},
		adh.Stream{ID: "s3", Name: "Target"},
	)
	server := newTestServer(t, store)

	body := createBody(t, ModelCreateRequest{
		ID:             "m1",
		Name:           "Model 1",
		Description:    "demand forecast",
		ModelType:      "TFTModel",
		SamplingRate:   60,
		PastCovariates: []string{"s1", "s1", "s2"},
		Target:         []string{"s3"},
	})
	req := httptest.NewRequest(http.MethodPost, "/connect/models", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatusOK, resp.Status)

	require.NotNil(t, store.asset)
	assert.Equal(t, forecast.AssetTypeID, store.asset.AssetTypeID)
	// 2 deduplicated past + 1 target + 3 fixed result references.
	assert.Len(t, store.asset.StreamReferences, 6)
	assert.Len(t, store.asset.Metadata, 10)
}

func TestCreateModelUnknownStream(t *testing.T) {
	server := newTestServer(t, newModelStore())

	body := createBody(t, ModelCreateRequest{ID: "m1", Name: "Model 1", Target: []string{"ghost"}})
	req := httptest.NewRequest(http.MethodPost, "/connect/models", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "ghost")
}

func TestCreateModelValidation(t *testing.T) {
	server := newTestServer(t, newModelStore())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/connect/models", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/connect/models", createBody(t, ModelCreateRequest{Name: "no id"})))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteModelMissSurfaces404(t *testing.T) {
	server := newTestServer(t, newModelStore())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/connect/models?asset_id=ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteModelRequiresAssetID(t *testing.T) {
	server := newTestServer(t, newModelStore())

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/connect/models", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListModelsFlattensMetadata(t *testing.T) {
	asset := adh.Asset{
		ID:       "m1",
		Name:     "Model 1",
		Metadata: forecast.Metadata{ModelType: "TFTModel", Target: []string{"s3"}, SamplingRate: 60}.Encode(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"/Assets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, forecast.ModelAssetQuery, r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode([]adh.Asset{asset})
	})
	server := newTestServer(t, mux)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/connect/models", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var models []Model
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	require.Len(t, models, 1)
	assert.Equal(t, "TFTModel", models[0].ModelType)
	assert.Equal(t, int64(60), models[0].SamplingRate)
	assert.Equal(t, []string{"s3"}, models[0].Target)
	assert.Equal(t, []string{}, models[0].FutureCovariates)
}

func TestListModelsIncompleteMetadataFailsRequest(t *testing.T) {
	// One asset lacks the whole metadata set: the entire listing fails
	// rather than reporting a partial model.
	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"/Assets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]adh.Asset{{ID: "broken", Name: "Broken"}})
	})
	server := newTestServer(t, mux)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/connect/models", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetModelValuesUnknownModel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"/Assets/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := newTestServer(t, mux)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/connect/model_values?asset_id=ghost&start=a&end=b&count=10", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetModelValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"/Assets/m1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(adh.Asset{ID: "m1", Name: "Model 1"})
	})
	mux.HandleFunc(basePath+"/Assets/m1/Data/Interpolated", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"Forecast": 1.0}})
	})
	server := newTestServer(t, mux)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/connect/model_values?asset_id=m1&start=a&end=b&count=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var values []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &values))
	require.Len(t, values, 1)
}
