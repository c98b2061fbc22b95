package forecast

import (
	"context"
	"net/http"
	"sync"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// fakeStore is an in-memory stand-in for the remote store with the idempotent
// get-or-create / create-or-update semantics the real service provides.
type fakeStore struct {
	mu sync.Mutex

	streams    map[string]adh.Stream
	types      map[string]adh.Type
	assetTypes map[string]adh.AssetType
	assets     map[string]adh.Asset

	streamLookups  []string
	createdStreams []string
	typeCreates    int
}

func newFakeStore(existing ...adh.Stream) *fakeStore {
	f := &fakeStore{
		streams:    make(map[string]adh.Stream),
		types:      make(map[string]adh.Type),
		assetTypes: make(map[string]adh.AssetType),
		assets:     make(map[string]adh.Asset),
	}
	for _, s := range existing {
		f.streams[s.ID] = s
	}
	return f
}

func (f *fakeStore) store() Store {
	return Store{Types: f, Streams: f, Assets: f, AssetTypes: f}
}

func notFound(msg string) *adh.Error {
	return &adh.Error{StatusCode: http.StatusNotFound, Message: msg}
}

func (f *fakeStore) GetStream(_ context.Context, _ string, id string) (*adh.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streamLookups = append(f.streamLookups, id)
	s, ok := f.streams[id]
	if !ok {
		return nil, notFound("stream not found: " + id)
	}
	return &s, nil
}

func (f *fakeStore) GetOrCreateStream(_ context.Context, _ string, def adh.Stream) (*adh.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.streams[def.ID]; ok {
		return &s, nil
	}
	f.streams[def.ID] = def
	f.createdStreams = append(f.createdStreams, def.ID)
	return &def, nil
}

func (f *fakeStore) GetOrCreateType(_ context.Context, _ string, def adh.Type) (*adh.Type, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.types[def.ID]; ok {
		return &t, nil
	}
	f.types[def.ID] = def
	f.typeCreates++
	return &def, nil
}

func (f *fakeStore) CreateOrUpdateAssetType(_ context.Context, _ string, def adh.AssetType) (*adh.AssetType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assetTypes[def.ID] = def
	return &def, nil
}

func (f *fakeStore) CreateOrUpdateAsset(_ context.Context, _ string, def adh.Asset) (*adh.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	def.CreatedDate = "2026-01-01T00:00:00Z"
	f.assets[def.ID] = def
	return &def, nil
}
