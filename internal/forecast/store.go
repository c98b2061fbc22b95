// Package forecast assembles forecast-model assets on top of the remote
// store: it encodes model metadata, resolves covariate streams into
// references, provisions the backing SDS types and the Forecast asset type,
// and submits the composed asset in one upsert.
package forecast

import (
	"context"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// TypeStore is the type capability the provisioner needs.
type TypeStore interface {
	GetOrCreateType(ctx context.Context, namespace string, def adh.Type) (*adh.Type, error)
}

// StreamStore is the stream capability the reference builder and assembler need.
type StreamStore interface {
	GetStream(ctx context.Context, namespace, id string) (*adh.Stream, error)
	GetOrCreateStream(ctx context.Context, namespace string, def adh.Stream) (*adh.Stream, error)
}

// AssetStore is the asset capability the assembler needs.
type AssetStore interface {
	CreateOrUpdateAsset(ctx context.Context, namespace string, def adh.Asset) (*adh.Asset, error)
}

// AssetTypeStore is the asset type capability the provisioner needs.
type AssetTypeStore interface {
	CreateOrUpdateAssetType(ctx context.Context, namespace string, def adh.AssetType) (*adh.AssetType, error)
}

// Store groups the remote store capabilities the assembler consumes. The adh
// sub-clients satisfy the interfaces directly; tests substitute fakes.
type Store struct {
	Types      TypeStore
	Streams    StreamStore
	Assets     AssetStore
	AssetTypes AssetTypeStore
}
