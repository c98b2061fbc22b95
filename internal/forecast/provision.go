package forecast

import (
	"context"
	"fmt"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// TypeVariant selects one of the two process-wide SDS type schemas. The
// definitions are constants on purpose: changing them changes the schema
// every existing asset of that type is bound to, and the store, not this
// package, enforces schema compatibility.
type TypeVariant string

const (
	// ForecastBandType is the combined object schema carrying a forecast
	// with its confidence band in one stream. Assets created by the earlier
	// single-stream layout are bound to it.
	ForecastBandType TypeVariant = "model_forecast"

	// ScalarValueType is the flat timestamp/value schema backing the three
	// per-band output streams created for new model assets.
	ScalarValueType TypeVariant = "forecast_value"
)

// Forecast asset type identity and the asset search filter matching assets
// bound to it.
const (
	AssetTypeID     = "Forecast"
	ModelAssetQuery = "AssetTypeId:" + AssetTypeID
)

// TypeDefinition returns the full SDS definition for a variant.
func TypeDefinition(variant TypeVariant) (adh.Type, error) {
	switch variant {
	case ForecastBandType:
		return adh.Type{
			ID:          string(ForecastBandType),
			Name:        string(ForecastBandType),
			Description: "Data Model for Forecast",
			TypeCode:    adh.TypeCodeObject,
			Properties: []adh.TypeProperty{
				{ID: "Timestamp", IsKey: true, TypeCode: adh.TypeCodeDateTime},
				{ID: "Forecast", TypeCode: adh.TypeCodeDouble},
				{ID: "Lower", TypeCode: adh.TypeCodeDouble},
				{ID: "Upper", TypeCode: adh.TypeCodeDouble},
				{ID: "Weight", TypeCode: adh.TypeCodeDoubleArray},
			},
		}, nil
	case ScalarValueType:
		return adh.Type{
			ID:          string(ScalarValueType),
			Name:        string(ScalarValueType),
			Description: "Scalar forecast output value",
			TypeCode:    adh.TypeCodeObject,
			Properties: []adh.TypeProperty{
				{ID: "Timestamp", IsKey: true, TypeCode: adh.TypeCodeDateTime},
				{ID: "Value", TypeCode: adh.TypeCodeDouble},
			},
		}, nil
	default:
		return adh.Type{}, fmt.Errorf("unknown type variant %q", variant)
	}
}

// EnsureType makes sure the variant's type exists in the store and returns
// the stored definition. Repeated calls return a type with the same identity.
func EnsureType(ctx context.Context, types TypeStore, namespace string, variant TypeVariant) (*adh.Type, error) {
	def, err := TypeDefinition(variant)
	if err != nil {
		return nil, err
	}
	created, err := types.GetOrCreateType(ctx, namespace, def)
	if err != nil {
		return nil, fmt.Errorf("ensure type %s: %w", def.ID, err)
	}
	return created, nil
}

// AssetTypeDefinition returns the Forecast asset type with its fixed metadata
// schema: every key a model asset carries, with zero values.
func AssetTypeDefinition() adh.AssetType {
	return adh.AssetType{
		ID:          AssetTypeID,
		Name:        AssetTypeID,
		Description: "Base model for ML timeseries forecast",
		Metadata:    Metadata{}.Encode(),
	}
}

// EnsureAssetType upserts the Forecast asset type. Last write wins on the
// schema; the store reconciles existing assets.
func EnsureAssetType(ctx context.Context, assetTypes AssetTypeStore, namespace string) (*adh.AssetType, error) {
	created, err := assetTypes.CreateOrUpdateAssetType(ctx, namespace, AssetTypeDefinition())
	if err != nil {
		return nil, fmt.Errorf("ensure asset type %s: %w", AssetTypeID, err)
	}
	return created, nil
}
