package engine

import (
	"fmt"
	"sort"

	"github.com/adhconnect/forecast-gateway/internal/forecast"
	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// The flattening helpers are deliberately asymmetric: generic records degrade
// to blank fields when something is missing, while model assets fail the
// whole request, because a model without its scheduling metadata is not
// safely usable by any consumer.

func flattenType(t adh.Type) Record {
	return Record{ID: t.ID, Name: t.Name, Description: t.Description, CreatedDate: t.CreatedDate}
}

func flattenStream(s adh.Stream) Record {
	return Record{ID: s.ID, Name: s.Name, Description: s.Description, CreatedDate: s.CreatedDate}
}

func flattenAsset(a adh.Asset) Record {
	return Record{ID: a.ID, Name: a.Name, Description: a.Description, CreatedDate: a.CreatedDate}
}

func flattenAssetType(at adh.AssetType) Record {
	return Record{ID: at.ID, Name: at.Name, Description: at.Description, CreatedDate: at.CreatedDate}
}

// flattenModel decodes the asset's full metadata set. A missing expected key
// is an error for the caller to surface, never a partial model.
func flattenModel(a adh.Asset) (Model, error) {
	meta, err := forecast.DecodeMetadata(a.Metadata)
	if err != nil {
		return Model{}, fmt.Errorf("model %s: %w", a.ID, err)
	}
	return Model{
		ID:               a.ID,
		Name:             a.Name,
		Description:      a.Description,
		ModelType:        meta.ModelType,
		SamplingRate:     meta.SamplingRate,
		PastCovariates:   meta.PastCovariates,
		Target:           meta.Target,
		FutureCovariates: meta.FutureCovariates,
		Status:           meta.Status,
		TrainingHorizon:  meta.TrainingHorizon,
		ForecastHorizon:  meta.ForecastHorizon,
		UpdateFrequency:  meta.UpdateFrequency,
		RetrainFrequency: meta.RetrainFrequency,
	}, nil
}

// sortRecords orders a flattened list ascending by name, stably.
func sortRecords(records []Record) []Record {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// sortModels orders a model list ascending by name, stably.
func sortModels(models []Model) []Model {
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models
}
