package forecast

import (
	"context"
	"fmt"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// Role group names for the covariate lists a model asset references.
const (
	RolePastCovariates   = "past_covariates"
	RoleTarget           = "target"
	RoleFutureCovariates = "future_covariates"
	RoleStatus           = "status"
)

// Fixed role tags for the output streams holding computed forecast results.
const (
	RoleForecast      = "Forecast"
	RoleForecastLower = "Forecast Lower"
	RoleForecastUpper = "Forecast Upper"
)

// dedupe keeps the first occurrence of each identifier, preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// BuildReferences resolves the identifiers of one role group into stream
// references named "<roleGroup>_<assetID>_<i>". Duplicate identifiers are
// dropped before resolution so each unique id costs exactly one lookup and
// yields exactly one reference. An unknown identifier fails the whole build:
// an asset with missing covariate streams is not usable downstream.
func BuildReferences(ctx context.Context, streams StreamStore, namespace, roleGroup, assetID string, ids []string) ([]adh.StreamReference, error) {
	unique := dedupe(ids)
	references := make([]adh.StreamReference, 0, len(unique))
	for i, id := range unique {
		stream, err := streams.GetStream(ctx, namespace, id)
		if err != nil {
			return nil, fmt.Errorf("resolve %s stream %q: %w", roleGroup, id, err)
		}
		references = append(references, adh.StreamReference{
			ID:          fmt.Sprintf("%s_%s_%d", roleGroup, assetID, i),
			Name:        stream.Name,
			StreamID:    stream.ID,
			Description: stream.Description,
		})
	}
	return references, nil
}

// referenceFor builds a reference with a fixed singular role tag.
func referenceFor(role string, stream *adh.Stream) adh.StreamReference {
	return adh.StreamReference{
		ID:          role,
		Name:        stream.Name,
		StreamID:    stream.ID,
		Description: stream.Description,
	}
}
