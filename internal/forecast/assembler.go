package forecast

import (
	"context"
	"fmt"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// CreateRequest carries everything needed to assemble one model asset. The
// horizon and frequency parameters are passed through as metadata verbatim;
// this package does not interpret them.
type CreateRequest struct {
	ID               string
	Name             string
	Description      string
	ModelType        string
	SamplingRate     int64
	PastCovariates   []string
	Target           []string
	FutureCovariates []string
	Status           []string
	TrainingHorizon  int64
	ForecastHorizon  int64
	UpdateFrequency  int64
	RetrainFrequency int64
}

// Metadata returns the typed metadata view of the request.
func (r CreateRequest) Metadata() Metadata {
	return Metadata{
		ModelType:        r.ModelType,
		SamplingRate:     r.SamplingRate,
		TrainingHorizon:  r.TrainingHorizon,
		ForecastHorizon:  r.ForecastHorizon,
		UpdateFrequency:  r.UpdateFrequency,
		RetrainFrequency: r.RetrainFrequency,
		PastCovariates:   r.PastCovariates,
		Target:           r.Target,
		FutureCovariates: r.FutureCovariates,
		Status:           r.Status,
	}
}

// Assembler builds model assets against one namespace of the remote store.
type Assembler struct {
	store     Store
	namespace string
}

// NewAssembler returns an assembler bound to the given store and namespace.
func NewAssembler(store Store, namespace string) *Assembler {
	return &Assembler{store: store, namespace: namespace}
}

// outputStreams describes the three result streams created for every model,
// keyed by the fixed role tag each reference carries.
var outputStreams = []struct {
	suffix string
	role   string
}{
	{"_forecast", RoleForecast},
	{"_forecast_lower", RoleForecastLower},
	{"_forecast_upper", RoleForecastUpper},
}

// CreateOrUpdate derives the complete model asset from req and submits it in
// one upsert. Every step is idempotent on the store side, so a failed attempt
// leaves only safely reusable sub-resources (types, output streams) behind
// and the whole operation can simply be retried.
func (a *Assembler) CreateOrUpdate(ctx context.Context, req CreateRequest) (*adh.Asset, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("model id is required")
	}

	metadata := req.Metadata().Encode()

	// The output streams declare this type, so it must exist first.
	valueType, err := EnsureType(ctx, a.store.Types, a.namespace, ScalarValueType)
	if err != nil {
		return nil, err
	}

	var references []adh.StreamReference
	for _, group := range []struct {
		role string
		ids  []string
	}{
		{RolePastCovariates, req.PastCovariates},
		{RoleTarget, req.Target},
		{RoleFutureCovariates, req.FutureCovariates},
		{RoleStatus, req.Status},
	} {
		refs, err := BuildReferences(ctx, a.store.Streams, a.namespace, group.role, req.ID, group.ids)
		if err != nil {
			return nil, err
		}
		references = append(references, refs...)
	}

	for _, out := range outputStreams {
		def := adh.Stream{
			ID:                req.ID + out.suffix,
			TypeID:            valueType.ID,
			Name:              req.ID + out.suffix,
			Description:       fmt.Sprintf("%s output for model %s", out.role, req.ID),
			InterpolationMode: adh.InterpolationContinuous,
			ExtrapolationMode: adh.ExtrapolationAll,
		}
		stream, err := a.store.Streams.GetOrCreateStream(ctx, a.namespace, def)
		if err != nil {
			return nil, fmt.Errorf("create output stream %s: %w", def.ID, err)
		}
		references = append(references, referenceFor(out.role, stream))
	}

	assetType, err := EnsureAssetType(ctx, a.store.AssetTypes, a.namespace)
	if err != nil {
		return nil, err
	}

	asset := adh.Asset{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		AssetTypeID:      assetType.ID,
		Metadata:         metadata,
		StreamReferences: references,
	}

	// The store's response is authoritative; it may normalize fields.
	created, err := a.store.Assets.CreateOrUpdateAsset(ctx, a.namespace, asset)
	if err != nil {
		return nil, fmt.Errorf("upsert asset %s: %w", req.ID, err)
	}
	return created, nil
}
