package engine

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adhconnect/forecast-gateway/internal/forecast"
)

// ModelHandlers serves the forecast model endpoints: listing, creation,
// deletion and model value reads.
type ModelHandlers struct {
	engine *Engine
}

// NewModelHandlers creates a new instance of ModelHandlers.
func NewModelHandlers(engine *Engine) *ModelHandlers {
	return &ModelHandlers{engine: engine}
}

// ListModels handles GET /connect/models. Unlike the generic listings, a
// model whose metadata cannot be decoded fails the whole request.
func (mh *ModelHandlers) ListModels(w http.ResponseWriter, r *http.Request) {
	mh.engine.TrackOperation()
	defer mh.engine.UntrackOperation()

	ctx, cancel := mh.engine.requestContext(r)
	defer cancel()

	assets, err := mh.engine.client.Assets.GetAssets(ctx, mh.engine.namespace(), forecast.ModelAssetQuery)
	if err != nil {
		mh.engine.handleStoreError(w, err, "Failed to fetch models")
		return
	}

	models := make([]Model, 0, len(assets))
	for _, asset := range assets {
		model, err := flattenModel(asset)
		if err != nil {
			mh.engine.writeErrorResponse(w, http.StatusInternalServerError, err.Error(), "Failed to fetch models")
			return
		}
		models = append(models, model)
	}
	mh.engine.writeJSONResponse(w, http.StatusOK, sortModels(models))
}

// CreateModel handles POST /connect/models.
func (mh *ModelHandlers) CreateModel(w http.ResponseWriter, r *http.Request) {
	mh.engine.TrackOperation()
	defer mh.engine.UntrackOperation()

	var req ModelCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mh.engine.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.ID == "" || req.Name == "" {
		mh.engine.writeErrorResponse(w, http.StatusBadRequest, "id and name are required", "")
		return
	}

	ctx, cancel := mh.engine.requestContext(r)
	defer cancel()

	mh.engine.logger.Infof("Creating model %s (%s)", req.ID, req.ModelType)
	_, err := mh.engine.assembler.CreateOrUpdate(ctx, forecast.CreateRequest{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		ModelType:        req.ModelType,
		SamplingRate:     req.SamplingRate,
		PastCovariates:   req.PastCovariates,
		Target:           req.Target,
		FutureCovariates: req.FutureCovariates,
		Status:           req.Status,
		TrainingHorizon:  req.TrainingHorizon,
		ForecastHorizon:  req.ForecastHorizon,
		UpdateFrequency:  req.UpdateFrequency,
		RetrainFrequency: req.RetrainFrequency,
	})
	if err != nil {
		mh.engine.handleStoreError(w, err, "Failed to create model")
		return
	}

	mh.engine.writeJSONResponse(w, http.StatusOK, StatusResponse{Status: StatusOK})
}

// DeleteModel handles DELETE /connect/models?asset_id=...
// Deleting an unknown asset id surfaces the store miss as a 404.
func (mh *ModelHandlers) DeleteModel(w http.ResponseWriter, r *http.Request) {
	mh.engine.TrackOperation()
	defer mh.engine.UntrackOperation()

	assetID := r.URL.Query().Get("asset_id")
	if assetID == "" {
		mh.engine.writeErrorResponse(w, http.StatusBadRequest, "asset_id is required", "")
		return
	}

	ctx, cancel := mh.engine.requestContext(r)
	defer cancel()

	if err := mh.engine.client.Assets.DeleteAsset(ctx, mh.engine.namespace(), assetID); err != nil {
		mh.engine.handleStoreError(w, err, "Failed to delete model")
		return
	}
	mh.engine.writeJSONResponse(w, http.StatusOK, StatusResponse{Status: StatusOK})
}

// GetModelValues handles GET /connect/model_values: interpolated data across
// the model asset's referenced streams. The asset lookup runs first so an
// unknown model id is reported as a miss rather than an empty result.
func (mh *ModelHandlers) GetModelValues(w http.ResponseWriter, r *http.Request) {
	mh.engine.TrackOperation()
	defer mh.engine.UntrackOperation()

	q := r.URL.Query()
	assetID := q.Get("asset_id")
	start := q.Get("start")
	end := q.Get("end")
	if assetID == "" || start == "" || end == "" {
		mh.engine.writeErrorResponse(w, http.StatusBadRequest, "asset_id, start and end are required", "")
		return
	}
	count, err := strconv.Atoi(q.Get("count"))
	if err != nil || count <= 0 {
		mh.engine.writeErrorResponse(w, http.StatusBadRequest, "count must be a positive integer", "")
		return
	}

	ctx, cancel := mh.engine.requestContext(r)
	defer cancel()

	if _, err := mh.engine.client.Assets.GetAssetByID(ctx, mh.engine.namespace(), assetID); err != nil {
		mh.engine.handleStoreError(w, err, "Failed to fetch model")
		return
	}

	values, err := mh.engine.client.Assets.GetAssetInterpolatedData(ctx, mh.engine.namespace(), assetID, start, end, count, nil)
	if err != nil {
		mh.engine.handleStoreError(w, err, "Failed to fetch model values")
		return
	}
	if values == nil {
		values = []map[string]any{}
	}
	mh.engine.writeJSONResponse(w, http.StatusOK, values)
}
