package engine

import (
	"net/http"
	"strconv"
)

// CatalogHandlers serves the read-only browse endpoints: types, streams,
// assets, asset types and the raw value reads.
type CatalogHandlers struct {
	engine *Engine
}

// NewCatalogHandlers creates a new instance of CatalogHandlers.
func NewCatalogHandlers(engine *Engine) *CatalogHandlers {
	return &CatalogHandlers{engine: engine}
}

// ListTypes handles GET /connect/types.
func (ch *CatalogHandlers) ListTypes(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	types, err := ch.engine.client.Types.GetTypes(ctx, ch.engine.namespace())
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch types")
		return
	}

	records := make([]Record, 0, len(types))
	for _, t := range types {
		records = append(records, flattenType(t))
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, sortRecords(records))
}

// ListStreams handles GET /connect/streams.
func (ch *CatalogHandlers) ListStreams(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	streams, err := ch.engine.client.Streams.GetStreams(ctx, ch.engine.namespace())
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch streams")
		return
	}

	records := make([]Record, 0, len(streams))
	for _, s := range streams {
		records = append(records, flattenStream(s))
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, sortRecords(records))
}

// ListAssets handles GET /connect/assets.
func (ch *CatalogHandlers) ListAssets(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	assets, err := ch.engine.client.Assets.GetAssets(ctx, ch.engine.namespace(), "")
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch assets")
		return
	}

	records := make([]Record, 0, len(assets))
	for _, a := range assets {
		records = append(records, flattenAsset(a))
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, sortRecords(records))
}

// ListAssetTypes handles GET /connect/asset_types.
func (ch *CatalogHandlers) ListAssetTypes(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	assetTypes, err := ch.engine.client.AssetTypes.GetAssetTypes(ctx, ch.engine.namespace())
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch asset types")
		return
	}

	records := make([]Record, 0, len(assetTypes))
	for _, at := range assetTypes {
		records = append(records, flattenAssetType(at))
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, sortRecords(records))
}

// GetStreamValues handles GET /connect/stream_values (interpolated range read).
func (ch *CatalogHandlers) GetStreamValues(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	q := r.URL.Query()
	streamID := q.Get("stream_id")
	start := q.Get("start")
	end := q.Get("end")
	if streamID == "" || start == "" || end == "" {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "stream_id, start and end are required", "")
		return
	}
	count, err := strconv.Atoi(q.Get("count"))
	if err != nil || count <= 0 {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "count must be a positive integer", "")
		return
	}

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	values, err := ch.engine.client.Streams.GetRangeValuesInterpolated(ctx, ch.engine.namespace(), streamID, start, end, count)
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch stream values")
		return
	}
	if values == nil {
		values = []map[string]any{}
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, values)
}

// GetStreamSampleValues handles GET /connect/stream_sample_values.
func (ch *CatalogHandlers) GetStreamSampleValues(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	q := r.URL.Query()
	streamID := q.Get("stream_id")
	start := q.Get("start")
	end := q.Get("end")
	if streamID == "" || start == "" || end == "" {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "stream_id, start and end are required", "")
		return
	}
	intervals, err := strconv.Atoi(q.Get("intervals"))
	if err != nil || intervals <= 0 {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "intervals must be a positive integer", "")
		return
	}

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	values, err := ch.engine.client.Streams.GetSampledValues(ctx, ch.engine.namespace(), streamID, start, end, "Value", intervals)
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch stream values")
		return
	}
	if values == nil {
		values = []map[string]any{}
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, values)
}

// GetAssetValues handles GET /connect/asset_values (interpolated per-asset).
func (ch *CatalogHandlers) GetAssetValues(w http.ResponseWriter, r *http.Request) {
	ch.engine.TrackOperation()
	defer ch.engine.UntrackOperation()

	q := r.URL.Query()
	assetID := q.Get("asset_id")
	start := q.Get("start")
	end := q.Get("end")
	if assetID == "" || start == "" || end == "" {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "asset_id, start and end are required", "")
		return
	}
	count, err := strconv.Atoi(q.Get("count"))
	if err != nil || count <= 0 {
		ch.engine.writeErrorResponse(w, http.StatusBadRequest, "count must be a positive integer", "")
		return
	}

	ctx, cancel := ch.engine.requestContext(r)
	defer cancel()

	values, err := ch.engine.client.Assets.GetAssetInterpolatedData(ctx, ch.engine.namespace(), assetID, start, end, count, q["stream"])
	if err != nil {
		ch.engine.handleStoreError(w, err, "Failed to fetch asset values")
		return
	}
	if values == nil {
		values = []map[string]any{}
	}
	ch.engine.writeJSONResponse(w, http.StatusOK, values)
}
