package adh

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// StreamsClient covers the SDS stream endpoints, including the data reads the
// gateway exposes.
type StreamsClient struct {
	c *Client
}

// GetStream fetches one stream by id.
func (s *StreamsClient) GetStream(ctx context.Context, namespace, id string) (*Stream, error) {
	var out Stream
	if err := s.c.get(ctx, s.c.namespaceURL(namespace, "Streams", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStreams lists all streams in the namespace.
func (s *StreamsClient) GetStreams(ctx context.Context, namespace string) ([]Stream, error) {
	var out []Stream
	if err := s.c.get(ctx, s.c.namespaceURL(namespace, "Streams"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrCreateStream returns the stored stream for def.ID, creating it when it
// does not exist yet.
func (s *StreamsClient) GetOrCreateStream(ctx context.Context, namespace string, def Stream) (*Stream, error) {
	existing, err := s.GetStream(ctx, namespace, def.ID)
	if err == nil {
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	var out Stream
	if err := s.c.do(ctx, http.MethodPost, s.c.namespaceURL(namespace, "Streams", def.ID), nil, def, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRangeValuesInterpolated reads count interpolated events between the start
// and end indexes. Events are returned as raw field maps because the value
// type is only known to the caller.
func (s *StreamsClient) GetRangeValuesInterpolated(ctx context.Context, namespace, streamID, start, end string, count int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("startIndex", start)
	query.Set("endIndex", end)
	query.Set("count", strconv.Itoa(count))

	var out []map[string]any
	if err := s.c.get(ctx, s.c.namespaceURL(namespace, "Streams", streamID, "Data", "Interpolated"), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSampledValues reads values sampled into the given number of intervals,
// picking representative events by the sampleBy property.
func (s *StreamsClient) GetSampledValues(ctx context.Context, namespace, streamID, start, end, sampleBy string, intervals int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("startIndex", start)
	query.Set("endIndex", end)
	query.Set("intervals", strconv.Itoa(intervals))
	query.Set("sampleBy", sampleBy)

	var out []map[string]any
	if err := s.c.get(ctx, s.c.namespaceURL(namespace, "Streams", streamID, "Data", "Sampled"), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
