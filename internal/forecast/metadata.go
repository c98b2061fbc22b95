package forecast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

// Metadata keys every forecast model asset carries. The set is fixed: the
// asset type schema declares all of them, and encoding always emits all of
// them so queries can assume every key exists.
const (
	KeyModelType        = "model_type"
	KeySamplingRate     = "sampling_rate"
	KeyTrainingHorizon  = "training_horizon"
	KeyPastCovariates   = "past_covariates"
	KeyTarget           = "target"
	KeyFutureCovariates = "future_covariates"
	KeyStatus           = "status"
	KeyForecastHorizon  = "forecast_horizon"
	KeyUpdateFrequency  = "update_frequency"
	KeyRetrainFrequency = "retrain_frequency"
)

// Metadata is the typed view of a model asset's metadata fields.
type Metadata struct {
	ModelType        string
	SamplingRate     int64
	TrainingHorizon  int64
	ForecastHorizon  int64
	UpdateFrequency  int64
	RetrainFrequency int64
	PastCovariates   []string
	Target           []string
	FutureCovariates []string
	Status           []string
}

// JoinList encodes a logical list value as one comma-joined string.
func JoinList(values []string) string {
	return strings.Join(values, ",")
}

// SplitList decodes a comma-joined list. The empty string decodes to an
// empty slice, never to [""].
func SplitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}

func metaItem(id string, code adh.TypeCode, value any) adh.MetadataItem {
	return adh.MetadataItem{
		ID:       id,
		Name:     id,
		TypeCode: code,
		Value:    value,
	}
}

// Encode converts the metadata into the store's item representation. Absent
// values become the kind's zero value rather than being omitted, so the
// encoded set always covers the full schema.
func (m Metadata) Encode() []adh.MetadataItem {
	return []adh.MetadataItem{
		metaItem(KeyModelType, adh.TypeCodeString, m.ModelType),
		metaItem(KeySamplingRate, adh.TypeCodeInt64, m.SamplingRate),
		metaItem(KeyPastCovariates, adh.TypeCodeString, JoinList(m.PastCovariates)),
		metaItem(KeyTarget, adh.TypeCodeString, JoinList(m.Target)),
		metaItem(KeyFutureCovariates, adh.TypeCodeString, JoinList(m.FutureCovariates)),
		metaItem(KeyStatus, adh.TypeCodeString, JoinList(m.Status)),
		metaItem(KeyTrainingHorizon, adh.TypeCodeInt64, m.TrainingHorizon),
		metaItem(KeyForecastHorizon, adh.TypeCodeInt64, m.ForecastHorizon),
		metaItem(KeyUpdateFrequency, adh.TypeCodeInt64, m.UpdateFrequency),
		metaItem(KeyRetrainFrequency, adh.TypeCodeInt64, m.RetrainFrequency),
	}
}

// DecodeMetadata rebuilds the typed metadata from stored items. Any expected
// key missing from items is an error: a model record without its scheduling
// metadata is not safely usable, so the caller must fail the whole request
// instead of presenting a partial object.
func DecodeMetadata(items []adh.MetadataItem) (Metadata, error) {
	byName := make(map[string]adh.MetadataItem, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}

	var m Metadata
	var err error

	if m.ModelType, err = stringValue(byName, KeyModelType); err != nil {
		return Metadata{}, err
	}
	if m.SamplingRate, err = int64Value(byName, KeySamplingRate); err != nil {
		return Metadata{}, err
	}
	if m.TrainingHorizon, err = int64Value(byName, KeyTrainingHorizon); err != nil {
		return Metadata{}, err
	}
	if m.ForecastHorizon, err = int64Value(byName, KeyForecastHorizon); err != nil {
		return Metadata{}, err
	}
	if m.UpdateFrequency, err = int64Value(byName, KeyUpdateFrequency); err != nil {
		return Metadata{}, err
	}
	if m.RetrainFrequency, err = int64Value(byName, KeyRetrainFrequency); err != nil {
		return Metadata{}, err
	}

	for _, entry := range []struct {
		key  string
		dest *[]string
	}{
		{KeyPastCovariates, &m.PastCovariates},
		{KeyTarget, &m.Target},
		{KeyFutureCovariates, &m.FutureCovariates},
		{KeyStatus, &m.Status},
	} {
		value, err := stringValue(byName, entry.key)
		if err != nil {
			return Metadata{}, err
		}
		*entry.dest = SplitList(value)
	}

	return m, nil
}

func stringValue(items map[string]adh.MetadataItem, key string) (string, error) {
	item, ok := items[key]
	if !ok {
		return "", fmt.Errorf("metadata key %q missing", key)
	}
	switch v := item.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func int64Value(items map[string]adh.MetadataItem, key string) (int64, error) {
	item, ok := items[key]
	if !ok {
		return 0, fmt.Errorf("metadata key %q missing", key)
	}
	switch v := item.Value.(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		// JSON numbers decode as float64.
		return int64(v), nil
	case string:
		if v == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("metadata key %q: %w", key, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("metadata key %q has unexpected type %T", key, item.Value)
	}
}
