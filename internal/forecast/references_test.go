package forecast

import (
	"context"
	"testing"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReferencesDeduplicates(t *testing.T) {
	store := newFakeStore(
		adh.Stream{ID: "s1", Name: "Sensor 1", Description: "first"},
		adh.Stream{ID: "s2", Name: "Sensor 2"},
	)

	refs, err := BuildReferences(context.Background(), store, "ns", RolePastCovariates, "m1", []string{"s1", "s1", "s2", "s1"})
	require.NoError(t, err)
	require.Len(t, refs, 2, "duplicates collapse to unique identifiers")

	// First-seen order, indexed names.
	assert.Equal(t, "past_covariates_m1_0", refs[0].ID)
	assert.Equal(t, "s1", refs[0].StreamID)
	assert.Equal(t, "Sensor 1", refs[0].Name)
	assert.Equal(t, "first", refs[0].Description)
	assert.Equal(t, "past_covariates_m1_1", refs[1].ID)
	assert.Equal(t, "s2", refs[1].StreamID)

	// Dedup happens before resolution: one lookup per unique id.
	assert.Equal(t, []string{"s1", "s2"}, store.streamLookups)
}

func TestBuildReferencesEmpty(t *testing.T) {
	store := newFakeStore()
	refs, err := BuildReferences(context.Background(), store, "ns", RoleFutureCovariates, "m1", nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.Empty(t, store.streamLookups)
}

func TestBuildReferencesUnknownStreamFails(t *testing.T) {
	store := newFakeStore(adh.Stream{ID: "s1", Name: "Sensor 1"})

	_, err := BuildReferences(context.Background(), store, "ns", RoleTarget, "m1", []string{"s1", "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.True(t, adh.IsNotFound(err))
}
