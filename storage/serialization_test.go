package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/pricelens/core"
)

func TestListingRecordRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &core.ListingRecord{
		Id:          core.IDFromContent("https://example.com/p/1"),
		Platform:    core.PlatformFlipkart,
		Title:       "Apple iPhone 17 Pro (Deep Blue, 256 GB)",
		Price:       129900,
		Rating:      4.6,
		ReviewCount: 1245,
		URL:         "https://example.com/p/1",
		Description: "256 GB ROM, 16 cm display",
		Similarity:  0.9135,
		InsertedAt:  now,
		UpdatedAt:   now,
	}

	got, err := UnmarshalListingRecord(MarshalListingRecord(record))
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestListingRecordUnmarshalTruncated(t *testing.T) {
	record := &core.ListingRecord{
		Id:       1,
		Platform: core.PlatformAmazon,
		Title:    "x",
		URL:      "https://example.com/x",
	}
	data := MarshalListingRecord(record)

	_, err := UnmarshalListingRecord(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent("https://example.com/p/2")
	got, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVectorRoundTrip(t *testing.T) {
	vector := []float32{0.1, -0.5, 0.9135, 0}
	got, err := UnmarshalVector(MarshalVector(vector))
	require.NoError(t, err)
	assert.Equal(t, vector, got)

	empty, err := UnmarshalVector(MarshalVector(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
