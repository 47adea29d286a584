package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/pricelens/pricelens/core"
)

// Hand-written MUS codecs for the stored types, built on the library's
// serializer objects. The layout is flat field concatenation in declaration
// order; changing field order or types is a breaking change for existing
// databases.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalListingRecord serializes a ListingRecord to bytes.
func MarshalListingRecord(record *core.ListingRecord) []byte {
	size := varint.Uint64.Size(uint64(record.Id)) +
		ord.String.Size(string(record.Platform)) +
		ord.String.Size(record.Title) +
		raw.Float64.Size(record.Price) +
		raw.Float64.Size(record.Rating) +
		varint.Int.Size(record.ReviewCount) +
		ord.String.Size(record.URL) +
		ord.String.Size(record.Description) +
		raw.Float64.Size(record.Similarity) +
		varint.Int64.Size(record.InsertedAt.UnixMicro()) +
		varint.Int64.Size(record.UpdatedAt.UnixMicro())

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(record.Id), buf)
	n += ord.String.Marshal(string(record.Platform), buf[n:])
	n += ord.String.Marshal(record.Title, buf[n:])
	n += raw.Float64.Marshal(record.Price, buf[n:])
	n += raw.Float64.Marshal(record.Rating, buf[n:])
	n += varint.Int.Marshal(record.ReviewCount, buf[n:])
	n += ord.String.Marshal(record.URL, buf[n:])
	n += ord.String.Marshal(record.Description, buf[n:])
	n += raw.Float64.Marshal(record.Similarity, buf[n:])
	n += varint.Int64.Marshal(record.InsertedAt.UnixMicro(), buf[n:])
	varint.Int64.Marshal(record.UpdatedAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalListingRecord deserializes a ListingRecord from bytes.
func UnmarshalListingRecord(data []byte) (*core.ListingRecord, error) {
	var record core.ListingRecord
	n := 0

	id, c, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	record.Id = core.ID(id)
	n += c

	platform, c, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: platform: %w", ErrSerializationFailed, err)
	}
	record.Platform = core.Platform(platform)
	n += c

	if record.Title, c, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: title: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.Price, c, err = raw.Float64.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: price: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.Rating, c, err = raw.Float64.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: rating: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.ReviewCount, c, err = varint.Int.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: review count: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.URL, c, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: url: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.Description, c, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: description: %w", ErrSerializationFailed, err)
	}
	n += c

	if record.Similarity, c, err = raw.Float64.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: similarity: %w", ErrSerializationFailed, err)
	}
	n += c

	inserted, c, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: inserted at: %w", ErrSerializationFailed, err)
	}
	record.InsertedAt = time.UnixMicro(inserted).UTC()
	n += c

	updated, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: updated at: %w", ErrSerializationFailed, err)
	}
	record.UpdatedAt = time.UnixMicro(updated).UTC()

	return &record, nil
}

// MarshalVector serializes an embedding vector to bytes.
func MarshalVector(vector []float32) []byte {
	size := varint.Int.Size(len(vector))
	for _, v := range vector {
		size += raw.Float32.Size(v)
	}

	buf := make([]byte, size)
	n := varint.Int.Marshal(len(vector), buf)
	for _, v := range vector {
		n += raw.Float32.Marshal(v, buf[n:])
	}
	return buf
}

// UnmarshalVector deserializes an embedding vector from bytes.
func UnmarshalVector(data []byte) ([]float32, error) {
	length, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: vector length: %w", ErrSerializationFailed, err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative vector length", ErrSerializationFailed)
	}

	vector := make([]float32, length)
	for i := 0; i < length; i++ {
		v, c, err := raw.Float32.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: vector element %d: %w", ErrTruncatedData, i, err)
		}
		vector[i] = v
		n += c
	}
	return vector, nil
}
