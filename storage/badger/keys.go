package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/pricelens/pricelens/core"
)

// Key prefixes for different data types
const (
	listingPrefix         = "lstrec"
	listingPlatformPrefix = "lstplat"
	embeddingPrefix       = "embvec"
)

// makeListingKey generates a key for a listing by ID.
func makeListingKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", listingPrefix, id))
}

// makeListingPlatformKey generates a composite key for the platform index.
// Format: prefix:platform:id
func makeListingPlatformKey(platform core.Platform, id core.ID) []byte {
	prefix := listingPlatformPrefix + ":" + string(platform) + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// BigEndian so lexicographic iteration order is stable
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialListingPlatformKey generates the iteration prefix for one
// platform's index entries.
func makePartialListingPlatformKey(platform core.Platform) []byte {
	return []byte(listingPlatformPrefix + ":" + string(platform) + ":")
}

// makeEmbeddingKey generates a key for a cached embedding. Texts are keyed
// by content hash so arbitrarily long titles stay within key size limits.
func makeEmbeddingKey(text string) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, core.IDFromContent(text)))
}
