package fs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// envelope wraps the serialized index with an xxhash checksum so a
// truncated or tampered artifact is detected before use rather than as
// a JSON syntax accident.
type envelope struct {
	Checksum string          `json:"checksum"`
	Index    json.RawMessage `json:"index"`
}

func checksum(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

// Encode writes idx to w as a checksummed JSON artifact.
func Encode(w io.Writer, idx *quicksearch.Index) error {
	payload, err := json.Marshal(idx)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(&envelope{
		Checksum: checksum(payload),
		Index:    payload,
	})
}

// Decode reads a checksummed artifact, verifies its checksum and the
// index invariants, and returns the index. All failures carry the
// ECORRUPT code so callers can skip the candidate and keep scanning.
func Decode(r io.Reader) (*quicksearch.Index, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, quicksearch.Errorf(quicksearch.ECORRUPT, "malformed index artifact: %v", err)
	}
	if sum := checksum(env.Index); sum != env.Checksum {
		return nil, quicksearch.Errorf(quicksearch.ECORRUPT, "index checksum mismatch: artifact says %s, payload is %s", env.Checksum, sum)
	}
	var idx quicksearch.Index
	if err := json.Unmarshal(env.Index, &idx); err != nil {
		return nil, quicksearch.Errorf(quicksearch.ECORRUPT, "malformed index payload: %v", err)
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return &idx, nil
}
