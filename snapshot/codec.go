package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Payload is the serializable result of one fit: enough to reconstruct
// the estimator's output without rerunning BUILD/SWAP.
type Payload struct {
	K       int
	Loss    string
	Seed    int64
	MBuild  []int
	MFinal  []int
	A       []int
	Steps   int
	MaxIter bool
}

// Encode serializes a Payload with encoding/gob, the codec vecgo's own
// codec package reaches for when the data is an internal, versioned-by-
// redeploy struct rather than a cross-language wire format.
func Encode(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	return p, nil
}
