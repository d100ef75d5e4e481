package diagram

import (
	"encoding/json"

	"github.com/slidegeom/slidegeom/pkg/errors"
)

// MarshalRequest serializes a request to canonical JSON. The canonical
// form is what cache keys and diagram IDs are derived from, so field
// order and omission rules must stay stable.
func MarshalRequest(r *Request) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalRequest parses a request from JSON and verifies the content
// union is coherent.
func UnmarshalRequest(data []byte) (*Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse diagram request")
	}
	if _, err := r.Content(); err != nil {
		return nil, err
	}
	return &r, nil
}

// MarshalResult serializes a build result with indentation for
// downstream consumers and artifact output.
func MarshalResult(r *Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult parses a previously serialized result.
func UnmarshalResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse diagram result")
	}
	return &r, nil
}
