// Package models defines the school record as stored in the dataset file.
package models

import (
	"encoding/json"
	"fmt"
)

// Record is one school entry. The dataset schema is open-ended: beyond the
// guid key every field is opaque passthrough, so the original object bytes
// are kept verbatim and re-emitted untouched on the wire.
type Record struct {
	GUID string
	Raw  json.RawMessage
}

// MarshalJSON emits the record exactly as it appeared in the dataset file.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

// DecodeDataset parses a dataset document. The top-level value must be a JSON
// array of objects; element order is preserved. Records without a guid field
// are kept with an empty key rather than rejected.
func DecodeDataset(data []byte) ([]Record, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("dataset is not a JSON array: %w", err)
	}

	records := make([]Record, 0, len(elements))
	for i, raw := range elements {
		var key struct {
			GUID string `json:"guid"`
		}
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("dataset record %d is not an object: %w", i, err)
		}
		records = append(records, Record{GUID: key.GUID, Raw: raw})
	}
	return records, nil
}
