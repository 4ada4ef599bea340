package provider

import (
	"encoding/json"
	"fmt"
	"io"
)

// decodeResults reads a randomuser-shaped document and returns its "results" list.
// A missing or non-list "results" is ErrMalformedPayload. List entries that are not
// objects become nil records, which carry no email.
func decodeResults(r io.Reader) ([]Record, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	raw, ok := doc["results"]
	if !ok {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedPayload)
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, fmt.Errorf("%w: results is not a list", ErrMalformedPayload)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		records = append(records, obj)
	}
	return records, nil
}
