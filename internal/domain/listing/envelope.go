package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Envelope is the upstream response wrapper: a metadata context string plus an
// ordered array of records. Raw is the complete upstream body and is what
// pass-through callers should write back out; it is never re-encoded.
//
// An Envelope is built once per request and not modified afterwards.
type Envelope struct {
	Context string
	Records []json.RawMessage
	Raw     json.RawMessage

	// ValueMissing is true when the upstream body had no "value" array and
	// Records was substituted with an empty slice.
	ValueMissing bool
}

// DecodeEnvelope parses an upstream body. The body must be a JSON object; if it
// has a "value" member that member must be an array of objects. A missing or
// null "value" is tolerated and reported through ValueMissing.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if members == nil {
		return nil, errors.New("decoding envelope: body is null")
	}

	env := &Envelope{Raw: json.RawMessage(bytes.Clone(body))}

	if raw, ok := members["@odata.context"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &env.Context); err != nil {
			return nil, fmt.Errorf("decoding @odata.context: %w", err)
		}
	}

	raw, ok := members["value"]
	if !ok || isNull(raw) {
		env.Records = []json.RawMessage{}
		env.ValueMissing = true
		return env, nil
	}

	if err := json.Unmarshal(raw, &env.Records); err != nil {
		return nil, fmt.Errorf("decoding value: %w", err)
	}
	for i, rec := range env.Records {
		if !isObject(rec) {
			return nil, fmt.Errorf("decoding value: record %d is not an object", i)
		}
	}
	if env.Records == nil {
		env.Records = []json.RawMessage{}
	}

	return env, nil
}

// Len returns the number of records.
func (e *Envelope) Len() int {
	return len(e.Records)
}

// Listings decodes the records as Property listings.
func (e *Envelope) Listings() ([]Listing, error) {
	return decodeRecords[Listing](e.Records)
}

// History decodes the records as history entries.
func (e *Envelope) History() ([]HistoryEntry, error) {
	return decodeRecords[HistoryEntry](e.Records)
}

func decodeRecords[T any](records []json.RawMessage) ([]T, error) {
	out := make([]T, len(records))
	for i, rec := range records {
		if err := json.Unmarshal(rec, &out[i]); err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", i, err)
		}
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
