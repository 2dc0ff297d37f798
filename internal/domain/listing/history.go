package listing

import (
	"encoding/json"
	"time"
)

// HistoryEntry is one field-level change from the upstream
// HistoryTransactional resource, keyed by (ListingKey, FieldName,
// ModificationTimestamp).
type HistoryEntry struct {
	ListingKey            string  `json:"ListingKey"`
	FieldName             string  `json:"FieldName"`
	OldValue              *string `json:"OldValue"`
	NewValue              *string `json:"NewValue"`
	ModificationTimestamp string  `json:"ModificationTimestamp"`

	// Extra holds every upstream field not named above.
	Extra map[string]json.RawMessage `json:"-"`

	seen presence
}

var historyKnownFields = fieldSet(
	"ListingKey", "FieldName", "OldValue", "NewValue", "ModificationTimestamp",
)

type historyFields HistoryEntry

// UnmarshalJSON decodes the typed fields and collects the rest into Extra.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var f historyFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	extra, seen, err := splitObject(data, historyKnownFields)
	if err != nil {
		return err
	}
	f.Extra, f.seen = extra, seen
	*h = HistoryEntry(f)
	return nil
}

// MarshalJSON encodes the typed fields together with Extra. A decoded
// HistoryEntry encodes back to the members it was decoded from.
func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	return mergeObject(historyFields(h), historyFields{}, h.seen, h.Extra)
}

// ModifiedAt parses ModificationTimestamp as RFC 3339.
func (h *HistoryEntry) ModifiedAt() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, h.ModificationTimestamp)
}
