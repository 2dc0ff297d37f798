package listing

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// presence maps each typed member a decoded record arrived with to whether
// its value was JSON null. A nil presence means the record was built in Go.
type presence map[string]bool

var jsonNull = json.RawMessage("null")

// splitObject decodes a JSON object into its members. Members whose name is
// not in known go to the returned extra map; the known ones are noted in the
// returned presence. A JSON null yields nil for both.
func splitObject(data []byte, known map[string]struct{}) (map[string]json.RawMessage, presence, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, nil, err
	}
	if members == nil {
		return nil, nil, nil
	}

	var extra map[string]json.RawMessage
	seen := make(presence, len(known))
	for name, raw := range members {
		if _, ok := known[name]; ok {
			seen[name] = bytes.Equal(bytes.TrimSpace(raw), jsonNull)
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[name] = raw
	}
	return extra, seen, nil
}

// mergeObject encodes v (which must encode as a JSON object) and adds the
// extra members. A known member always wins over an extra member of the same
// name.
//
// For a decoded record, a typed member that was absent upstream is left out
// unless it has since been set, and one that arrived as null goes back out as
// null while it still holds its zero value. zero is v's type at its zero
// value.
func mergeObject(v, zero any, seen presence, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if seen == nil && len(extra) == 0 {
		return base, nil
	}

	members, err := objectMembers(base)
	if err != nil {
		return nil, err
	}
	if seen != nil {
		zeros, err := objectMembers(mustMarshal(zero))
		if err != nil {
			return nil, err
		}
		for name, raw := range members {
			wasNull, ok := seen[name]
			unset := bytes.Equal(raw, zeros[name])
			switch {
			case !ok && unset:
				delete(members, name)
			case ok && wasNull && unset:
				members[name] = jsonNull
			}
		}
	}
	for name, raw := range extra {
		if _, ok := members[name]; !ok {
			members[name] = raw
		}
	}
	return json.Marshal(members)
}

func objectMembers(data []byte) (map[string]json.RawMessage, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("re-decoding record: %w", err)
	}
	return members, nil
}

// mustMarshal encodes the zero value of a record layout, which cannot fail.
func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("listing: encoding zero record: %v", err))
	}
	return data
}

// fieldSet builds a lookup set from field names.
func fieldSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
