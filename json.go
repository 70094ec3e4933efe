package objectid

import "encoding/json"

// MarshalText encodes the ObjectID as canonical lowercase hex. It makes
// ObjectID usable as a JSON string and as a map key.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.ToHex()), nil
}

// UnmarshalText decodes a canonical-form hex string.
func (id *ObjectID) UnmarshalText(text []byte) error {
	decoded, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

// MarshalJSON encodes the ID as a hex string, or null when invalid.
func (n NullObjectID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.ID.ToHex())
}

// UnmarshalJSON decodes either null or a canonical-form hex string.
func (n *NullObjectID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullObjectID{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, err := FromHex(s)
	if err != nil {
		return err
	}
	*n = NullObjectID{ID: id, Valid: true}
	return nil
}
