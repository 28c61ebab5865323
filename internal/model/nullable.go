package model

import (
	"bytes"
	"encoding/json"
)

// NullableString separates an omitted JSON field from an explicit null:
// Set is false when the key was absent, Valid is false when it was null.
type NullableString struct {
	Set    bool
	Valid  bool
	String string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Valid = false
		n.String = ""
		return nil
	}
	if err := json.Unmarshal(data, &n.String); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value returns the column value: nil for null, the string otherwise.
func (n NullableString) Value() interface{} {
	if !n.Valid {
		return nil
	}
	return n.String
}
