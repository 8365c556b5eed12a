package lexorank

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. The zero LexoRank encodes
// as empty text.
func (rk LexoRank) MarshalText() ([]byte, error) {
	if rk.IsZero() {
		return []byte{}, nil
	}
	return []byte(rk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to
// the zero LexoRank.
func (rk *LexoRank) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*rk = LexoRank{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}

// MarshalJSON encodes rk as a JSON string, e.g. "0|hzzzzz". The zero
// LexoRank encodes as null.
func (rk LexoRank) MarshalJSON() ([]byte, error) {
	if rk.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(rk.String())
}

// UnmarshalJSON decodes a JSON string produced by MarshalJSON. null decodes
// to the zero LexoRank.
func (rk *LexoRank) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*rk = LexoRank{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}

// Scan implements sql.Scanner so a LexoRank can be read directly from a
// string column. A NULL column yields the zero LexoRank.
func (rk *LexoRank) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*rk = LexoRank{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("lexorank: cannot scan %T into LexoRank", src)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}

// Value implements driver.Valuer. The zero LexoRank is stored as NULL.
func (rk LexoRank) Value() (driver.Value, error) {
	if rk.IsZero() {
		return nil, nil
	}
	return rk.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(data []byte) error {
	parsed, err := NewRank(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
