package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single key/value pair inside a Fields object.
type Field struct {
	Key   string
	Value any
}

// Fields is a JSON object whose key order is significant. It is used
// wherever insertion order is part of the output contract: indicator
// sub-schemas, the canonical documents map and the flat rendered result.
type Fields []Field

// Get returns the value bound to key and whether the key is present.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (f Fields) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for _, field := range f {
		keys = append(keys, field.Key)
	}
	return keys
}

// MarshalJSON renders the pairs as a JSON object in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := encodeJSON(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FeeEntry is a single fee category and its amount.
type FeeEntry struct {
	Name   string
	Amount float64
}

// FeeMap is a fee-category → amount mapping that preserves the key order
// of the JSON object it was decoded from. Plain maps would drop that
// order, and the renderer emits fees in their original order.
type FeeMap []FeeEntry

// Get returns the amount for a fee category and whether it is present.
func (m FeeMap) Get(name string) (float64, bool) {
	for _, entry := range m {
		if entry.Name == name {
			return entry.Amount, true
		}
	}
	return 0, false
}

// MarshalJSON renders the entries as a JSON object in insertion order.
func (m FeeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		amount, err := encodeJSON(entry.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(amount)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object token by token so the original key
// order survives the round trip.
func (m *FeeMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("honorarios: expected JSON object, got %v", tok)
	}

	entries := make(FeeMap, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("honorarios: expected string key, got %v", keyTok)
		}
		var amount float64
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("honorarios: invalid amount for %q: %w", key, err)
		}
		entries = append(entries, FeeEntry{Name: key, Amount: amount})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = entries
	return nil
}

// encodeJSON marshals v without HTML escaping, which encoding/json applies
// by default and would corrupt free-text court content.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
