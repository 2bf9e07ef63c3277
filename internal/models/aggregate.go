package models

import (
	"bytes"
	"encoding/json"
)

// AggregateResult maps document roles to their extracted text.
// Keys keep insertion order, which is the order the attachments were requested in.
type AggregateResult struct {
	keys   []string
	values map[string]string
}

// NewAggregateResult creates an empty result.
func NewAggregateResult() *AggregateResult {
	return &AggregateResult{values: make(map[string]string)}
}

// Set stores text under role. Setting an existing role replaces its text in place.
func (r *AggregateResult) Set(role, text string) {
	if _, exists := r.values[role]; !exists {
		r.keys = append(r.keys, role)
	}
	r.values[role] = text
}

// Get returns the text stored for role.
func (r *AggregateResult) Get(role string) (string, bool) {
	text, ok := r.values[role]
	return text, ok
}

// Roles returns the roles in insertion order.
func (r *AggregateResult) Roles() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of roles.
func (r *AggregateResult) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the result as a JSON object with keys in insertion order.
func (r *AggregateResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
