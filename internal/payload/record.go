// Package payload reads loosely shaped JSON documents returned by the metrics
// API. Every accessor tolerates missing or mistyped fields.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Record is a decoded JSON object. A nil Record behaves like an empty object.
type Record map[string]any

// Decode parses data as JSON. Valid documents that are not objects decode to
// a nil Record rather than an error.
func Decode(data []byte) (Record, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode payload: trailing data after JSON value")
	}
	rec, _ := AsRecord(doc)
	return rec, nil
}

func AsRecord(v any) (Record, bool) {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return nil, false
	}
	return Record(obj), true
}

// Number returns the first field among keys holding a finite number.
func (r Record) Number(keys ...string) (float64, bool) {
	for _, key := range keys {
		if n, ok := r[key].(float64); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return n, true
		}
	}
	return 0, false
}

// Label returns the first field among keys holding a string with visible
// characters. The string is returned as sent.
func (r Record) Label(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := r[key].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Records returns the object entries of the array stored under key, in
// order. The boolean reports whether key holds an array at all.
func (r Record) Records(key string) ([]Record, bool) {
	list, ok := r[key].([]any)
	if !ok {
		return nil, false
	}

	out := make([]Record, 0, len(list))
	for _, item := range list {
		if rec, ok := AsRecord(item); ok {
			out = append(out, rec)
		}
	}
	return out, true
}
