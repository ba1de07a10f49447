// Package jsonutil provides shared helpers for decoding JSON documents with
// contextual error messages.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UnmarshalStrict unmarshals JSON data into v, rejecting unknown fields
// and trailing data after the first value. Errors are prefixed with context.
func UnmarshalStrict(data []byte, v any, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: trailing data after JSON value", context)
	}
	return nil
}
