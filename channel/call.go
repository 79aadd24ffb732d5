// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"errors"
	"math"
)

// ErrNotImplemented is returned by a handler for a method it does not know.
// Channel.Invoke reports it to the caller as a not-implemented envelope.
var ErrNotImplemented = errors.New("channel: method not implemented")

// MethodCall is an inbound call: a method name plus optional arguments.
type MethodCall struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Has reports whether the argument key is present.
func (c *MethodCall) Has(key string) bool {
	if c == nil || c.Arguments == nil {
		return false
	}
	_, ok := c.Arguments[key]
	return ok
}

// String returns the string argument for key.
// Returns ok=false when the key is missing or not a string.
func (c *MethodCall) String(key string) (string, bool) {
	if c == nil || c.Arguments == nil {
		return "", false
	}
	s, ok := c.Arguments[key].(string)
	return s, ok
}

// Int returns the integer argument for key.
//
// Signed and unsigned Go integers are accepted, as are float64 values
// without a fractional part (JSON numbers). Returns ok=false when the key
// is missing, has another type, or does not fit in an int.
func (c *MethodCall) Int(key string) (int, bool) {
	if c == nil || c.Arguments == nil {
		return 0, false
	}
	switch v := c.Arguments[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
