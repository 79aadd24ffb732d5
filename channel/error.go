// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import "fmt"

// Error is a structured error reported back across the channel.
type Error struct {
	// Code is a stable, machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message,omitempty"`

	// Details carries optional extra data.
	Details any `json:"details,omitempty"`
}

// NewError creates a structured error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "channel: " + e.Code
	}
	return fmt.Sprintf("channel: %s: %s", e.Code, e.Message)
}
