// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"context"
	"errors"
	"sync"
)

// CodeInternal is the error code for handler failures that are not a
// structured *Error.
const CodeInternal = "INTERNAL"

// Handler answers method calls.
//
// A handler returns the result value on success, a *Error for a
// structured failure, or ErrNotImplemented for unknown methods.
type Handler interface {
	HandleMethodCall(ctx context.Context, call *MethodCall) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, call *MethodCall) (any, error)

// HandleMethodCall calls f(ctx, call).
func (f HandlerFunc) HandleMethodCall(ctx context.Context, call *MethodCall) (any, error) {
	return f(ctx, call)
}

// Envelope is the outcome of one call as seen by the caller.
// Exactly one of Result, Error, NotImplemented is meaningful.
type Envelope struct {
	Result         any    `json:"result"`
	Error          *Error `json:"error,omitempty"`
	NotImplemented bool   `json:"notImplemented,omitempty"`
}

// Channel routes calls on a named channel to its handler.
//
// Channel is safe for concurrent use. Calls are delivered to the handler
// one at a time, in the order Invoke acquires the channel.
type Channel struct {
	name string

	mu      sync.Mutex
	handler Handler
}

// New creates a channel with the given name and no handler.
func New(name string) *Channel {
	return &Channel{name: name}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// SetMethodCallHandler installs h as the channel handler.
// Passing nil removes the handler.
func (c *Channel) SetMethodCallHandler(h Handler) {
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// Invoke delivers call to the handler and folds its answer into an
// Envelope. A channel without a handler answers not implemented.
func (c *Channel) Invoke(ctx context.Context, call *MethodCall) Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handler == nil || call == nil {
		return Envelope{NotImplemented: true}
	}

	result, err := c.handler.HandleMethodCall(ctx, call)
	if err == nil {
		return Envelope{Result: result}
	}
	if errors.Is(err, ErrNotImplemented) {
		return Envelope{NotImplemented: true}
	}
	var callErr *Error
	if errors.As(err, &callErr) {
		return Envelope{Error: callErr}
	}
	return Envelope{Error: &Error{Code: CodeInternal, Message: err.Error()}}
}
