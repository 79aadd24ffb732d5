// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyMethod is returned by Decoder when a call has no method name.
var ErrEmptyMethod = errors.New("channel: call without method")

// Decoder reads JSON-encoded method calls from a stream, one value per call.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Decode reads the next call. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode() (*MethodCall, error) {
	var call MethodCall
	if err := d.dec.Decode(&call); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("channel: decode call: %w", err)
	}
	if call.Method == "" {
		return nil, ErrEmptyMethod
	}
	return &call, nil
}

// Encoder writes envelopes as JSON lines.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes env followed by a newline.
func (e *Encoder) Encode(env Envelope) error {
	if err := e.enc.Encode(env); err != nil {
		return fmt.Errorf("channel: encode envelope: %w", err)
	}
	return nil
}
