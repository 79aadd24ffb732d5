// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package channel implements a named method-call channel between a host
// UI framework and native code.
//
// A call carries a method name and an optional argument map. The handler
// answers with a result value, a structured [*Error], or
// [ErrNotImplemented] for unknown methods. [Channel.Invoke] folds the three
// outcomes into an [Envelope] suitable for the transport.
//
// # Transport
//
// The package ships a JSON-lines [Decoder] and [Encoder] used by
// cmd/texdemo. Hosts with their own binary codec use [Channel.Invoke]
// directly and encode the [Envelope] themselves.
package channel
