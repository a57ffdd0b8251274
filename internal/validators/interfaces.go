// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies before they reach the
// service layer.
//
// Handlers hold a Validator and call Validate right after decoding. A failed
// check yields a *ValidationError carrying one human-readable message per
// violated field, which the transport layer turns into a 400 response.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
