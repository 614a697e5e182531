// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound requests before any
// business logic runs.
//
// A Validator accepts one of the request models and, optionally, the names of
// the fields to check. Without field names every field of the request is
// checked in a fixed order and the first failure is returned.
package validators

import "context"

// Validator validates input, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
