// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plaintext vault items on the client and account
// and ciphertext requests on the server before they reach storage.
//
// Validation failures are joined with errors.Join, so one call reports every
// missing field at once; callers wrap the result in their own sentinel
// (service.ErrInvalidItem, service.ErrInvalidDataProvided).
package validators

import "context"

// Validator validates obj. When fields are given only those fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
