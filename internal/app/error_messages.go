// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the vault
// server handlers and by the client when it maps server responses back to
// errors.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of HTTP response bodies. Keeping them in one place
// ensures consistent wording on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the password does not match the
	// account.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserNotFound is returned when no account exists for the e-mail.
	MsgUserNotFound = "User not found"

	// MsgUserAlreadyExists is returned when signup uses a taken e-mail.
	MsgUserAlreadyExists = "User already exists"

	// MsgSignupSuccessful and MsgLoginSuccessful accompany issued tokens.
	MsgSignupSuccessful = "Signup successful"
	MsgLoginSuccessful  = "Login successful"

	// MsgAccessTokenRequired is returned when a protected route is called
	// without a bearer token.
	MsgAccessTokenRequired = "Access token required"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEncryptedDataRequired is returned when a create request carries no
	// ciphertext.
	MsgEncryptedDataRequired = "encrypted data is required"

	// MsgItemNotFound is returned when a delete targets an item that does not
	// exist for the current user.
	MsgItemNotFound = "Vault item not found"

	// MsgItemDeleted confirms a successful delete.
	MsgItemDeleted = "Vault item deleted"

	// MsgTooManyRequests is returned when the auth rate limit is exceeded.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Server error"
)
