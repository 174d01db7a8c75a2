// Package http implements the REST transport of the vault server.
//
// It wires the chi router, the request handlers for authentication and
// encrypted vault records, and the middleware around them: panic recovery,
// trace ids, access logging, per-IP rate limiting of the auth endpoints and
// bearer-token authentication. Handlers only decode, delegate to the service
// layer and map errors to status codes; ciphertext is passed through
// untouched.
package http
