package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both authentication endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// CreateItemRequest is the body of POST /api/vault/items.
// Only ciphertext is accepted.
type CreateItemRequest struct {
	EncryptedData EncryptedBlob `json:"encryptedData"`
}

// MessageResponse carries a human-readable status or error message.
type MessageResponse struct {
	Message string `json:"message"`
}
