package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of an access token. The subject carries the
// numeric user id; Email is the account identifier.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// Token is an issued or parsed access token.
type Token struct {
	// Claims holds the verified claims. Populated after signing or parsing.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed subject claim.
	UserID int64 `json:"-"`
}

// UserIDFromClaims parses the subject claim as a base-10 int64.
func UserIDFromClaims(claims TokenClaims) (int64, error) {
	if claims.Subject == "" {
		return 0, fmt.Errorf("empty token subject")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to user id: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
