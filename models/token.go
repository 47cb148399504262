package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a device JWT with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// DeviceID is a cached copy of the "sub" (subject) claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// DeviceID is the device identifier extracted from the "sub" claim.
	DeviceID string `json:"-"`
}

// GetDeviceID extracts the device identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetDeviceID() (string, error) {
	deviceID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting DeviceID from token: %w", err)
	}
	if deviceID == "" {
		return "", fmt.Errorf("error extracting DeviceID from token: empty subject")
	}

	return deviceID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
