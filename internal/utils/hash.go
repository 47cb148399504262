package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns the result as a hex-encoded string.
//
// Used for the upload integrity header: the device signs file contents with
// its key and the shadow store verifies the signature before persisting.
//
//	signature := utils.HashString(contents, "device-key")
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

// VerifyHash reports whether signature is the hex-encoded HMAC-SHA256 of data
// under hashKey. The comparison is constant-time.
func VerifyHash(data []byte, hashKey, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(hashBytes(data, hashKey), expected)
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
