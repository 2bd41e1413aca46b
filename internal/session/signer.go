// Package session issues and tracks the short-lived tokens that authorize
// widget API calls. Token requests are authenticated by an HMAC signature
// over the client payload; issued tokens are JWTs whose ids are kept in a
// revocable store for the lifetime of the token.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadSignature is returned when the request signature does not verify.
	ErrBadSignature = errors.New("session: signature mismatch")
	// ErrStaleTimestamp is returned when the signed timestamp is outside the skew window.
	ErrStaleTimestamp = errors.New("session: timestamp outside allowed skew")
)

// Payload is the client-generated portion of a token request.
type Payload struct {
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Origin    string `json:"origin"`
}

// Sign computes the request signature for a payload under the tenant secret.
func Sign(secret string, p Payload) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d|%s", p.Timestamp, p.Origin)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature and rejects timestamps further than
// maxSkew from now in either direction.
func VerifySignature(secret, signature string, p Payload, now time.Time, maxSkew time.Duration) error {
	issued := time.UnixMilli(p.Timestamp)
	skew := now.Sub(issued)
	if skew < 0 {
		skew = -skew
	}
	if skew > maxSkew {
		return ErrStaleTimestamp
	}

	expected := Sign(secret, p)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}
