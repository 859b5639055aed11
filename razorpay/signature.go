package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const SignatureHeader = "X-Razorpay-Signature"

// Sign returns the hex HMAC-SHA256 of body under secret, the value Razorpay
// puts in the signature header.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks signature against the exact raw request body.
func VerifySignature(body []byte, signature string, secret string) error {
	if secret == "" {
		return NewNotConfiguredError("Webhook secret is not set")
	}
	if signature == "" {
		return NewInvalidSignatureError("Missing webhook signature")
	}

	expected := Sign(body, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return NewInvalidSignatureError("Webhook signature does not match")
	}

	return nil
}
