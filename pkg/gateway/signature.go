package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature recomputes the keyed hash the gateway attaches to a
// completed payment and compares it to the provided one. The canonical
// message is "orderID|paymentID"; the expected signature is the lowercase
// hex HMAC-SHA256 of that message under the gateway secret. A mismatch is a
// normal negative outcome, not an error.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
