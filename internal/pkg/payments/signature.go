package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifySignature checks a Razorpay payment confirmation signature.
// The signed payload is the canonical "<orderID>|<paymentID>" string,
// HMAC-SHA256 with the key secret, hex encoded. Comparison is
// constant time via hmac.Equal.
func VerifySignature(orderID, paymentID, secret, suppliedSignature string) bool {
	sig := strings.TrimSpace(suppliedSignature)
	if sig == "" || secret == "" {
		return false
	}

	decodedSig, err := hex.DecodeString(strings.ToLower(sig))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hmac.Equal(mac.Sum(nil), decodedSig)
}
