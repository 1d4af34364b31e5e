package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "top-secret"
	sig := signPayload("order_abc", "pay_xyz", secret)

	if !VerifySignature("order_abc", "pay_xyz", secret, sig) {
		t.Fatalf("expected signature to validate")
	}
	if !VerifySignature("order_abc", "pay_xyz", secret, strings.ToUpper(sig)) {
		t.Fatalf("expected uppercase hex signature to validate")
	}
	if VerifySignature("order_abc", "pay_xyz", "other-secret", sig) {
		t.Fatalf("expected signature from another secret to fail")
	}
	if VerifySignature("order_abc", "pay_other", secret, sig) {
		t.Fatalf("expected signature over another payment id to fail")
	}
	if VerifySignature("order_abc", "pay_xyz", secret, "deadbeef") {
		t.Fatalf("expected bogus signature to fail")
	}
	if VerifySignature("order_abc", "pay_xyz", secret, "not-hex") {
		t.Fatalf("expected non-hex signature to fail")
	}
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	secret := "top-secret"
	if VerifySignature("order_abc", "pay_xyz", secret, "") {
		t.Fatalf("expected empty signature to fail")
	}
	if VerifySignature("order_abc", "pay_xyz", "", signPayload("order_abc", "pay_xyz", "")) {
		t.Fatalf("expected empty secret to fail")
	}
}
