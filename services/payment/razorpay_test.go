package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewRazorpayGateway(t *testing.T) {
	gw := NewRazorpayGateway("key_test", "secret_test", int16(10))
	assert.NotNil(t, gw)
	assert.NotNil(t, gw.client)
}

func TestVerifySignature(t *testing.T) {
	gw := NewRazorpayGateway("key_test", "secret_test", 10)

	t.Run("valid signature accepted", func(t *testing.T) {
		sig := sign("secret_test", "order_1", "pay_1")
		assert.True(t, gw.VerifySignature("order_1", "pay_1", sig))
	})

	t.Run("tampered payment id rejected", func(t *testing.T) {
		sig := sign("secret_test", "order_1", "pay_1")
		assert.False(t, gw.VerifySignature("order_1", "pay_2", sig))
	})

	t.Run("signature from a different secret rejected", func(t *testing.T) {
		sig := sign("other_secret", "order_1", "pay_1")
		assert.False(t, gw.VerifySignature("order_1", "pay_1", sig))
	})

	t.Run("empty fields never verify", func(t *testing.T) {
		sig := sign("secret_test", "", "")
		assert.False(t, gw.VerifySignature("", "", sig))
		assert.False(t, gw.VerifySignature("order_1", "pay_1", ""))
		assert.False(t, gw.VerifySignature("", "pay_1", sig))
	})

	t.Run("truncated signature rejected", func(t *testing.T) {
		sig := sign("secret_test", "order_1", "pay_1")
		assert.False(t, gw.VerifySignature("order_1", "pay_1", sig[:len(sig)-2]))
	})
}
