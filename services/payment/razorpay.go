package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

// Gateway abstracts the payment provider: opening a provisional order
// and authenticating the confirmation callback. The provider is trusted
// for timely notification only; correctness is established locally by
// the signature check.
type Gateway interface {
	// CreateOrder opens a provisional order for amountPaise (smallest
	// currency unit) and returns the provider's order id.
	CreateOrder(amountPaise int64, currency, receipt string) (string, error)

	// VerifySignature checks the callback signature against an HMAC
	// recomputed over "orderID|paymentID". Empty inputs never verify.
	VerifySignature(orderID, paymentID, signature string) bool
}

// RazorpayGateway implements Gateway using the Razorpay SDK.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayGateway creates a Gateway backed by Razorpay. The request
// timeout bounds the order-creation call so a stalled provider cannot
// hold a booking request open indefinitely.
func NewRazorpayGateway(keyID, keySecret string, timeoutSeconds int16) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(timeoutSeconds)
	return &RazorpayGateway{
		client:    client,
		keySecret: keySecret,
	}
}

// CreateOrder opens a Razorpay order and returns its id.
func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create failed: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order create returned no id")
	}
	return orderID, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// with the key secret and compares in constant time. Missing fields are
// rejected rather than defaulting to a match.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
