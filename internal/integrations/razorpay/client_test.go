package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestSign_KnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		orderID   string
		paymentID string
		expected  string
	}{
		{
			name:      "basic pair",
			secret:    "s3cr3t",
			orderID:   "order_1",
			paymentID: "pay_1",
			expected:  "c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f",
		},
		{
			name:      "gateway style ids",
			secret:    "test_secret",
			orderID:   "order_ABC123",
			paymentID: "pay_XYZ789",
			expected:  "85cbc6036124891c4d0280fbb7cd83804f87a66f2eb485a89af574086f592cbc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("https://api.razorpay.com", "key", tt.secret, time.Second, nopLogger{})
			assert.Equal(t, tt.expected, client.Sign(tt.orderID, tt.paymentID))
		})
	}
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("https://api.razorpay.com", "key", "s3cr3t", time.Second, nopLogger{})

	assert.True(t, client.VerifySignature("order_1", "pay_1",
		"c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"))
	assert.False(t, client.VerifySignature("order_1", "pay_1", "deadbeef"))
	assert.False(t, client.VerifySignature("order_1", "pay_2",
		"c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"))
	assert.False(t, client.VerifySignature("order_1", "pay_1", ""))
}

func TestMakeReceipt(t *testing.T) {
	assert.Equal(t, "receipt_abc", MakeReceipt("abc"))

	// Лимит шлюза на длину receipt
	long := MakeReceipt("0123456789012345678901234567890123456789")
	assert.Len(t, long, 40)
	assert.True(t, strings.HasPrefix(long, "receipt_"))
}

func TestCreateOrder_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key_1", user)
		assert.Equal(t, "s3cr3t", pass)

		var req createOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(500000), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "receipt_booking-1", req.Receipt)

		json.NewEncoder(w).Encode(Order{
			ID:       "order_1",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_1", "s3cr3t", time.Second, nopLogger{})

	order, err := client.CreateOrder(context.Background(), 500000, "receipt_booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(500000), order.Amount)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount must be at least 100",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_1", "s3cr3t", time.Second, nopLogger{})

	order, err := client.CreateOrder(context.Background(), 1, "receipt_x")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
