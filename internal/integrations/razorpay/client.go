package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ordersPath = "/v1/orders"

	// currencyINR шлюз принимает суммы в пайсах индийской рупии
	currencyINR = "INR"

	// maxReceiptLength лимит шлюза на длину поля receipt
	maxReceiptLength = 40
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза Razorpay
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     Logger
}

// NewClient создает клиент платежного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, logger Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CreateOrder создает платежный ордер на указанную сумму в пайсах
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*Order, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   amountPaise,
		Currency: currencyINR,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - marshal request: %v", ErrCreateOrder, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - build request: %v", ErrCreateOrder, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - execute request: %v", ErrCreateOrder, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var gatewayErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&gatewayErr); decodeErr == nil {
			c.logger.Warn("CreateOrder: gateway returned status %d: %s - %s",
				resp.StatusCode, gatewayErr.Error.Code, gatewayErr.Error.Description)
		}
		return nil, fmt.Errorf("%w: CreateOrder - status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - %v", ErrDecodeResponse, err)
	}

	c.logger.Info("CreateOrder: created order %s for %d paise", order.ID, amountPaise)

	return &order, nil
}

// MakeReceipt строит receipt для ордера из ID бронирования
// Шлюз ограничивает длину поля, хвост обрезается
func MakeReceipt(bookingID string) string {
	receipt := "receipt_" + bookingID
	if len(receipt) > maxReceiptLength {
		receipt = receipt[:maxReceiptLength]
	}
	return receipt
}

// Sign считает подпись пары ордер-платеж
// hex(HMAC-SHA256(secret, "order_id|payment_id")) - схема подписи callback шлюза
func (c *Client) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature проверяет подпись callback шлюза
// Сравнение через hmac.Equal, за константное время
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	expected := c.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
