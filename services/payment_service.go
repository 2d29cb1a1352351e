// services/payment_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"stayfinder-backend/utils"
)

// PaymentDetails is the card form. Values are checked for presence only and
// discarded immediately after; nothing is stored or forwarded.
type PaymentDetails struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
}

// Receipt acknowledges a settled (simulated) payment.
type Receipt struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

// PaymentService simulates a payment gateway: it validates that the card
// fields are present, sleeps for a fixed processing delay, and settles.
// There is no real gateway behind it.
type PaymentService struct {
	Delay time.Duration
}

// NewPaymentService reads PAYMENT_DELAY_MS, defaulting to the 2s the
// checkout UI was built around.
func NewPaymentService() *PaymentService {
	delay := 2 * time.Second
	if raw := utils.EnvOrDefault("PAYMENT_DELAY_MS", ""); raw != "" {
		if d, err := time.ParseDuration(raw + "ms"); err == nil && d >= 0 {
			delay = d
		}
	}
	return &PaymentService{Delay: delay}
}

// Process runs the mock charge. Missing fields fail validation before the
// simulated delay; a successful charge returns a receipt with a fresh id.
func (p *PaymentService) Process(details PaymentDetails, amount float64) (*Receipt, error) {
	if strings.TrimSpace(details.CardholderName) == "" ||
		strings.TrimSpace(details.CardNumber) == "" ||
		strings.TrimSpace(details.ExpiryDate) == "" ||
		strings.TrimSpace(details.CVV) == "" {
		return nil, fmt.Errorf("validation: all payment fields are required")
	}

	time.Sleep(p.Delay)

	return &Receipt{
		ID:     utils.GenerateReceiptID(),
		Amount: amount,
		PaidAt: time.Now().UTC(),
	}, nil
}
