package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateReferenceCode builds a short human-readable booking reference such
// as "SF-4F9A2C1B". Uniqueness is enforced by the DB index; on the rare
// collision the caller retries with a fresh code.
func GenerateReferenceCode() string {
	id := uuid.New()
	return fmt.Sprintf("SF-%s", strings.ToUpper(id.String()[:8]))
}

// GenerateReceiptID identifies a simulated payment.
func GenerateReceiptID() string {
	return uuid.NewString()
}
