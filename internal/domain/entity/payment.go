package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how money was received at the desk.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCard       PaymentMethod = "Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "Net Banking"
	PaymentMethodCheque     PaymentMethod = "Cheque"
	PaymentMethodOther      PaymentMethod = "Other"
)

// ParsePaymentMethod normalises free text ("upi", "net banking") to a PaymentMethod.
// Blank input defaults to cash; anything unrecognised is Other.
func ParsePaymentMethod(s string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cash":
		return PaymentMethodCash
	case "card":
		return PaymentMethodCard
	case "upi":
		return PaymentMethodUPI
	case "net banking", "netbanking", "bank transfer":
		return PaymentMethodNetBanking
	case "cheque", "check":
		return PaymentMethodCheque
	default:
		return PaymentMethodOther
	}
}

// Payment is one receipt in the member's payment log.
type Payment struct {
	ReceiptNumber     string        `json:"receiptNumber"`
	PackageInstanceID uuid.UUID     `json:"packageInstanceId"`
	PackageName       string        `json:"packageName"`
	Amount            float64       `json:"amount"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	TransactionID     string        `json:"transactionId,omitempty"`
	PaidAt            time.Time     `json:"paidAt"`
	Notes             string        `json:"notes,omitempty"`
	RecordedBy        uuid.UUID     `json:"recordedBy"`
}
