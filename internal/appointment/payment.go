package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment validation errors.
var (
	ErrCardDeclined = errors.New("appointment: card declined")
	ErrCardExpired  = errors.New("appointment: card expired")
)

// Card holds the payment details collected at booking time.
type Card struct {
	Number   string
	ExpMonth int
	ExpYear  int
}

// ChargeResult is the outcome of a processed payment.
type ChargeResult struct {
	Reference   string
	AmountCents int64
}

// ProcessPayment simulates a card charge. The card number is validated with
// the Luhn checksum and the expiry checked against the clock; a valid card
// always succeeds with a generated payment reference. No external payment
// provider is contacted.
func ProcessPayment(card Card, amountCents int64, now time.Time) (ChargeResult, error) {
	number := strings.ReplaceAll(strings.ReplaceAll(card.Number, " ", ""), "-", "")
	if !luhnValid(number) {
		return ChargeResult{}, ErrCardDeclined
	}

	expiry := time.Date(card.ExpYear, time.Month(card.ExpMonth)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(expiry) {
		return ChargeResult{}, ErrCardExpired
	}

	return ChargeResult{
		Reference:   fmt.Sprintf("PAY-%s", strings.ToUpper(uuid.NewString()[:8])),
		AmountCents: amountCents,
	}, nil
}

func luhnValid(number string) bool {
	if len(number) < 12 {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
