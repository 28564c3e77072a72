package types

import (
	"fmt"
	"math"
	"time"
)

type DonationType string

const (
	DonationTypeOneTime   DonationType = "one-time"
	DonationTypeRecurring DonationType = "recurring"
)

func ParseDonationType(s string) (DonationType, error) {
	switch DonationType(s) {
	case DonationTypeOneTime, DonationTypeRecurring:
		return DonationType(s), nil
	}
	return "", fmt.Errorf("unknown donation type %q", s)
}

// Donation records an intent to give. No money moves through the system.
type Donation struct {
	ID           string       `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	AmountCents  int64        `db:"amount_cents" json:"-"`
	Amount       float64      `db:"-" json:"amount"`
	DonationType DonationType `db:"donation_type" json:"donation_type"`
	Message      *string      `db:"message" json:"message"`
	Timestamp    time.Time    `db:"created_at" json:"timestamp"`
}

type DonationCreate struct {
	Name         string       `json:"name" validate:"notblank"`
	Email        string       `json:"email" validate:"notblank"`
	Amount       float64      `json:"amount" validate:"donationamount"`
	DonationType DonationType `json:"donation_type" validate:"oneof=one-time recurring"`
	Message      *string      `json:"message"`
}

// Donation amounts are whole cents between one cent and a million dollars.
const (
	MinDonationAmount = 0.01
	MaxDonationAmount = 1_000_000
)

// ValidDonationAmount reports whether amount converts to a positive cent value
// that the store can hold.
func ValidDonationAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= MinDonationAmount && amount <= MaxDonationAmount
}

func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
