package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single row in ledger.csv — one payment made.
type Entry struct {
	ID        string // "YYYY-NNN"
	Date      time.Time
	Type      string // payment type, must exist in settings
	Service   string // transfer service, may be empty
	Recipient string // must exist in settings
	Notes     string
	Amount    decimal.Decimal
	Fees      decimal.Decimal
}

// TotalPaid returns amount + fees.
func (e Entry) TotalPaid() decimal.Decimal {
	return e.Amount.Add(e.Fees)
}
