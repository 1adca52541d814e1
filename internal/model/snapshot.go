package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoldingKind classifies rows in assets/holdings.csv.
type HoldingKind string

const (
	KindStock HoldingKind = "stock"
	KindCash  HoldingKind = "cash"
	KindDebt  HoldingKind = "debt"
)

// MaxAccountsPerKind caps named sub-accounts for one kind on one date.
const MaxAccountsPerKind = 6

// Holding is a single row in assets/holdings.csv: the balance of one named
// sub-account on one zakat marker date.
type Holding struct {
	Date    time.Time
	Kind    HoldingKind
	Account string
	Balance decimal.Decimal
}

// YearMarker is a row in years.csv: one zakat year, keyed by its marker date,
// with the gold inputs entered for that date.
type YearMarker struct {
	Date        time.Time
	GoldPriceOz decimal.Decimal // spot price per troy oz
	GoldOwnedOz decimal.Decimal
}

// GoldValue returns price × ounces owned.
func (m YearMarker) GoldValue() decimal.Decimal {
	return m.GoldPriceOz.Mul(m.GoldOwnedOz)
}
