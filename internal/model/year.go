package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the derived payment state of one zakat year.
type PaymentStatus string

const (
	StatusNotStarted    PaymentStatus = "not-started"
	StatusPartiallyPaid PaymentStatus = "partially-paid"
	StatusPaidInFull    PaymentStatus = "paid-in-full"
)

// HawlState is the live state of the hawl countdown.
type HawlState string

const (
	HawlDueNow     HawlState = "due-now"
	HawlDueSoon    HawlState = "due-soon"
	HawlInProgress HawlState = "in-progress"
)

// ZakatYearRecord is one fully derived zakat year. All monetary fields keep
// full precision; rounding happens only at display.
type ZakatYearRecord struct {
	Date        time.Time
	Stocks      decimal.Decimal
	Cash        decimal.Decimal
	Debts       decimal.Decimal
	GoldPriceOz decimal.Decimal
	GoldOwnedOz decimal.Decimal
	GoldValue   decimal.Decimal
	NetAssets   decimal.Decimal // stocks + cash + gold − debts, may be negative
	Nisab       decimal.Decimal // gold price × gold nisab oz
	ZakatDue    decimal.Decimal // 2.5% of net if net ≥ nisab, else 0
	Brought     decimal.Decimal // prior year's running balance
	TotalOwed   decimal.Decimal // due + brought forward
	Paid        decimal.Decimal // zakat-type payments in this year's period
	Balance     decimal.Decimal // max(0, owed − paid); overpayment is discarded
	Status      PaymentStatus
}
