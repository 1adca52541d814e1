package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// HoldingsHeader is the CSV header for assets/holdings.csv.
const HoldingsHeader = "date,kind,account,balance"

// YearsHeader is the CSV header for years.csv.
const YearsHeader = "date,gold_price_oz,gold_owned_oz"

const (
	dateFormat = "2006-01-02"

	holdingFields = 4
	colHDate      = 0
	colHKind      = 1
	colHAccount   = 2
	colHBalance   = 3

	yearFields = 3
	colYDate   = 0
	colYGoldPx = 1
	colYGoldOz = 2
)

// ReadHoldings reads all holding rows from an assets/holdings.csv reader.
func ReadHoldings(r io.Reader) ([]model.Holding, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = holdingFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading holdings CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var holdings []model.Holding
	for i, rec := range records[1:] {
		h, err := UnmarshalHolding(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// WriteHoldings writes holding rows (including header).
func WriteHoldings(w io.Writer, holdings []model.Holding) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(HoldingsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, h := range holdings {
		if err := cw.Write(MarshalHolding(h)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalHolding converts a Holding to a CSV row.
func MarshalHolding(h model.Holding) []string {
	row := make([]string, holdingFields)
	row[colHDate] = h.Date.Format(dateFormat)
	row[colHKind] = string(h.Kind)
	row[colHAccount] = h.Account
	row[colHBalance] = h.Balance.StringFixed(2)
	return row
}

// UnmarshalHolding converts a CSV row to a Holding.
func UnmarshalHolding(record []string) (model.Holding, error) {
	if len(record) != holdingFields {
		return model.Holding{}, fmt.Errorf("expected %d fields, got %d", holdingFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colHDate])
	if err != nil {
		return model.Holding{}, fmt.Errorf("parsing date %q: %w", record[colHDate], err)
	}

	kind := model.HoldingKind(record[colHKind])
	switch kind {
	case model.KindStock, model.KindCash, model.KindDebt:
	default:
		return model.Holding{}, fmt.Errorf("unknown holding kind %q", record[colHKind])
	}

	balance, err := decimal.NewFromString(record[colHBalance])
	if err != nil {
		return model.Holding{}, fmt.Errorf("parsing balance %q: %w", record[colHBalance], err)
	}

	return model.Holding{
		Date:    date,
		Kind:    kind,
		Account: record[colHAccount],
		Balance: balance,
	}, nil
}

// ReadYears reads all year markers from a years.csv reader.
func ReadYears(r io.Reader) ([]model.YearMarker, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = yearFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading years CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var years []model.YearMarker
	for i, rec := range records[1:] {
		y, err := UnmarshalYear(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		years = append(years, y)
	}
	return years, nil
}

// WriteYears writes year markers (including header).
func WriteYears(w io.Writer, years []model.YearMarker) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(YearsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, y := range years {
		if err := cw.Write(MarshalYear(y)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalYear converts a YearMarker to a CSV row.
func MarshalYear(y model.YearMarker) []string {
	row := make([]string, yearFields)
	row[colYDate] = y.Date.Format(dateFormat)
	row[colYGoldPx] = y.GoldPriceOz.String()
	row[colYGoldOz] = y.GoldOwnedOz.String()
	return row
}

// UnmarshalYear converts a CSV row to a YearMarker.
func UnmarshalYear(record []string) (model.YearMarker, error) {
	if len(record) != yearFields {
		return model.YearMarker{}, fmt.Errorf("expected %d fields, got %d", yearFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colYDate])
	if err != nil {
		return model.YearMarker{}, fmt.Errorf("parsing date %q: %w", record[colYDate], err)
	}

	goldPx, err := decimal.NewFromString(record[colYGoldPx])
	if err != nil {
		return model.YearMarker{}, fmt.Errorf("parsing gold_price_oz %q: %w", record[colYGoldPx], err)
	}

	goldOz, err := decimal.NewFromString(record[colYGoldOz])
	if err != nil {
		return model.YearMarker{}, fmt.Errorf("parsing gold_owned_oz %q: %w", record[colYGoldOz], err)
	}

	return model.YearMarker{
		Date:        date,
		GoldPriceOz: goldPx,
		GoldOwnedOz: goldOz,
	}, nil
}
