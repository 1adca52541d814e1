package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RemitlyParser parses Remitly transfer history CSV exports.
type RemitlyParser struct{}

const (
	remitlyDateFormat   = "01/02/2006"
	remitlyNumFields    = 6
	remitlyColDate      = 0
	remitlyColRecipient = 1
	remitlyColAmount    = 2
	remitlyColFee       = 3
	remitlyColStatus    = 5
)

// Format returns the parser name.
func (p *RemitlyParser) Format() string { return "remitly" }

// Parse reads a Remitly history CSV and returns Payments. Cancelled
// transfers are skipped.
func (p *RemitlyParser) Parse(r io.Reader) ([]Payment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = remitlyNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading remitly CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var payments []Payment
	for i, rec := range records[1:] {
		if strings.EqualFold(rec[remitlyColStatus], "Cancelled") {
			continue
		}
		pay, err := parseRemitlyRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		payments = append(payments, pay)
	}
	return payments, nil
}

func parseRemitlyRow(rec []string) (Payment, error) {
	date, err := time.Parse(remitlyDateFormat, rec[remitlyColDate])
	if err != nil {
		return Payment{}, fmt.Errorf("parsing date %q: %w", rec[remitlyColDate], err)
	}

	amount, err := parseMoney(rec[remitlyColAmount])
	if err != nil {
		return Payment{}, fmt.Errorf("parsing amount %q: %w", rec[remitlyColAmount], err)
	}

	fee, err := parseMoney(rec[remitlyColFee])
	if err != nil {
		return Payment{}, fmt.Errorf("parsing fee %q: %w", rec[remitlyColFee], err)
	}

	return Payment{
		Date:      date,
		Recipient: rec[remitlyColRecipient],
		Amount:    amount,
		Fees:      fee,
		Service:   "Remitly",
		Notes:     fmt.Sprintf("imported remitly transfer %s", date.Format("20060102")),
	}, nil
}

// parseMoney handles export amounts like "$1,250.00".
func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
