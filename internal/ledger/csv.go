package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// Header is the CSV header for ledger.csv.
const Header = "entry_id,date,type,service,recipient,notes,amount,fees"

const (
	numFields    = 8
	dateFormat   = "2006-01-02"
	colEntryID   = 0
	colDate      = 1
	colType      = 2
	colService   = 3
	colRecipient = 4
	colNotes     = 5
	colAmount    = 6
	colFees      = 7
)

// ReadEntries reads all entries from a ledger.csv reader, in stored order.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a ledger.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing ledger.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row ([]string).
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colType] = e.Type
	row[colService] = e.Service
	row[colRecipient] = e.Recipient
	row[colNotes] = e.Notes
	row[colAmount] = e.Amount.StringFixed(2)
	if !e.Fees.IsZero() {
		row[colFees] = e.Fees.StringFixed(2)
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	fees := decimal.Zero
	if record[colFees] != "" {
		fees, err = decimal.NewFromString(record[colFees])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing fees %q: %w", record[colFees], err)
		}
	}

	return model.Entry{
		ID:        record[colEntryID],
		Date:      date,
		Type:      record[colType],
		Service:   record[colService],
		Recipient: record[colRecipient],
		Notes:     record[colNotes],
		Amount:    amount,
		Fees:      fees,
	}, nil
}
