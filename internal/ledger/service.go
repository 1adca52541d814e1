package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/id"
	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// fileName is the ledger file inside the book directory.
const fileName = "ledger.csv"

// Service provides business logic for the payment ledger.
type Service struct {
	repoRoot string
	vocab    VocabChecker
}

// NewService creates a ledger Service.
func NewService(repoRoot string, vocab VocabChecker) *Service {
	return &Service{repoRoot: repoRoot, vocab: vocab}
}

// AddParams holds parameters for recording a payment.
type AddParams struct {
	Date      time.Time
	Type      string
	Service   string
	Recipient string
	Notes     string
	Amount    decimal.Decimal
	Fees      decimal.Decimal
}

// Add validates a payment and appends it to ledger.csv. Returns the entry ID.
func (s *Service) Add(params AddParams) (string, error) {
	entry := model.Entry{
		Date:      params.Date,
		Type:      params.Type,
		Service:   params.Service,
		Recipient: params.Recipient,
		Notes:     params.Notes,
		Amount:    params.Amount,
		Fees:      params.Fees,
	}

	if verrs := ValidateEntry(entry, s.vocab); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	seq, err := s.NextEntrySeq(params.Date.Year())
	if err != nil {
		return "", err
	}
	entry.ID = id.FormatEntryID(params.Date.Year(), seq)

	path := filepath.Join(s.repoRoot, fileName)
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []model.Entry{entry}); err != nil {
		return "", fmt.Errorf("appending entry: %w", err)
	}

	return entry.ID, nil
}

// ReadAll reads every ledger entry in stored order. A missing ledger file is
// an empty ledger, not an error.
func (s *Service) ReadAll() ([]model.Entry, error) {
	path := filepath.Join(s.repoRoot, fileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return entries, nil
}

// NextEntrySeq returns the next available sequence number for a year.
func (s *Service) NextEntrySeq(year int) (int, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range entries {
		y, seq, err := id.ParseEntryID(e.ID)
		if err != nil || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

// RunningTotals returns the cumulative total paid after each entry, in stored
// order. The ledger is never re-sorted for this, so totals stay stable when
// a backdated payment is appended.
func RunningTotals(entries []model.Entry) []decimal.Decimal {
	totals := make([]decimal.Decimal, len(entries))
	sum := decimal.Zero
	for i, e := range entries {
		sum = sum.Add(e.TotalPaid())
		totals[i] = sum
	}
	return totals
}
