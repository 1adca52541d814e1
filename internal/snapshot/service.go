package snapshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

const (
	assetsDir    = "assets"
	holdingsFile = "assets/holdings.csv"
	yearsFile    = "years.csv"
)

// Service provides access to the per-date asset holdings and the zakat year
// markers of a book directory.
type Service struct {
	repoRoot string
	holdings []model.Holding
	years    []model.YearMarker
}

// Load reads holdings.csv and years.csv from a book directory. Missing files
// mean an empty store.
func Load(repoRoot string) (*Service, error) {
	s := &Service{repoRoot: repoRoot}

	holdings, err := readFile(filepath.Join(repoRoot, holdingsFile), ReadHoldings)
	if err != nil {
		return nil, err
	}
	s.holdings = holdings

	years, err := readFile(filepath.Join(repoRoot, yearsFile), ReadYears)
	if err != nil {
		return nil, err
	}
	s.years = years

	return s, nil
}

func readFile[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// Holdings returns all holding rows in stored order.
func (s *Service) Holdings() []model.Holding {
	return s.holdings
}

// Years returns all year markers in stored order.
func (s *Service) Years() []model.YearMarker {
	return s.years
}

// SetHolding records the balance of one sub-account on one marker date,
// replacing an existing row for the same (date, kind, account). At most
// model.MaxAccountsPerKind named accounts may exist per kind and date.
func (s *Service) SetHolding(h model.Holding) error {
	if h.Account == "" {
		return fmt.Errorf("account name must not be blank")
	}
	switch h.Kind {
	case model.KindStock, model.KindCash, model.KindDebt:
	default:
		return fmt.Errorf("unknown holding kind %q", h.Kind)
	}
	if h.Balance.IsNegative() {
		return fmt.Errorf("balance %s must be 0 or greater", h.Balance.StringFixed(2))
	}

	replaced := false
	others := 0
	for i, existing := range s.holdings {
		if !existing.Date.Equal(h.Date) || existing.Kind != h.Kind {
			continue
		}
		if existing.Account == h.Account {
			if !replaced {
				s.holdings[i] = h
				replaced = true
			}
			continue
		}
		others++
	}

	if !replaced {
		if others >= model.MaxAccountsPerKind {
			return fmt.Errorf("at most %d %s accounts per date", model.MaxAccountsPerKind, h.Kind)
		}
		s.holdings = append(s.holdings, h)
	}

	return s.saveHoldings()
}

// AddYear appends a zakat year marker. Gold inputs must be non-negative.
// A duplicate marker date is a data-quality problem, not an error: the row is
// still recorded and the caller gets duplicate=true to surface a warning.
func (s *Service) AddYear(m model.YearMarker) (duplicate bool, err error) {
	if m.GoldPriceOz.IsNegative() {
		return false, fmt.Errorf("gold price %s must be 0 or greater", m.GoldPriceOz)
	}
	if m.GoldOwnedOz.IsNegative() {
		return false, fmt.Errorf("gold ounces %s must be 0 or greater", m.GoldOwnedOz)
	}

	for _, existing := range s.years {
		if existing.Date.Equal(m.Date) {
			duplicate = true
			break
		}
	}

	s.years = append(s.years, m)
	if err := s.saveYears(); err != nil {
		return duplicate, err
	}
	return duplicate, nil
}

func (s *Service) saveHoldings() error {
	dir := filepath.Join(s.repoRoot, assetsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating assets dir: %w", err)
	}

	f, err := os.Create(filepath.Join(s.repoRoot, holdingsFile))
	if err != nil {
		return fmt.Errorf("creating holdings file: %w", err)
	}
	defer f.Close()

	if err := WriteHoldings(f, s.holdings); err != nil {
		return fmt.Errorf("writing holdings: %w", err)
	}
	return nil
}

func (s *Service) saveYears() error {
	f, err := os.Create(filepath.Join(s.repoRoot, yearsFile))
	if err != nil {
		return fmt.Errorf("creating years file: %w", err)
	}
	defer f.Close()

	if err := WriteYears(f, s.years); err != nil {
		return fmt.Errorf("writing years: %w", err)
	}
	return nil
}
