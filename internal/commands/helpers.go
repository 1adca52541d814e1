package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zakatbook-dev/zakatbook/internal/auditlog"
	"github.com/zakatbook-dev/zakatbook/internal/config"
	"github.com/zakatbook-dev/zakatbook/internal/gitops"
	"github.com/zakatbook-dev/zakatbook/internal/settings"
)

// configFile is the book configuration file at the repository root.
const configFile = "zakatbook.yaml"

const dateFormat = "2006-01-02"

// book bundles the loaded configuration with the directory it came from.
type book struct {
	dir      string
	cfg      *config.Config
	settings *settings.Service
}

func openBook(repo string) (*book, error) {
	absDir, err := filepath.Abs(repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("opening book at %s: %w", absDir, err)
	}
	return &book{dir: absDir, cfg: cfg, settings: settings.NewService(cfg)}, nil
}

func (b *book) saveConfig() error {
	return config.Save(filepath.Join(b.dir, configFile), b.cfg)
}

// recordAction commits the pending data change when auto-commit is on, then
// appends an audit row carrying the commit hash. The audit row itself rides
// along with the next commit.
func (b *book) recordAction(action, details, ref string) error {
	hash := ""
	if b.cfg.Git.AutoCommit && gitops.IsRepo(b.dir) {
		h, err := gitops.CommitAll(b.dir, action+": "+details, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing %s: %w", action, err)
		}
		hash = h
	}
	return auditlog.Append(b.dir, []auditlog.Entry{{
		Timestamp:  time.Now().UTC(),
		Action:     action,
		Details:    details,
		Ref:        ref,
		CommitHash: hash,
	}})
}

// parseDate parses a YYYY-MM-DD flag value; empty means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s %q: %w", name, s, err)
	}
	return d, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
