// Package settings provides membership-checked access to the three closed
// vocabularies (payment types, transfer services, recipients) stored in
// zakatbook.yaml. Ledger entries keep their string values even if a value is
// later cleared from a list; membership is only enforced at entry creation.
package settings

import (
	"fmt"
	"strings"

	"github.com/zakatbook-dev/zakatbook/internal/config"
)

// SlotLimit caps each vocabulary list.
const SlotLimit = 30

// Service provides in-memory lookup over the vocabulary lists.
type Service struct {
	cfg *config.Config
}

// NewService creates a Service over a loaded config.
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Types returns the non-blank payment types in slot order.
func (s *Service) Types() []string { return compact(s.cfg.Vocab.PaymentTypes) }

// Services returns the non-blank transfer services in slot order.
func (s *Service) Services() []string { return compact(s.cfg.Vocab.Services) }

// Recipients returns the non-blank recipients in slot order.
func (s *Service) Recipients() []string { return compact(s.cfg.Vocab.Recipients) }

// HasType reports whether name is a registered payment type.
func (s *Service) HasType(name string) bool { return contains(s.cfg.Vocab.PaymentTypes, name) }

// HasService reports whether name is a registered transfer service.
func (s *Service) HasService(name string) bool { return contains(s.cfg.Vocab.Services, name) }

// HasRecipient reports whether name is a registered recipient.
func (s *Service) HasRecipient(name string) bool { return contains(s.cfg.Vocab.Recipients, name) }

// AddType registers a new payment type.
func (s *Service) AddType(name string) error {
	return add(&s.cfg.Vocab.PaymentTypes, "payment type", name)
}

// AddService registers a new transfer service.
func (s *Service) AddService(name string) error {
	return add(&s.cfg.Vocab.Services, "service", name)
}

// AddRecipient registers a new recipient.
func (s *Service) AddRecipient(name string) error {
	return add(&s.cfg.Vocab.Recipients, "recipient", name)
}

func add(list *[]string, what, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s name must not be blank", what)
	}
	if contains(*list, name) {
		return fmt.Errorf("%s %q already exists", what, name)
	}
	if len(compact(*list)) >= SlotLimit {
		return fmt.Errorf("%s list is full (%d slots)", what, SlotLimit)
	}
	*list = append(*list, name)
	return nil
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v != "" && v == name {
			return true
		}
	}
	return false
}

func compact(list []string) []string {
	var out []string
	for _, v := range list {
		if v == "" {
			continue
		}
		out = append(out, v)
		if len(out) == SlotLimit {
			break
		}
	}
	return out
}
