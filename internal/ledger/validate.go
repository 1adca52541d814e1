package ledger

import (
	"fmt"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

// ValidationCode classifies entry validation failures.
type ValidationCode string

const (
	CodeNegativeAmount    ValidationCode = "negative-amount"
	CodeUnknownVocabulary ValidationCode = "unknown-vocabulary"
)

// ValidationError describes a single rejected field on a candidate entry.
type ValidationError struct {
	Code        ValidationCode
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Code, e.Field, e.Description)
}

// VocabChecker tests membership in the settings vocabularies.
type VocabChecker interface {
	HasType(name string) bool
	HasService(name string) bool
	HasRecipient(name string) bool
}

// ValidateEntry enforces the entry-creation rules: amounts non-negative,
// type/recipient drawn from the vocabularies, service from the vocabulary or
// blank. An empty result means the entry is acceptable. Validation happens
// only here, at the boundary; already-stored entries are never re-checked.
func ValidateEntry(e model.Entry, vocab VocabChecker) []ValidationError {
	var errs []ValidationError

	if e.Amount.IsNegative() {
		errs = append(errs, ValidationError{
			Code:        CodeNegativeAmount,
			Field:       "amount",
			Description: fmt.Sprintf("amount %s must be 0 or greater", e.Amount.StringFixed(2)),
		})
	}
	if e.Fees.IsNegative() {
		errs = append(errs, ValidationError{
			Code:        CodeNegativeAmount,
			Field:       "fees",
			Description: fmt.Sprintf("fees %s must be 0 or greater", e.Fees.StringFixed(2)),
		})
	}

	if !vocab.HasType(e.Type) {
		errs = append(errs, ValidationError{
			Code:        CodeUnknownVocabulary,
			Field:       "type",
			Description: fmt.Sprintf("unknown payment type %q", e.Type),
		})
	}
	// Service is the one vocabulary field that may be blank.
	if e.Service != "" && !vocab.HasService(e.Service) {
		errs = append(errs, ValidationError{
			Code:        CodeUnknownVocabulary,
			Field:       "service",
			Description: fmt.Sprintf("unknown service %q", e.Service),
		})
	}
	if !vocab.HasRecipient(e.Recipient) {
		errs = append(errs, ValidationError{
			Code:        CodeUnknownVocabulary,
			Field:       "recipient",
			Description: fmt.Sprintf("unknown recipient %q", e.Recipient),
		})
	}

	return errs
}
