package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// TimestampLayout is the ISO-8601 form of record creation instants.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewCategorySentinel is the expense category that asks for a custom label
// to be added. It is matched without regard to case.
const NewCategorySentinel = "other"

var mutations = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAll(v)
	return v
}()

// Draft is a record as submitted by a client.
type Draft struct {
	Name     string
	Value    any
	Category string
	Date     string

	// Timestamp is carried forward when a draft replaces an existing
	// record; empty for new records.
	Timestamp string
}

type candidate struct {
	Owner string `validate:"notblank"`
	Name  string `validate:"notblank"`
	Value string `validate:"finite_nonneg"`
}

// ValidateRecord checks a draft against the record invariants and returns
// the normalized record. Nothing is written; callers only reach the store
// with a nil error.
func ValidateRecord(kind models.Kind, d Draft, owner string, now time.Time) (models.Record, error) {
	if !kind.Valid() {
		return models.Record{}, apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("unknown record kind %q", kind))
	}

	c := candidate{Owner: owner, Name: d.Name, Value: valueString(d.Value)}
	if err := mutations.Struct(c); err != nil {
		return models.Record{}, describe(err, kind)
	}

	value, _ := parseFiniteNonNegative(c.Value)

	r := models.Record{
		Kind:      kind,
		Name:      strings.TrimSpace(d.Name),
		Amount:    decimal.NewFromFloat(value),
		Category:  strings.TrimSpace(d.Category),
		Date:      strings.TrimSpace(d.Date),
		Timestamp: d.Timestamp,
	}
	if r.Category == "" {
		r.Category = kind.DefaultCategory()
	}
	if r.Date == "" {
		r.Date = now.Format(dayLayout)
	}
	if r.Timestamp == "" {
		r.Timestamp = now.UTC().Format(TimestampLayout)
	}
	return r, nil
}

// ValidateBudget checks a monthly budget value.
func ValidateBudget(value any) (decimal.Decimal, error) {
	f, ok := parseFiniteNonNegative(valueString(value))
	if !ok {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrValidation,
			"monthly budget must be a finite number greater than or equal to 0")
	}
	return decimal.NewFromFloat(f), nil
}

// ValidateCategory checks a category label and returns it trimmed.
func ValidateCategory(label string) (string, error) {
	if err := mutations.Var(label, "notblank"); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrValidation, "category must not be blank")
	}
	return strings.TrimSpace(label), nil
}

// IsNewCategorySentinel reports whether category asks for a custom label.
func IsNewCategorySentinel(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), NewCategorySentinel)
}

// valueString renders a submitted numeric value for parsing. Unsupported
// types render as something that fails to parse.
func valueString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case fmt.Stringer:
		return n.String()
	}
	return ""
}

func describe(err error, kind models.Kind) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Owner":
			msgs = append(msgs, "owner identity is required")
		case "Name":
			msgs = append(msgs, "name must not be blank")
		case "Value":
			msgs = append(msgs, kind.ValueField()+" must be a finite number greater than or equal to 0")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.WithMessage(apperrors.ErrValidation, strings.Join(msgs, "; "))
}
