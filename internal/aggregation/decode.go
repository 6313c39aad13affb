package aggregation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// DecodeRecords converts a collection snapshot into records ordered by
// timestamp, newest first. Children that are not objects are ignored;
// children whose value cannot be read keep their place in the list with
// ParseErr set.
func DecodeRecords(kind models.Kind, tree map[string]any) []models.Record {
	out := make([]models.Record, 0, len(tree))
	for id, raw := range tree {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, decodeRecord(kind, id, fields))
	}
	SortRecords(out)
	return out
}

func decodeRecord(kind models.Kind, id string, fields map[string]any) models.Record {
	r := models.Record{
		ID:        id,
		Kind:      kind,
		Name:      stringField(fields, "name"),
		Category:  stringField(fields, "category"),
		Date:      stringField(fields, "date"),
		Timestamp: stringField(fields, "timestamp"),
	}
	amount, err := DecodeNumber(fields[kind.ValueField()])
	if err != nil {
		r.ParseErr = apperrors.Wrap(apperrors.ErrParse, fmt.Errorf("%s %s: %w", kind, id, err))
		return r
	}
	r.Amount = amount
	return r
}

// DecodeNumber reads a numeric value as stored by any client: a JSON number
// or a numeric string.
func DecodeNumber(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("non-finite number %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case float32:
		return DecodeNumber(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("malformed number %q", n)
		}
		return d, nil
	case nil:
		return decimal.Zero, fmt.Errorf("missing number")
	}
	return decimal.Zero, fmt.Errorf("unsupported number type %T", v)
}

// DecodeBudget reads the budget node. ok is false when no budget has been
// set.
func DecodeBudget(tree map[string]any) (budget decimal.Decimal, ok bool, err error) {
	raw, present := tree[models.MonthlyBudgetField]
	if !present {
		return decimal.Zero, false, nil
	}
	budget, err = DecodeNumber(raw)
	if err != nil {
		return decimal.Zero, false, apperrors.Wrap(apperrors.ErrParse, fmt.Errorf("monthly budget: %w", err))
	}
	return budget, true, nil
}

// DecodeCategories returns the distinct labels stored in the categories
// node, in insertion order of their push ids.
func DecodeCategories(tree map[string]any) []string {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		label, ok := tree[k].(string)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// SortRecords orders records by timestamp descending. Equal timestamps fall
// back to id descending; unparseable timestamps go last.
func SortRecords(records []models.Record) {
	stamps := make(map[string]time.Time, len(records))
	for _, r := range records {
		if ts, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
			stamps[r.ID] = ts
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		ti, iok := stamps[records[i].ID]
		tj, jok := stamps[records[j].ID]
		switch {
		case iok && !jok:
			return true
		case !iok && jok:
			return false
		case iok && jok && !ti.Equal(tj):
			return ti.After(tj)
		}
		return records[i].ID > records[j].ID
	})
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
