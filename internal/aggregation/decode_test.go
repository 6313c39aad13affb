package aggregation

import (
	"encoding/json"
	"reflect"
	"testing"

	"spendwise/internal/models"
)

func TestDecodeRecords(t *testing.T) {
	tree := map[string]any{
		"0190a1": map[string]any{"name": "Lunch", "cost": 12.5, "category": "Food", "date": "2024-06-15", "timestamp": "2024-06-15T12:00:00.000Z"},
		"0190a2": map[string]any{"name": "Rent", "cost": "800", "category": "Rent", "date": "2024-06-01", "timestamp": "2024-06-15T13:00:00.000Z"},
		"0190a3": map[string]any{"name": "Broken", "cost": "twelve", "category": "Food", "date": "2024-06-02", "timestamp": "2024-06-14T09:00:00Z"},
		"0190a4": map[string]any{"name": "Legacy", "cost": 1, "category": "Food", "date": "2024-06-03"},
		"junk":   "not a record",
	}

	got := DecodeRecords(models.KindExpense, tree)

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	want := []string{"0190a2", "0190a1", "0190a3", "0190a4"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected order %v, got %v", want, ids)
	}

	assertDecimal(t, "800", got[0].Amount)
	assertDecimal(t, "12.5", got[1].Amount)
	if got[2].ParseErr == nil {
		t.Error("expected parse error for non-numeric cost")
	}
	assertDecimal(t, "813.5", Total(got))
}

func TestDecodeRecords_income_uses_amount_field(t *testing.T) {
	tree := map[string]any{
		"a": map[string]any{"name": "Pay", "amount": "200", "category": "Salary", "date": "2024-06-01", "timestamp": "2024-06-01T00:00:00Z"},
	}
	got := DecodeRecords(models.KindIncome, tree)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	assertDecimal(t, "200", got[0].Amount)
	if got[0].Kind != models.KindIncome {
		t.Errorf("expected income kind, got %s", got[0].Kind)
	}
}

func TestSortRecords_ties_fall_back_to_id(t *testing.T) {
	records := []models.Record{
		{ID: "a", Timestamp: "2024-06-01T00:00:00Z"},
		{ID: "c", Timestamp: "2024-06-01T00:00:00Z"},
		{ID: "b", Timestamp: "2024-06-01T00:00:00Z"},
	}
	SortRecords(records)
	if records[0].ID != "c" || records[1].ID != "b" || records[2].ID != "a" {
		t.Errorf("expected c, b, a; got %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestDecodeNumber(t *testing.T) {
	valid := map[string]any{
		"float":       12.25,
		"int":         7,
		"int64":       int64(9),
		"string":      " 3.50 ",
		"json number": json.Number("4.75"),
	}
	for name, v := range valid {
		if _, err := DecodeNumber(v); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}

	invalid := map[string]any{
		"nil":      nil,
		"word":     "abc",
		"bool":     true,
		"empty":    "",
		"object":   map[string]any{},
		"trailing": "12abc",
	}
	for name, v := range invalid {
		if _, err := DecodeNumber(v); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDecodeBudget(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		_, ok, err := DecodeBudget(map[string]any{})
		if ok || err != nil {
			t.Errorf("expected absent budget, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("present", func(t *testing.T) {
		b, ok, err := DecodeBudget(map[string]any{"monthlyBudget": 1000.0})
		if !ok || err != nil {
			t.Fatalf("expected budget, got ok=%v err=%v", ok, err)
		}
		assertDecimal(t, "1000", b)
	})

	t.Run("malformed", func(t *testing.T) {
		_, ok, err := DecodeBudget(map[string]any{"monthlyBudget": "lots"})
		if ok || err == nil {
			t.Errorf("expected parse error, got ok=%v err=%v", ok, err)
		}
	})
}

func TestDecodeCategories(t *testing.T) {
	got := DecodeCategories(map[string]any{
		"0002": "Pets",
		"0001": "Gifts",
		"0003": "Gifts",
		"0004": 42,
	})
	if !reflect.DeepEqual(got, []string{"Gifts", "Pets"}) {
		t.Errorf("expected [Gifts Pets], got %v", got)
	}
}
