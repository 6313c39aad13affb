package aggregation

import (
	"time"

	"spendwise/internal/models"
)

// AllCategories disables the category filter.
const AllCategories = "all"

// Selection is the pair of filters applied to a record list.
type Selection struct {
	Date     DateFilter `json:"date_filter"`
	Category string     `json:"category"`
}

// Matches reports whether r passes both filters. Records with unparseable
// dates pass only DateAll.
func (s Selection) Matches(r models.Record, now time.Time) bool {
	if s.Category != "" && s.Category != AllCategories && r.Category != s.Category {
		return false
	}
	if s.Date == "" || s.Date == DateAll {
		return true
	}
	day, err := ParseDay(r.Date, now.Location())
	if err != nil {
		return false
	}
	return InRange(s.Date, day, now)
}

// Filter returns the records passing sel, in their original order.
func Filter(records []models.Record, sel Selection, now time.Time) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r, now) {
			out = append(out, r)
		}
	}
	return out
}
