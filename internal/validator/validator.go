// Package validator holds the custom validations shared by Gin's binding
// engine and the mutation validator that gates every write to the record
// store.
package validator

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dayLayout = "2006-01-02"

var dateFilters = map[string]bool{
	"all": true, "today": true, "thisWeek": true, "thisMonth": true, "thisYear": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("finite_nonneg", validateFiniteNonNegative)
	_ = v.RegisterValidation("record_date", validateRecordDate)
	_ = v.RegisterValidation("date_filter", validateDateFilter)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateFiniteNonNegative(fl validator.FieldLevel) bool {
	_, ok := parseFiniteNonNegative(fl.Field().String())
	return ok
}

// validateRecordDate accepts an empty date (defaulted later) or YYYY-MM-DD.
func validateRecordDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := time.Parse(dayLayout, s)
	return err == nil
}

func validateDateFilter(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || dateFilters[s]
}

func parseFiniteNonNegative(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}
