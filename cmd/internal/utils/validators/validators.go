package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ISODate accepts dates in strict YYYY-MM-DD form. Controversy dates come
// from anonymous submissions, so free-form dates are rejected at the edge.
func ISODate(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// NoDupes rejects string slices containing the same value twice.
func NoDupes(fl validator.FieldLevel) bool {
	values, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
