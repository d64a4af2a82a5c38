package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidAmount = errors.New("amount must be a non-negative value with at most two decimal places")
	ErrInvalidDate   = errors.New("date must be a valid calendar date in YYYY-MM-DD format")
)

// ParseAmount parses a decimal currency string ("100", "100.5",
// "100.00") into integer cents. Negative values are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" || strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return 0, ErrInvalidAmount
	}

	whole := amount
	frac := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole, frac = amount[:i], amount[i+1:]
		if frac == "" {
			return 0, ErrInvalidAmount
		}
	}

	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// Reject amounts whose cent value would not fit in int64; without
	// this the multiplication below wraps silently.
	if units > (math.MaxInt64-99)/100 {
		return 0, ErrInvalidAmount
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return units*100 + cents, nil
}

// ValidateDate checks that date is a real calendar date in YYYY-MM-DD
// form and returns it normalized.
func ValidateDate(date string) (string, error) {
	date = strings.TrimSpace(date)

	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", ErrInvalidDate
	}

	return t.Format("2006-01-02"), nil
}
