package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateString(field, val string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(val)
	if length < minLen || length > maxLen {
		return fmt.Errorf("%s must be between %d and %d characters", field, minLen, maxLen)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func ValidatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("price must be greater than zero")
	}
	return nil
}

func ValidateStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock_quantity cannot be negative")
	}
	return nil
}
