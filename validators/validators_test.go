package validators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("jane.doe@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.Error(t, ValidatePassword("short"))
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, ValidateString("name", "Teapot", 1, 10))
	assert.Error(t, ValidateString("name", "", 1, 10))
	assert.Error(t, ValidateString("name", "way too long for the limit", 1, 10))
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, ValidatePrice(decimal.RequireFromString("0.01")))
	assert.Error(t, ValidatePrice(decimal.Zero))
	assert.Error(t, ValidatePrice(decimal.RequireFromString("-5")))
}

func TestValidateStock(t *testing.T) {
	assert.NoError(t, ValidateStock(0))
	assert.NoError(t, ValidateStock(42))
	assert.Error(t, ValidateStock(-1))
}
