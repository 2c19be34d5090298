package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day returns midnight UTC of the given date.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// TestParsePhoneValid expects that every string of exactly ten digits is accepted and rendered
// unchanged.
func TestParsePhoneValid(t *testing.T) {
	for _, raw := range []string{"0000000000", "1234567890", "9999999999", "0987654321"} {
		phone, err := ParsePhone(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, phone.String())
	}
}

// TestParsePhoneInvalid expects that anything other than ten ASCII digits fails with a
// ValidationError.
func TestParsePhoneInvalid(t *testing.T) {
	invalid := []string{
		"",
		"123456789",
		"12345678901",
		"123-456-789",
		"+380123456",
		"12345 67890",
		"abcdefghij",
		"123456789a",
		" 1234567890",
		"1234567890\n",
		"١٢٣٤٥٦٧٨٩٠",
	}
	for _, raw := range invalid {
		_, err := ParsePhone(raw)
		var validationErr *ValidationError
		if assert.True(t, errors.As(err, &validationErr), "%q should be rejected", raw) {
			assert.Equal(t, "Phone number must contain exactly 10 digits.", validationErr.Reason)
		}
	}
}

// TestParseBirthdayRoundTrip expects that rendering a parsed birthday reproduces the input.
func TestParseBirthdayRoundTrip(t *testing.T) {
	for _, raw := range []string{"15.08.1990", "01.01.2000", "29.02.2000", "31.12.1999", "05.03.0987"} {
		birthday, err := ParseBirthday(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, birthday.String())
	}
}

// TestParseBirthdayInvalid expects that malformed strings and impossible dates are rejected.
func TestParseBirthdayInvalid(t *testing.T) {
	invalid := []string{
		"",
		"30.02.2000",
		"29.02.2001",
		"32.01.2000",
		"15.13.1990",
		"00.01.2000",
		"1.2.2000",
		"15.8.1990",
		"15.08.90",
		"15-08-1990",
		"1990.08.15",
		"15.08.1990 ",
		"15.08.-990",
		"15.08.+990",
		"tomorrow",
	}
	for _, raw := range invalid {
		_, err := ParseBirthday(raw)
		var validationErr *ValidationError
		if assert.True(t, errors.As(err, &validationErr), "%q should be rejected", raw) {
			assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", validationErr.Reason)
		}
	}
}

// TestParseName expects that only empty names are rejected.
func TestParseName(t *testing.T) {
	name, err := ParseName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", name.String())

	_, err = ParseName("")
	assert.Error(t, err)
	_, err = NewRecord(" ")
	assert.Error(t, err)
}

// TestBirthdayLeapDayProjection expects that 29 February turns into 1 March in non-leap years.
func TestBirthdayLeapDayProjection(t *testing.T) {
	birthday, err := ParseBirthday("29.02.2000")
	require.NoError(t, err)
	assert.Equal(t, day(2023, time.March, 1), birthday.In(2023))
	assert.Equal(t, day(2024, time.February, 29), birthday.In(2024))
	assert.Equal(t, day(2000, time.February, 29), birthday.Time())
}
