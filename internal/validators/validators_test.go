package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRequiredFields(t *testing.T) {
	assert.NoError(t, CheckRequiredFields(F("name", "John"), F("surname", "Doe")))

	for _, v := range []string{"", "   ", "...", "N/A", " N/A "} {
		err := CheckRequiredFields(F("name", "John"), F("surname", v))
		require.Error(t, err, "value %q", v)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "surname")
	}
}

func TestValidateEmail(t *testing.T) {
	for _, s := range []string{
		"john.doe@example.com",
		"John.Doe@Example.COM",
		"j_d-1@mail.example.co",
	} {
		assert.NoError(t, ValidateEmail(s), s)
	}

	for _, s := range []string{
		"john@example",
		"john@@example.com",
		"john@example.museum",
		"john doe@example.com",
		"@example.com",
	} {
		err := ValidateEmail(s)
		assert.Error(t, err, s)
		assert.True(t, IsValidation(err), s)
	}
}

func TestValidatePhone(t *testing.T) {
	cases := map[string]string{
		"+1 415-555-1234":    "+14155551234",
		"  +1 415.555.1234 ": "+14155551234",
		"+14155551234":       "+14155551234",
		"+44 207 946 0958":   "+442079460958",
	}
	for in, want := range cases {
		got, err := ValidatePhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestValidatePhone_Rejects(t *testing.T) {
	cases := map[string]string{
		"415-555-1234":      "11 to 15 digits",
		"+1234567890123456": "11 to 15 digits",
		"14155551234":       "'+' country code",
		"+1 (415) 555-1234": "Expected format",
		"+1 415--555-1234":  "Expected format",
	}
	for in, want := range cases {
		_, err := ValidatePhone(in)
		require.Error(t, err, in)
		assert.True(t, IsValidation(err), in)
		assert.Contains(t, err.Error(), want, in)
	}
}

func TestCanonicalPhone(t *testing.T) {
	assert.Equal(t, "+14155551234", CanonicalPhone(" +1 (415) 555-1234 "))
}

func TestValidateCarYear(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	y, err := ValidateCarYear(" 2015 ", now)
	require.NoError(t, err)
	assert.Equal(t, 2015, y)

	_, err = ValidateCarYear("2027", now)
	assert.NoError(t, err)

	for _, s := range []string{"abc", "1885", "2028", "20.5"} {
		_, err := ValidateCarYear(s, now)
		assert.Error(t, err, s)
		assert.True(t, IsValidation(err), s)
	}
}
