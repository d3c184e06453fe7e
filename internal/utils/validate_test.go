package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "081234567890", CleanPhone("0812-3456-7890"))
	assert.Equal(t, "081234567890", CleanPhone("0812 3456 7890"))
	assert.Equal(t, "+6281234567890", CleanPhone("+62 (812) 3456-7890"))
}

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"081234567890", true},
		{"0812345678", true},
		{"081234567", false},
		{"081234567890123", true},
		{"0812345678901234", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, ValidatePhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("budi@example.com"))
	assert.True(t, ValidateEmail("budi.santoso+test@sub.example.co.id"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("budi@"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{"rahasia123", true},
		{"a1234567", true},
		{"short1", false},
		{"lettersonly", false},
		{"12345678", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, ValidatePassword(tc.password), "password %q", tc.password)
	}
}

func TestValidateCoordinates(t *testing.T) {
	testCases := []struct {
		name  string
		lat   float64
		lng   float64
		valid bool
	}{
		{"Jakarta", -6.2088, 106.8456, true},
		{"zero latitude means no fix", 0.0, 106.8, false},
		{"zero longitude means no fix", -6.2, 0.0, false},
		{"latitude too high", 90.1, 106.8, false},
		{"latitude too low", -90.1, 106.8, false},
		{"longitude too high", -6.2, 180.1, false},
		{"longitude too low", -6.2, -180.1, false},
		{"extreme but valid", 89.9, 179.9, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateCoordinates(tc.lat, tc.lng))
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "customer", NormalizeRole("  Customer "))
	assert.Equal(t, "mechanic", NormalizeRole("MECHANIC"))
}
