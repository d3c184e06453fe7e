package utils

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

var phoneCleaner = regexp.MustCompile(`[\s\-\(\)]`)

// CleanPhone strips spaces, dashes and parentheses from a phone number
func CleanPhone(phone string) string {
	return phoneCleaner.ReplaceAllString(phone, "")
}

// ValidatePhone checks that a cleaned phone number carries 10 to 15 digits
func ValidatePhone(phone string) bool {
	digits := 0
	for _, c := range phone {
		if unicode.IsDigit(c) {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// ValidateEmail checks that the address parses as RFC 5322
func ValidateEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// ValidatePassword checks minimum length and that the password contains both
// a letter and a digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 || len(password) > 100 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		if unicode.IsLetter(c) {
			hasLetter = true
		}
		if unicode.IsDigit(c) {
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ValidateCoordinates checks that a coordinate pair is in range. Exactly 0.0
// on either axis is rejected: upstream clients send (0, 0) when the device
// could not detect a location, so it is treated as "location not detected"
// rather than a real point in the Gulf of Guinea.
func ValidateCoordinates(lat, lng float64) bool {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	if lat == 0.0 || lng == 0.0 {
		return false
	}
	return true
}

// NormalizeRole lower-cases and trims a role string from the wire
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
