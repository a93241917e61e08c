package utils

import (
	"github.com/nyaruka/phonenumbers"
)

// FormatPhone renders an 11-digit number as (XX) XXXXX-XXXX. Anything else
// is returned unchanged.
func FormatPhone(phone string) string {
	digits := CleanDigits(phone)
	if len(digits) != 11 {
		return phone
	}
	return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
}

// ValidatePhone reports whether phone is a Brazilian mobile number with DDD
func ValidatePhone(phone string) bool {
	digits := CleanDigits(phone)
	if len(digits) != 11 {
		return false
	}

	num, err := phonenumbers.Parse(digits, "BR")
	if err != nil {
		return false
	}
	if !phonenumbers.IsValidNumberForRegion(num, "BR") {
		return false
	}

	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return true
	default:
		return false
	}
}
