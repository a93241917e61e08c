package utils

import (
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// CleanDigits removes every non-digit character
func CleanDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateCPF validates a CPF number.
// Formatting characters are ignored; the cleaned value must have 11 digits,
// not all equal, and both check digits must match.
func ValidateCPF(cpf string) bool {
	cpf = CleanDigits(cpf)

	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(cpf[:9]) == int(cpf[9]-'0') &&
		cpfCheckDigit(cpf[:10]) == int(cpf[10]-'0')
}

// cpfCheckDigit computes the check digit for the given prefix using weights
// len+1 down to 2.
func cpfCheckDigit(prefix string) int {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		return 0
	}
	return remainder
}

// FormatCPF renders an 11-digit CPF as XXX.XXX.XXX-XX. Anything else is
// returned unchanged.
func FormatCPF(cpf string) string {
	digits := CleanDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}
