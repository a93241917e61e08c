package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(21) 98765-4321", FormatPhone("21987654321"))
	assert.Equal(t, "(21) 98765-4321", FormatPhone("(21) 98765-4321"))
	assert.Equal(t, "2133334444", FormatPhone("2133334444"))
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"mobile digits only", "21987654321", true},
		{"mobile formatted", "(11) 98765-4321", true},
		{"landline has ten digits", "2133334444", false},
		{"invalid area code", "00987654321", false},
		{"too long", "219876543210", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(tt.phone))
		})
	}
}
