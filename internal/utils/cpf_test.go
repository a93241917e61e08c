package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{name: "Valid CPF without formatting", cpf: "12345678909", valid: true},
		{name: "Valid CPF with formatting", cpf: "123.456.789-09", valid: true},
		{name: "Valid CPF - real example 1", cpf: "11144477735", valid: true},
		{name: "Valid CPF - real example 2", cpf: "52998224725", valid: true},
		{name: "Valid CPF - check digit zero", cpf: "00000000191", valid: true},

		{name: "Invalid CPF - wrong check digit", cpf: "12345678900", valid: false},
		{name: "Invalid CPF - wrong second check digit", cpf: "52998224726", valid: false},
		{name: "Invalid CPF - all zeros", cpf: "00000000000", valid: false},
		{name: "Invalid CPF - all ones", cpf: "11111111111", valid: false},
		{name: "Invalid CPF - sequential digits", cpf: "12345678910", valid: false},
		{name: "Invalid CPF - too short", cpf: "123456789", valid: false},
		{name: "Invalid CPF - too long", cpf: "123456789012", valid: false},
		{name: "Invalid CPF - empty string", cpf: "", valid: false},
		{name: "Invalid CPF - only letters", cpf: "abcdefghijk", valid: false},
		{name: "Invalid CPF - mixed alphanumeric", cpf: "123abc78909", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCPF(tt.cpf), "ValidateCPF(%q)", tt.cpf)
		})
	}
}

func TestValidateCPF_AllSameDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := ""
		for i := 0; i < 11; i++ {
			cpf += string(d)
		}
		assert.False(t, ValidateCPF(cpf), "CPF %s should be invalid (all same digits)", cpf)
	}
}

func TestValidateCPF_AdditionalValidCPFs(t *testing.T) {
	for _, cpf := range []string{"03561350712", "45049725810", "39053344705"} {
		assert.True(t, ValidateCPF(cpf), "CPF %s should be valid", cpf)
	}
}

func TestCleanDigits(t *testing.T) {
	assert.Equal(t, "12345678909", CleanDigits("123.456.789-09"))
	assert.Equal(t, "21987654321", CleanDigits("(21) 98765-4321"))
	assert.Equal(t, "", CleanDigits("abc"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))
	assert.Equal(t, "123.456.789-09", FormatCPF("123.456.789-09"))
	assert.Equal(t, "1234", FormatCPF("1234"))
}
