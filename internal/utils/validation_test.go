package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Nome     string `json:"nome" validate:"required,min=2"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Telefone string `json:"telefone" validate:"omitempty,telefone"`
	Sala     string `json:"sala" validate:"omitempty,sala"`
	Data     string `json:"data" validate:"omitempty,isodate"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, InitValidators(v))
	return v
}

func TestInitValidators_Valid(t *testing.T) {
	v := newTestValidator(t)
	err := v.Struct(sampleForm{
		Nome:     "Ana",
		CPF:      "529.982.247-25",
		Telefone: "(21) 98765-4321",
		Sala:     "JARDIM",
		Data:     "2024-12-25",
	})
	assert.NoError(t, err)
}

func TestInitValidators_CustomTags(t *testing.T) {
	v := newTestValidator(t)
	err := v.Struct(sampleForm{
		Nome:     "A",
		CPF:      "11111111111",
		Telefone: "123",
		Sala:     "ADULTOS",
		Data:     "25/12/2024",
	})
	require.Error(t, err)

	result := ValidationErrors(err)
	assert.False(t, result.IsValid)

	byField := map[string]string{}
	for _, e := range result.Errors {
		byField[e.Field] = e.Message
	}
	assert.Len(t, byField, 5)
	assert.Equal(t, "cpf deve ser um CPF válido", byField["cpf"])
	assert.Equal(t, "telefone deve ser um telefone celular válido", byField["telefone"])
	assert.Equal(t, "sala deve ser uma sala válida", byField["sala"])
	assert.Equal(t, "data deve ser uma data no formato AAAA-MM-DD", byField["data"])
	assert.Contains(t, byField, "nome")
}

func TestValidationErrors_NonValidatorError(t *testing.T) {
	result := ValidationErrors(errors.New("unexpected EOF"))
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "", result.Errors[0].Field)

	assert.True(t, ValidationErrors(nil).IsValid)
}

func TestValidationResult_AddError(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.IsValid)
	r.AddError("nome", "obrigatório")
	assert.False(t, r.IsValid)
	assert.Equal(t, []ValidationError{{Field: "nome", Message: "obrigatório"}}, r.Errors)
}
