package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/safekids/app-safekids/internal/models"
)

// custom validation tags & texts
const (
	cpfTag       = "cpf"
	cpfText      = "{0} deve ser um CPF válido"
	telefoneTag  = "telefone"
	telefoneText = "{0} deve ser um telefone celular válido"
	salaTag      = "sala"
	salaText     = "{0} deve ser uma sala válida"
	isoDateTag   = "isodate"
	isoDateText  = "{0} deve ser uma data no formato AAAA-MM-DD"
)

var (
	translator     ut.Translator
	translatorOnce sync.Once
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Translator returns the pt-BR translator used for validation messages
func Translator() ut.Translator {
	translatorOnce.Do(func() {
		locale := pt_BR.New()
		translator, _ = ut.New(locale, locale).GetTranslator("pt_BR")
	})
	return translator
}

// InitValidators registers the custom tags and pt-BR messages on validate.
func InitValidators(validate *validator.Validate) error {
	trans := Translator()
	if err := pt_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return err
	}

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	custom := []struct {
		tag  string
		text string
		fn   validator.Func
	}{
		{cpfTag, cpfText, func(fl validator.FieldLevel) bool { return ValidateCPF(fl.Field().String()) }},
		{telefoneTag, telefoneText, func(fl validator.FieldLevel) bool { return ValidatePhone(fl.Field().String()) }},
		{salaTag, salaText, func(fl validator.FieldLevel) bool { return models.Sala(fl.Field().String()).Valid() }},
		{isoDateTag, isoDateText, func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		}},
	}

	for _, c := range custom {
		if err := validate.RegisterValidation(c.tag, c.fn); err != nil {
			return err
		}
		registerTranslation(validate, trans, c.tag, c.text)
	}

	return nil
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// RegisterBindingValidators installs the custom validators on gin's binding engine
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return InitValidators(v)
}

// ValidationErrors converts a binding error into field messages. Errors that
// are not validator errors yield a single entry with an empty field.
func ValidationErrors(err error) *ValidationResult {
	result := NewValidationResult()
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result.AddError("", err.Error())
		return result
	}

	trans := Translator()
	for _, fe := range verrs {
		result.AddError(fe.Field(), fe.Translate(trans))
	}
	return result
}
