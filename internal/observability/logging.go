package observability

import (
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/utils"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging, keeping the first three and the
// seventh to ninth digits. Formatted input is accepted.
func MaskCPF(cpf string) string {
	cpf = utils.CleanDigits(cpf)
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***." + cpf[6:9] + "-**"
}

const redacted = "********"

var sensitiveFields = map[string]bool{
	"telefone":        true,
	"endereco":        true,
	"email":           true,
	"password":        true,
	"senha":           true,
	"observacoes":     true,
	"foto":            true,
	"fotoResponsavel": true,
	"fotoServo":       true,
}

// MaskSensitiveData returns a copy of a decoded JSON body safe to log.
// CPFs keep their masked form, nested objects are masked recursively.
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))
	for k, v := range data {
		switch {
		case k == "cpf":
			s, _ := v.(string)
			masked[k] = MaskCPF(s)
		case sensitiveFields[k]:
			masked[k] = redacted
		default:
			if nested, ok := v.(map[string]interface{}); ok {
				v = MaskSensitiveData(nested)
			}
			masked[k] = v
		}
	}
	return masked
}
