package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)

	logger.Info("test message")
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name     string
		cpf      string
		expected string
	}{
		{name: "digits", cpf: "52998224725", expected: "529.***.247-**"},
		{name: "formatted", cpf: "529.982.247-25", expected: "529.***.247-**"},
		{name: "too short", cpf: "529982247", expected: "***.***.***-**"},
		{name: "letters only", cpf: "abc", expected: "***.***.***-**"},
		{name: "empty", cpf: "", expected: "***.***.***-**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCPF(tt.cpf))
		})
	}
}

func TestMaskSensitiveData(t *testing.T) {
	data := map[string]interface{}{
		"cpf":         "52998224725",
		"telefone":    "21987654321",
		"email":       "maria@example.com",
		"observacoes": "alergia a amendoim",
		"nome":        "Maria",
		"checkIn": map[string]interface{}{
			"fotoResponsavel": "/v1/photos/abc",
			"responsavelId":   "r1",
		},
		"idade": float64(6),
	}

	masked := MaskSensitiveData(data)

	assert.Equal(t, "529.***.247-**", masked["cpf"])
	assert.Equal(t, "********", masked["telefone"])
	assert.Equal(t, "********", masked["email"])
	assert.Equal(t, "********", masked["observacoes"])
	assert.Equal(t, "Maria", masked["nome"])
	assert.Equal(t, float64(6), masked["idade"])

	nested, ok := masked["checkIn"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "********", nested["fotoResponsavel"])
	assert.Equal(t, "r1", nested["responsavelId"])

	assert.Equal(t, "52998224725", data["cpf"], "input must not be modified")
	assert.Equal(t, "/v1/photos/abc", data["checkIn"].(map[string]interface{})["fotoResponsavel"])
}
