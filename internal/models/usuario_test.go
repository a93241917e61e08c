package models

import (
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsuarioJSONHidesPasswordHash(t *testing.T) {
	u := Usuario{
		Meta:         Meta{ID: "u1"},
		Email:        "servo@igreja.org",
		Tipo:         TipoServants,
		Nome:         "Servo",
		PasswordHash: "$2a$10$hash",
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "passwordHash")
}

func TestUsuarioToResponse(t *testing.T) {
	u := Usuario{Meta: Meta{ID: "u1"}, Email: "a@b.com", Tipo: TipoParents, Nome: "Ana"}
	assert.Equal(t, UsuarioResponse{UID: "u1", Email: "a@b.com", Tipo: TipoParents, Nome: "Ana"}, u.ToResponse())
}

func TestSessionClaims(t *testing.T) {
	servant := &SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Tipo: TipoServants}
	parent := &SessionClaims{Tipo: TipoParents}
	var none *SessionClaims

	assert.True(t, servant.IsServant())
	assert.False(t, servant.IsParent())
	assert.True(t, parent.IsParent())
	assert.False(t, parent.IsServant())
	assert.False(t, none.IsServant())
	assert.False(t, none.IsParent())
}

func TestPessoaRequestToContato(t *testing.T) {
	req := PessoaRequest{CPF: "52998224725", Nome: "Maria", GrauParentesco: "Mãe", Telefone: "21987654321", Endereco: "Rua A, 1", Email: "m@x.com"}
	c := req.ToContato()
	assert.Equal(t, "Maria", c.Nome)
	assert.Equal(t, "Mãe", c.GrauParentesco)
}

func TestValidPhotoFolder(t *testing.T) {
	assert.True(t, ValidPhotoFolder(PhotoFolderCheckIns))
	assert.True(t, ValidPhotoFolder("criancas"))
	assert.False(t, ValidPhotoFolder("../etc"))
	assert.False(t, ValidPhotoFolder(""))
}
