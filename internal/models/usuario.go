package models

// Usuario is a console account
type Usuario struct {
	Meta         `bson:",inline"`
	Email        string      `bson:"email" json:"email"`
	Tipo         TipoUsuario `bson:"tipo" json:"tipo"`
	Nome         string      `bson:"nome" json:"nome"`
	Foto         string      `bson:"foto,omitempty" json:"foto,omitempty"`
	PasswordHash string      `bson:"passwordHash" json:"-"`
}

// UsuarioResponse is the public view of an account
type UsuarioResponse struct {
	UID   string      `json:"uid"`
	Email string      `json:"email"`
	Tipo  TipoUsuario `json:"tipo"`
	Nome  string      `json:"nome"`
	Foto  string      `json:"foto,omitempty"`
}

// ToResponse converts a Usuario to UsuarioResponse
func (u *Usuario) ToResponse() UsuarioResponse {
	return UsuarioResponse{
		UID:   u.ID,
		Email: u.Email,
		Tipo:  u.Tipo,
		Nome:  u.Nome,
		Foto:  u.Foto,
	}
}

// LoginRequest carries sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	User      UsuarioResponse `json:"user"`
}
