package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by a console session token
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string      `json:"email"`
	Nome  string      `json:"name"`
	Tipo  TipoUsuario `json:"tipo"`
}

// IsServant reports whether the session belongs to a church servant
func (c *SessionClaims) IsServant() bool {
	return c != nil && c.Tipo == TipoServants
}

// IsParent reports whether the session belongs to a parent
func (c *SessionClaims) IsParent() bool {
	return c != nil && c.Tipo == TipoParents
}
