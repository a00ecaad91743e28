package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carrega a identidade do operador autenticado na API de gestão
type Claims struct {
	UserID     string `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
