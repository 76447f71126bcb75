package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// CustomClaims represents the claims carried by admin API tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}
