package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims extends the registered claims with the fields the API needs to
// authorize a request without hitting the database.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Level     string `json:"level"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
