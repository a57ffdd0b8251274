package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenSubjectClaim is the claim key carrying the user id in every issued token.
const TokenSubjectClaim = "userId"

// TokenClaims is the signed payload of access and refresh tokens.
// UserID is serialized under [TokenSubjectClaim]; the registered "sub" claim mirrors it.
type TokenClaims struct {
	UserID string `json:"userId"`

	jwt.RegisteredClaims
}

// TokenPair is the credential artifact returned on login, registration and refresh.
// Both tokens carry the same subject and differ only in expiry.
type TokenPair struct {
	AccessToken string `json:"accessToken"`

	RefreshToken string `json:"refreshToken"`
}
