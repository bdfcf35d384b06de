package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dalanakids/shop-api/internal/model"
)

// ErrInvalidToken is returned by VerifyAccessToken for any token that
// is malformed, carries a bad signature or has expired.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed session token along with its expiry
// and unique id. The ID (jti claim) keys the server-side revocation
// list on logout.
type AccessToken struct {
	Token string    // the serialized JWT string
	ID    string    // jti claim
	Exp   time.Time // the UTC expiration time
}

// TokenClaims are the identity claims carried by a session token.
// Validity is purely cryptographic plus expiry; nothing is stored
// server-side at issuance time.
type TokenClaims struct {
	UserID string
	Name   string
	Email  string
	Role   model.Role
	ID     string // jti
	Exp    time.Time
}

// NewAccessToken builds and signs an HS256 session token for a user.
// The token embeds user_id, name, email and role plus the standard
// exp/iat/jti claims. TTL is fixed at issuance (24h by default config).
func NewAccessToken(secret string, u model.User, ttl time.Duration) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"role":    string(u.Role),
		"jti":     jti,
		"exp":     exp.Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, ID: jti, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a session token. It fails
// with ErrInvalidToken when the signature does not check out, the
// signing method is unexpected, the token is malformed or expired.
// Verification is stateless; the revocation list is the middleware's
// concern.
func VerifyAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	out := TokenClaims{}
	if v, ok := claims["user_id"].(string); ok {
		out.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		out.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = model.Role(v)
	}
	if v, ok := claims["jti"].(string); ok {
		out.ID = v
	}
	if v, ok := claims["exp"].(float64); ok {
		out.Exp = time.Unix(int64(v), 0).UTC()
	}
	if out.UserID == "" || !out.Role.Valid() {
		return TokenClaims{}, ErrInvalidToken
	}
	return out, nil
}
