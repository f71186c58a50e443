// Package identity проверяет bearer-токены провайдера личности (HS256 JWT).
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"freight/internal/entities"
)

const bearerPrefix = "bearer "

type claims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret   []byte
	audience string
	parser   *jwt.Parser
}

// New пустой audience отключает проверку aud.
func New(secret, audience string) *Verifier {
	return &Verifier{
		secret:   []byte(secret),
		audience: audience,
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Verify разбирает значение заголовка Authorization.
func (v *Verifier) Verify(_ context.Context, authorization string) (*entities.Identity, error) {
	if len(authorization) <= len(bearerPrefix) || !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return nil, ErrMissingToken
	}
	raw := strings.TrimSpace(authorization[len(bearerPrefix):])

	var c claims
	_, err := v.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, fmt.Errorf("parse token: %w", err))
	}

	if v.audience != "" && !c.VerifyAudience(v.audience, true) {
		return nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(c.Subject)
	if err != nil || subject == uuid.Nil {
		return nil, ErrInvalidToken
	}

	metadata := c.UserMetadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &entities.Identity{
		Subject:  subject,
		Email:    strings.ToLower(strings.TrimSpace(c.Email)),
		Metadata: metadata,
	}, nil
}
