// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/contacts-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be issued
	// because a required parameter is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	// ErrInvalidTokenScope is returned when a valid token was issued for
	// another flow.
	ErrInvalidTokenScope = errors.New("invalid token scope")
	// ErrEmptySubject is returned when a token carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")
)

// GenerateJWTToken creates an HS256 token for subject restricted to scope.
//
// The token carries iss, sub, iat, exp, a random jti and the scope claim.
// Access and refresh tokens use the user id as subject, email tokens use
// the email address.
//
//	token, err := utils.GenerateJWTToken("contacts-keeper", "42", models.ScopeAccessToken, 15*time.Minute, "secret")
func GenerateJWTToken(issuer, subject string, scope models.TokenScope, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || scope == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope: scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString}, nil
}

// GenerateUserToken issues an access or refresh token for userID.
func GenerateUserToken(issuer string, userID int64, scope models.TokenScope, tokenDuration time.Duration, signKey string) (models.Token, error) {
	token, err := GenerateJWTToken(issuer, strconv.FormatInt(userID, 10), scope, tokenDuration, signKey)
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID
	return token, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation covers the HS256 signature, the issuer, the expiration, a
// non-empty subject and the expected scope. For access and refresh tokens
// the subject is parsed into [models.Token.UserID].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, scope models.TokenScope) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Scope != scope {
		return models.Token{}, fmt.Errorf("%w: want %q, got %q", ErrInvalidTokenScope, scope, claims.Scope)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	parsed := models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}
	if scope == models.ScopeEmailToken {
		return parsed, nil
	}

	parsed.UserID, err = parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return parsed, nil
}
