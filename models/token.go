// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenScope tells which flow a token was issued for.
type TokenScope string

const (
	ScopeAccessToken  TokenScope = "access_token"
	ScopeRefreshToken TokenScope = "refresh_token"
	ScopeEmailToken   TokenScope = "email_token"
)

// TokenClaims is the claim set of every token issued by the service.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Scope restricts the token to one flow.
	Scope TokenScope `json:"scope"`
}

// Token wraps a parsed or freshly signed JWT.
//
// SignedString holds the compact serialized form
// (header.payload.signature) ready to be sent to the client.
type Token struct {
	*jwt.Token `json:"-"`

	TokenClaims

	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim for access and refresh tokens.
	// Email tokens carry the email in "sub" and leave UserID zero.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the body returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// NewTokenPair builds a bearer [TokenPair].
func NewTokenPair(access, refresh *Token) TokenPair {
	return TokenPair{
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
		TokenType:    "bearer",
	}
}

// Message is a generic `{"message": ...}` response body.
type Message struct {
	Message string `json:"message"`
}

// Detail is the error response body.
type Detail struct {
	Detail string `json:"detail"`
}
