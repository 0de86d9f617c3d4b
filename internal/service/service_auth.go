// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/contacts-keeper/internal/config"
	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/internal/store"
	"github.com/MKhiriev/contacts-keeper/internal/utils"
	"github.com/MKhiriev/contacts-keeper/internal/validators"
	"github.com/MKhiriev/contacts-keeper/models"
)

// confirmEmailPath is appended to the public base URL to build the link
// sent for email confirmation.
const confirmEmailPath = "/api/auth/confirmed_email/"

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, email confirmation and the
// access/refresh token pair using a UserRepository for persistence and
// argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers confirmation links.
	mailer Mailer

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	emailTokenDuration   time.Duration

	// publicBaseURL prefixes confirmation links.
	publicBaseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Mailer and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		mailer:               mailer,
		validator:            validators.NewUserValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		emailTokenDuration:   cfg.EmailTokenDuration,
		publicBaseURL:        strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:               logger,
	}
}

// Signup creates an unconfirmed account and sends a confirmation link.
//
// The password is stored as an argon2id hash and the avatar defaults to the
// Gravatar image of the email. A failure to send the link is logged and does
// not fail the signup: the user can ask for a new link.
//
// Returns:
//   - ErrValidation if the payload is invalid.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Signup(ctx context.Context, fields models.UserFields) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(fields.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := fields.ToUser(hash)
	avatar := utils.GravatarURL(user.Email)
	user.Avatar = &avatar

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.sendConfirmation(ctx, created); err != nil {
		log.Err(err).Int64("user_id", created.ID).Msg("confirmation email was not sent")
	}

	return created, nil
}

// Login checks the credentials of a confirmed account and issues a new
// token pair. The refresh token replaces the stored one.
//
// Returns ErrInvalidCredentials for an unknown email or a wrong password
// and ErrEmailNotConfirmed for an unconfirmed account.
func (a *authService) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.Confirmed {
		return models.TokenPair{}, ErrEmailNotConfirmed
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("stored password hash is invalid")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issueTokenPair(ctx, user.ID)
}

// RefreshToken exchanges a valid refresh token for a new pair. A token that
// verifies but no longer matches the stored one revokes the stored token.
func (a *authService) RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.ScopeRefreshToken)
	if err != nil {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		log.Warn().Int64("user_id", user.ID).Msg("refresh token reuse, revoking stored token")
		if err = a.userRepository.SetRefreshToken(ctx, user.ID, nil); err != nil {
			return models.TokenPair{}, fmt.Errorf("error revoking refresh token: %w", err)
		}
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	return a.issueTokenPair(ctx, user.ID)
}

// ConfirmEmail marks the account named by an email token as confirmed.
func (a *authService) ConfirmEmail(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.ScopeEmailToken)
	if err != nil {
		return "", ErrInvalidEmailToken
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Subject)
	if errors.Is(err, store.ErrUserNotFound) {
		return "", ErrInvalidEmailToken
	}
	if err != nil {
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Confirmed {
		return MessageEmailAlreadyConfirmed, nil
	}

	if err = a.userRepository.ConfirmEmail(ctx, user.Email); err != nil {
		return "", fmt.Errorf("error confirming email: %w", err)
	}
	return MessageEmailConfirmed, nil
}

// RequestEmail resends the confirmation link of an unconfirmed account.
func (a *authService) RequestEmail(ctx context.Context, email string) (string, error) {
	if err := a.validator.Validate(ctx, models.RequestEmail{Email: email}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return MessageCheckEmail, nil
	}
	if err != nil {
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Confirmed {
		return MessageEmailAlreadyConfirmed, nil
	}

	if err = a.sendConfirmation(ctx, user); err != nil {
		return "", err
	}
	return MessageCheckEmail, nil
}

// ParseToken validates and parses a raw access token.
//
// Any validation failure (expired, wrong issuer or scope, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.ScopeAccessToken)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) issueTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	access, err := utils.GenerateUserToken(a.tokenIssuer, userID, models.ScopeAccessToken, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refresh, err := utils.GenerateUserToken(a.tokenIssuer, userID, models.ScopeRefreshToken, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshString := refresh.String()
	if err = a.userRepository.SetRefreshToken(ctx, userID, &refreshString); err != nil {
		return models.TokenPair{}, fmt.Errorf("error storing refresh token: %w", err)
	}

	return models.NewTokenPair(&access, &refresh), nil
}

func (a *authService) sendConfirmation(ctx context.Context, user models.User) error {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, models.ScopeEmailToken, a.emailTokenDuration, a.tokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	link := a.publicBaseURL + confirmEmailPath + token.String()
	if err = a.mailer.SendConfirmationEmail(ctx, user.Email, user.Username, link); err != nil {
		return fmt.Errorf("error sending confirmation email: %w", err)
	}
	return nil
}
