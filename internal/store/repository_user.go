// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/contacts-keeper/internal/logger"
	"github.com/MKhiriev/contacts-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the token, confirmation and avatar
// updates against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.Avatar, &u.RefreshToken, &u.Confirmed)
	return u, err
}

// CreateUser persists a new account and returns it with the
// server-assigned id and creation time.
//
// A unique_violation (23505) on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByEmail returns the account registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID returns the account with id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return found, nil
}

// SetRefreshToken stores token as the user's only valid refresh token.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID int64, token *string) error {
	query, args, err := buildSetRefreshTokenQuery(userID, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.SetRefreshToken", query, args)
}

// ConfirmEmail marks the account registered with email as confirmed.
// Confirming an already confirmed account succeeds.
func (r *userRepository) ConfirmEmail(ctx context.Context, email string) error {
	query, args, err := buildConfirmEmailQuery(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.ConfirmEmail", query, args)
}

// SetAvatar stores the avatar URL and returns the updated account.
func (r *userRepository) SetAvatar(ctx context.Context, email, url string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetAvatarQuery(email, url)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAvatar").Msg("error updating avatar")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return updated, nil
}

// exec runs a single-row UPDATE and reports [ErrUserNotFound] when no row
// matched.
func (r *userRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
