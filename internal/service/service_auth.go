// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/store"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, and the stateless JWT
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor of newly hashed passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// IssueToken authenticates the credentials and signs {sub: userID}.
//
// A missing field, an unknown email and a password mismatch all return
// ErrInvalidCredentials, so callers cannot tell which one happened. Storage
// failures other than "not found" are wrapped and returned as is.
func (a *authService) IssueToken(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", credentials.Email).Msg("token requested for unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, credentials.Password); err != nil {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies the signature, issuer and expiry of tokenString and
// resolves its subject to a live user.
//
// Every verification failure, including a user deleted after the token was
// issued, is normalised to ErrTokenIsInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, ErrTokenIsInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrTokenIsInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Int64("user_id", token.UserID).Msg("token names an unknown user")
		return models.User{}, ErrTokenIsInvalid
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// RegisterUser creates a new account with a bcrypt-hashed password.
//
// Returns ErrInvalidDataProvided if a field is missing and
// store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hashPassword(request.Password)
	if err != nil {
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// GetProfile returns the acting user resolved by the auth middleware.
func (a *authService) GetProfile(ctx context.Context) (models.User, error) {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return models.User{}, ErrNoActingUser
	}

	return user, nil
}

// UpdateProfile changes the acting user's own record. A new password is
// hashed before it is written.
func (a *authService) UpdateProfile(ctx context.Context, update models.UserUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID <= 0 {
		return 0, ErrNoActingUser
	}
	update.UserID = userID

	if update.Password != nil {
		hash, err := a.hashPassword(*update.Password)
		if err != nil {
			return 0, err
		}
		update.Password = &hash
	}

	affected, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return 0, fmt.Errorf("profile update ended with error: %w", err)
	}

	return affected, nil
}

// hashPassword is the single place plaintext passwords are turned into
// bcrypt hashes before persistence.
func (a *authService) hashPassword(password string) (string, error) {
	return utils.HashPassword(password, a.bcryptCost)
}
