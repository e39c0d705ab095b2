package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anhminhnguyen3110/chatbot/internal/logger"
	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// dummyHash is a well-formed bcrypt hash verified on the unknown-email
// login path so both failure branches cost a hash comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	tokenTTL     time.Duration
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	tokenTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Register creates a new account for email. It returns model.ErrEmailTaken
// when another account already owns the address.
func (a *Auth) Register(ctx context.Context, email string, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		IsGuest:      false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: email already registered",
				"email", email)
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", created.Email,
		"user_id", created.ID)

	return created, nil
}

// Login checks the password for email and issues an access token. Unknown
// emails and wrong passwords both come back as model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email string, password string) (string, model.User, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(password, dummyHash)
		a.logger.Info("Auth service: login failed",
			"email", email)
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: login failed",
			"email", email)
		return "", model.User{}, model.ErrInvalidCredentials
	}

	accessToken, err := a.tokenManager.Issue(user.Email, a.tokenTTL)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", user.Email,
		"user_id", user.ID)

	return accessToken, user, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// Token verification errors pass through unchanged; a subject with no
// matching account maps to model.ErrUnknownSubject.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	a.logger.Debug("Auth service: authenticating token")

	subject, err := a.tokenManager.Verify(tokenString)
	if err != nil {
		a.logger.Info("Auth service: token rejected",
			"error", err.Error())
		return model.User{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: token subject unknown",
			"subject", subject)
		return model.User{}, model.ErrUnknownSubject
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", subject,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
