package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital_records/internal/model"
	"hospital_records/internal/repository"
	"hospital_records/internal/utils"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is inactive")

	// Session resolution failures. All of them surface to the client as
	// not-authenticated; they stay distinct for server-side diagnostics.
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrMalformedAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token expired")
	ErrOrphanedToken       = errors.New("user not found for token")
)

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, name, email, password, role string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveUser(ctx context.Context, authorizationHeader string) (*model.AuthUser, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Signup creates a new user account and issues a session for it
func (s *authService) Signup(ctx context.Context, name, email, password, role string) (*model.User, string, error) {
	email = strings.ToLower(email)

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrEmailAlreadyInUse
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.issueSession(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("user created, but failed to issue session: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and issues a session token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	// Unknown email and wrong password return the same error so the
	// response does not reveal whether the account exists.
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrInactiveAccount
	}

	token, err := s.issueSession(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	return user, token, nil
}

// issueSession generates an opaque token and persists the session row.
// Token uniqueness rests on the generator's entropy; there is no
// collision check. Concurrent logins each get their own session.
func (s *authService) issueSession(ctx context.Context, userID, role string) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session := &model.Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(utils.SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveUser resolves a presented Authorization header to the account
// that owns the session. It is a pure read: it never touches token or
// user state and never extends expiry.
func (s *authService) ResolveUser(ctx context.Context, authorizationHeader string) (*model.AuthUser, error) {
	if authorizationHeader == "" {
		return nil, ErrMissingAuthHeader
	}

	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrMalformedAuthHeader
	}

	session, err := s.sessionRepo.FindByToken(ctx, parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, ErrInvalidToken
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session user: %w", err)
	}
	if user == nil {
		return nil, ErrOrphanedToken
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return &model.AuthUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}, nil
}
