package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tyagianshu04/krishi-mitra/internal/auth"
	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, fullName, email, mobile, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	VerifyToken(token string) (uuid.UUID, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a bcrypt-hashed password and mints an
// access token for it. Email and mobile must both be unused.
func (s *authService) Register(ctx context.Context, fullName, email, mobile, password string) (string, *model.User, error) {
	email = normalizeEmail(email)

	// Pre-check both identifiers for a precise conflict message. The store's
	// own uniqueness enforcement remains the backstop under concurrency.
	if err := s.checkAvailable(ctx, email, errors.ErrEmailTaken); err != nil {
		return "", nil, err
	}
	if err := s.checkAvailable(ctx, mobile, errors.ErrMobileTaken); err != nil {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates by email or mobile number. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByIdentifier(ctx, normalizeEmail(username))
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// VerifyToken validates a token and returns the user id it asserts.
func (s *authService) VerifyToken(token string) (uuid.UUID, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func (s *authService) checkAvailable(ctx context.Context, identifier string, conflict error) error {
	_, err := s.users.FindByIdentifier(ctx, identifier)
	if err == nil {
		return conflict
	}
	if !stderrors.Is(err, errors.ErrUserNotFound) {
		return fmt.Errorf("check identifier: %w", err)
	}
	return nil
}

func isDuplicate(err error) bool {
	return stderrors.Is(err, errors.ErrEmailTaken) ||
		stderrors.Is(err, errors.ErrMobileTaken) ||
		stderrors.Is(err, errors.ErrDuplicateCredential)
}

// normalizeEmail lowercases and trims so lookups are case-insensitive for
// emails. Mobile numbers pass through unchanged.
func normalizeEmail(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
