package service

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

const keyAuthJWTSecret = "auth.jwt_secret"

// TokenTTL is the lifetime of issued tokens.
const TokenTTL = 30 * 24 * time.Hour

const minPasswordLength = 8

// Auth errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
)

// AuthResponse is returned after successful login/register.
type AuthResponse struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

// AuthService provides authentication functionality.
type AuthService interface {
	// Register creates an account. The first account becomes an admin.
	Register(ctx context.Context, email, password, fullName string) (*AuthResponse, error)
	// Login authenticates a user and returns a JWT token.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// Authenticate validates a token and loads its user.
	Authenticate(ctx context.Context, token string) (model.User, error)
	Me(ctx context.Context, userID int64) (model.User, error)
	UpdateProfile(ctx context.Context, userID int64, fullName string) (model.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	// HasUsers reports whether any account exists yet.
	HasUsers(ctx context.Context) (bool, error)
}

type authService struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
	now      func() time.Time

	secretMu sync.Mutex
	secret   []byte
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, settings repository.SettingsRepository) AuthService {
	return &authService{users: users, settings: settings, now: time.Now}
}

func (s *authService) HasUsers(ctx context.Context) (bool, error) {
	n, err := s.users.CountAll(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (*AuthResponse, error) {
	// The first account becomes admin.
	user, err := createAccount(ctx, s.users, s.users.CreateOrBootstrap, email, password, fullName, model.RoleUser)
	if err != nil {
		return nil, err
	}
	logger.Info("user registered", "module", "service", "action", "create", "resource", "user", "result", "ok", "user_id", user.ID, "role", user.Role)
	return s.issue(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("login rejected", "module", "service", "action", "login", "resource", "user", "result", "failed", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.users.TouchLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("touch login: %w", err)
	}
	user.LastLoginAt = &now
	return s.issue(ctx, user)
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	secret, err := s.jwtSecret(ctx)
	if err != nil {
		return model.User{}, err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return model.User{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrInvalidToken
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *authService) Me(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, fullName string) (model.User, error) {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) > 200 {
		return model.User{}, invalidf("full name is too long")
	}
	user, err := s.users.UpdateProfile(ctx, userID, fullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	logger.Info("password changed", "module", "service", "action", "update", "resource", "user", "result", "ok", "user_id", userID)
	return nil
}

func (s *authService) issue(ctx context.Context, user model.User) (*AuthResponse, error) {
	secret, err := s.jwtSecret(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	expiresAt := now.Add(TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// jwtSecret loads the signing key, generating and storing it on first use.
func (s *authService) jwtSecret(ctx context.Context) ([]byte, error) {
	s.secretMu.Lock()
	defer s.secretMu.Unlock()
	if s.secret != nil {
		return s.secret, nil
	}

	setting, err := s.settings.Get(ctx, keyAuthJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("get jwt secret: %w", err)
	}
	if setting != nil && setting.Value != "" {
		secret, err := hex.DecodeString(setting.Value)
		if err != nil {
			return nil, fmt.Errorf("decode jwt secret: %w", err)
		}
		s.secret = secret
		return secret, nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	if err := s.settings.Set(ctx, keyAuthJWTSecret, hex.EncodeToString(secret)); err != nil {
		return nil, fmt.Errorf("save jwt secret: %w", err)
	}
	s.secret = secret
	return secret, nil
}

// createAccount validates input, hashes the password and stores the user.
func createAccount(ctx context.Context, users repository.UserRepository, insert func(context.Context, model.User) (model.User, error), email, password, fullName, role string) (model.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if !model.IsValidRole(role) {
		return model.User{}, invalidf("unknown role %q", role)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	if _, err := users.GetByEmail(ctx, email); err == nil {
		return model.User{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("check email: %w", err)
	}

	user, err := insert(ctx, model.User{
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", invalidf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > 72 {
		return "", invalidf("password must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// normalizeEmail validates a bare address and lower-cases it.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalidf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, ".") {
		return "", invalidf("invalid email address")
	}
	return strings.ToLower(addr.Address), nil
}

// GravatarURL returns the avatar URL for email.
func GravatarURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=mp&s=80", hex.EncodeToString(hash[:]))
}
