package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Page carries pagination input.
type Page struct {
	Limit  int
	Offset int
}

// normalize applies the default and maximum page sizes.
func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type UserPage struct {
	Users []model.User
	Total int
}

type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// UserService is the admin view over accounts.
type UserService interface {
	ListUsers(ctx context.Context, query, role string, page Page) (UserPage, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (model.User, error)
	// UpdateRole changes another user's role. Admins cannot demote themselves.
	UpdateRole(ctx context.Context, actorID, id int64, role string) (model.User, error)
	// DeleteUser removes another user and everything they own.
	DeleteUser(ctx context.Context, actorID, id int64) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context, query, role string, page Page) (UserPage, error) {
	if role != "" && !model.IsValidRole(role) {
		return UserPage{}, invalidf("unknown role %q", role)
	}
	page = page.normalize()
	filter := repository.UserListFilter{
		Query:  strings.TrimSpace(query),
		Role:   role,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return UserPage{}, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return UserPage{}, fmt.Errorf("count users: %w", err)
	}
	return UserPage{Users: users, Total: total}, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	user, err := createAccount(ctx, s.users, s.users.Create, in.Email, in.Password, in.FullName, role)
	if err != nil {
		return model.User{}, err
	}
	logger.Info("user created", "module", "service", "action", "create", "resource", "user", "result", "ok", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) UpdateRole(ctx context.Context, actorID, id int64, role string) (model.User, error) {
	if !model.IsValidRole(role) {
		return model.User{}, invalidf("unknown role %q", role)
	}
	if actorID == id && role != model.RoleAdmin {
		return model.User{}, fmt.Errorf("%w: cannot demote yourself", ErrForbidden)
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return model.User{}, err
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return model.User{}, fmt.Errorf("update role: %w", err)
	}
	logger.Info("user role updated", "module", "service", "action", "update", "resource", "user", "result", "ok", "user_id", id, "role", role, "actor_id", actorID)
	return s.GetUser(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return fmt.Errorf("%w: cannot delete yourself", ErrForbidden)
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	logger.Info("user deleted", "module", "service", "action", "delete", "resource", "user", "result", "ok", "user_id", id, "actor_id", actorID)
	return nil
}
