package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

type UserListFilter struct {
	Query  string // case-insensitive match on email or full name
	Role   string
	Limit  int
	Offset int
}

type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	// CreateOrBootstrap creates user as admin when no account exists yet.
	CreateOrBootstrap(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, filter UserListFilter) ([]model.User, error)
	Count(ctx context.Context, filter UserListFilter) (int, error)
	CountAll(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, id int64, fullName string) (model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role string) error
	TouchLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db dbtx
}

func NewUserRepository(db dbtx) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, full_name, password_hash, role, last_login_at, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	user.ID = snowflake.NextID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, email, full_name, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Role,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// The emptiness check and the insert are one statement, so concurrent
// sign-ups cannot both become admin.
func (r *userRepository) CreateOrBootstrap(ctx context.Context, user model.User) (model.User, error) {
	user.ID = snowflake.NextID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO users (id, email, full_name, password_hash, role, created_at, updated_at)
		 SELECT ?, ?, ?, ?, CASE WHEN EXISTS (SELECT 1 FROM users) THEN ? ELSE ? END, ?, ?
		 RETURNING role`,
		user.ID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Role,
		model.RoleAdmin,
		formatTime(now),
		formatTime(now),
	).Scan(&user.Role)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email)))
	user, err := scanUser(row)
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func buildUserWhere(filter UserListFilter) (string, []any) {
	var conditions []string
	var args []any
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		conditions = append(conditions, `(LOWER(email) LIKE ? ESCAPE '\' OR LOWER(full_name) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if filter.Role != "" {
		conditions = append(conditions, "role = ?")
		args = append(args, filter.Role)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *userRepository) List(ctx context.Context, filter UserListFilter) ([]model.User, error) {
	where, args := buildUserWhere(filter)
	query := `SELECT ` + userColumns + ` FROM users` + where + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, filter UserListFilter) (int, error) {
	where, args := buildUserWhere(filter)
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) CountAll(ctx context.Context) (int, error) {
	return r.Count(ctx, UserListFilter{})
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, fullName string) (model.User, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET full_name = ?, updated_at = ? WHERE id = ?`, fullName, formatTime(time.Now()), id)
	if err != nil {
		return model.User{}, fmt.Errorf("update profile: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, passwordHash, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, role, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *userRepository) TouchLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("touch login: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row rowScanner) (model.User, error) {
	var user model.User
	var lastLogin sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.Role, &lastLogin, &createdAt, &updatedAt); err != nil {
		return model.User{}, err
	}
	user.LastLoginAt = parseTimePtr(lastLogin)
	var err error
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.User{}, fmt.Errorf("parse user created_at: %w", err)
	}
	if user.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.User{}, fmt.Errorf("parse user updated_at: %w", err)
	}
	return user, nil
}
