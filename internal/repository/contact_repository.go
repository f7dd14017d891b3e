package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

type ContactListFilter struct {
	Handled *bool
	Limit   int
	Offset  int
}

type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (model.ContactMessage, error)
	List(ctx context.Context, filter ContactListFilter) ([]model.ContactMessage, error)
	MarkHandled(ctx context.Context, id int64, handled bool) error
}

type contactRepository struct {
	db dbtx
}

func NewContactRepository(db dbtx) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	msg.ID = snowflake.NextID()
	msg.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, handled, remote_ip, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		boolToInt(msg.Handled),
		nullableString(msg.RemoteIP),
		formatTime(msg.CreatedAt),
	)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (model.ContactMessage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, subject, message, handled, remote_ip, created_at FROM contact_messages WHERE id = ?`, id)
	msg, err := scanContact(row)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("get contact message: %w", err)
	}
	return msg, nil
}

func (r *contactRepository) List(ctx context.Context, filter ContactListFilter) ([]model.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, handled, remote_ip, created_at FROM contact_messages`
	var args []any
	if filter.Handled != nil {
		query += " WHERE handled = ?"
		args = append(args, boolToInt(*filter.Handled))
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]model.ContactMessage, 0)
	for rows.Next() {
		msg, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (r *contactRepository) MarkHandled(ctx context.Context, id int64, handled bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET handled = ? WHERE id = ?`, boolToInt(handled), id)
	if err != nil {
		return fmt.Errorf("mark contact message: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mark contact message: %w", sql.ErrNoRows)
	}
	return nil
}

func scanContact(row rowScanner) (model.ContactMessage, error) {
	var msg model.ContactMessage
	var handled int
	var remoteIP sql.NullString
	var createdAt string
	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &handled, &remoteIP, &createdAt); err != nil {
		return model.ContactMessage{}, err
	}
	msg.Handled = handled == 1
	msg.RemoteIP = stringPtr(remoteIP)
	msg.CreatedAt, _ = parseTime(createdAt)
	return msg, nil
}
