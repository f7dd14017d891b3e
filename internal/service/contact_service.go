package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

type ContactInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	RemoteIP string
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (model.ContactMessage, error)
	// List returns messages newest first; handled nil means all.
	List(ctx context.Context, handled *bool, page Page) ([]model.ContactMessage, error)
	MarkHandled(ctx context.Context, id int64, handled bool) (model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (model.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)

	switch {
	case name == "":
		return model.ContactMessage{}, invalidf("name is required")
	case utf8.RuneCountInString(name) > 100:
		return model.ContactMessage{}, invalidf("name is too long")
	case utf8.RuneCountInString(subject) > 200:
		return model.ContactMessage{}, invalidf("subject is too long")
	case message == "":
		return model.ContactMessage{}, invalidf("message is required")
	case utf8.RuneCountInString(message) > 5000:
		return model.ContactMessage{}, invalidf("message is too long")
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return model.ContactMessage{}, err
	}

	msg := model.ContactMessage{Name: name, Email: email, Subject: subject, Message: message}
	if in.RemoteIP != "" {
		ip := in.RemoteIP
		msg.RemoteIP = &ip
	}
	saved, err := s.repo.Create(ctx, msg)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	logger.Info("contact message received", "module", "service", "action", "create", "resource", "contact", "result", "ok", "id", saved.ID)
	return saved, nil
}

func (s *contactService) List(ctx context.Context, handled *bool, page Page) ([]model.ContactMessage, error) {
	page = page.normalize()
	msgs, err := s.repo.List(ctx, repository.ContactListFilter{Handled: handled, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func (s *contactService) MarkHandled(ctx context.Context, id int64, handled bool) (model.ContactMessage, error) {
	if err := s.repo.MarkHandled(ctx, id, handled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContactMessage{}, ErrNotFound
		}
		return model.ContactMessage{}, fmt.Errorf("mark contact message: %w", err)
	}
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("get contact message: %w", err)
	}
	return msg, nil
}
