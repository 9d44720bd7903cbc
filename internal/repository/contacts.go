package repository

import (
	"context"
	"log/slog"

	"github.com/Qyuzet/onecarbon/gen/ent"
	"github.com/Qyuzet/onecarbon/internal/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, name, email, message string) (*entity.ContactMessage, error)
}

type contactRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewContactRepository(entc *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepo{ent: entc, logger: logger}
}

func (r *contactRepo) Create(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	row, err := r.ent.ContactMessage.Create().
		SetName(name).
		SetEmail(email).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store contact message", "email", email, "error", err)
		return nil, err
	}
	return &entity.ContactMessage{
		ID:         row.ID,
		Name:       row.Name,
		Email:      row.Email,
		Message:    row.Message,
		ReceivedAt: row.ReceivedAt,
	}, nil
}
