package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// RemoveUserByID deletes the user and returns what was stored.
func (s *Usecase) RemoveUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "RemoveUserByID")
	defer span.End()

	if _, err := s.retrieve(ctx, id); err != nil {
		return nil, err
	}

	return s.repoDB.DeleteUser(ctx, id)
}

func (s *Usecase) retrieve(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if cause := record.CheckID(entity.KindUser, "ID", id); cause != nil {
		return nil, s.reject(ctx, cause)
	}

	user, err := s.repoDB.SelectUserByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) || (err == nil && user == nil) {
		return nil, s.reject(ctx, &goerror.NotFoundError{Entity: entity.KindUser, ID: id})
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
