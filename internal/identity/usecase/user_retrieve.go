package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/identity/entity"
)

func (s *Usecase) RetrieveUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "RetrieveUserByID")
	defer span.End()

	return s.retrieve(ctx, id)
}

func (s *Usecase) RetrieveAllUsers(ctx context.Context) ([]entity.User, error) {
	ctx, span := s.startSpan(ctx, "RetrieveAllUsers")
	defer span.End()

	return s.repoDB.SelectAllUsers(ctx)
}
