package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// ModifyUser replaces a stored user, keeping its creation audit.
// CreatedBy and CreatedDate on user are ignored; the stored values are kept.
func (s *Usecase) ModifyUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "ModifyUser")
	defer span.End()

	if user == nil {
		return nil, s.reject(ctx, &goerror.NullEntityError{Entity: entity.KindUser})
	}

	if cause := record.CheckModify(s.validator, entity.KindUser, user, user.Audit); cause != nil {
		return nil, s.reject(ctx, cause)
	}

	stored, err := s.repoDB.SelectUserByID(ctx, user.ID)
	if errors.Is(err, goerror.ErrNotFound) || (err == nil && stored == nil) {
		return nil, s.reject(ctx, &goerror.NotFoundError{Entity: entity.KindUser, ID: user.ID})
	}
	if err != nil {
		return nil, err
	}

	in := *user
	in.Updated(s.clock.Now(), stored.Audit)

	return s.repoDB.UpdateUser(ctx, in)
}
