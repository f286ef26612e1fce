package usecase

import (
	"context"

	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// AddUser stamps the audit dates and inserts user.
func (s *Usecase) AddUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "AddUser")
	defer span.End()

	if user == nil {
		return nil, s.reject(ctx, &goerror.NullEntityError{Entity: entity.KindUser})
	}

	if cause := record.CheckAdd(s.validator, entity.KindUser, user, user.Audit); cause != nil {
		return nil, s.reject(ctx, cause)
	}

	in := *user
	in.Created(s.clock.Now())

	return s.repoDB.InsertUser(ctx, in)
}
