package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/router"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
)

type uc interface {
	AddUser(ctx context.Context, user *entity.User) (*entity.User, error)
	ModifyUser(ctx context.Context, user *entity.User) (*entity.User, error)
	RemoveUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	RetrieveUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	RetrieveAllUsers(ctx context.Context) ([]entity.User, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, ids uid.RecordID) {
	end := &HTTPEndpoint{uc: uc, ids: ids}

	r.GET("/api/v1/users", end.UserList)
	r.POST("/api/v1/users", end.UserCreate)
	r.GET("/api/v1/users/:id", end.UserDetail)
	r.PUT("/api/v1/users/:id", end.UserUpdate)
	r.DELETE("/api/v1/users/:id", end.UserDelete)
}
