package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/shandysiswandi/campus/internal/pkg/jwt"
	"github.com/shandysiswandi/campus/internal/pkg/router"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// HTTPEndpoint exposes HTTP handlers for user management.
type HTTPEndpoint struct {
	uc  uc
	ids uid.RecordID
}

func (req UserRequest) toEntity() entity.User {
	return entity.User{
		UserName:    req.UserName,
		Name:        req.Name,
		FamilyName:  req.FamilyName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
}

// UserList returns every user.
// @Summary List users
// @Tags Identity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]UserResponse} "Users"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	users, err := h.uc.RetrieveAllUsers(r.Context())
	if err != nil {
		return nil, err
	}

	return UserListResponse(lo.Map(users, func(u entity.User, _ int) UserResponse {
		return toUserResponse(u)
	})), nil
}

// UserDetail returns a single user.
// @Summary Get user
// @Tags Identity
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (uuid)"
// @Success 200 {object} router.successResponse{data=UserResponse} "User"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/users/{id} [get]
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	user, err := h.uc.RetrieveUserByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toUserResponse(*user), nil
}

// UserCreate creates a user on behalf of the authenticated caller.
// @Summary Create user
// @Description Send an Idempotency-Key header to make retries safe.
// @Tags Identity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body UserRequest true "User payload"
// @Success 201 {object} router.successResponse{data=UserResponse} "User created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "User already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/users [post]
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req UserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	actor := jwt.ActorID(r.Context())
	in := req.toEntity()
	in.ID = h.ids.NewID()
	in.Audit = record.Audit{CreatedBy: actor, UpdatedBy: actor}

	user, err := h.uc.AddUser(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return UserCreateResponse{toUserResponse(*user)}, nil
}

// UserUpdate replaces the editable fields of a user.
// @Summary Update user
// @Tags Identity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (uuid)"
// @Param request body UserRequest true "User payload"
// @Success 200 {object} router.successResponse{data=UserResponse} "User updated"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/users/{id} [put]
func (h *HTTPEndpoint) UserUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	var req UserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := req.toEntity()
	in.ID = id
	in.UpdatedBy = jwt.ActorID(r.Context())

	user, err := h.uc.ModifyUser(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return toUserResponse(*user), nil
}

// UserDelete removes a user and returns the removed record.
// @Summary Delete user
// @Tags Identity
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID (uuid)"
// @Success 200 {object} router.successResponse{data=UserResponse} "User deleted"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/users/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	user, err := h.uc.RemoveUserByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return UserDeleteResponse{toUserResponse(*user)}, nil
}
