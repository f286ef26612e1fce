package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/campus/internal/identity/entity"
)

type UserRequest struct {
	UserName    string `json:"user_name"`
	Name        string `json:"name"`
	FamilyName  string `json:"family_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	Name        string    `json:"name"`
	FamilyName  string    `json:"family_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

func toUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		UserName:    u.UserName,
		Name:        u.Name,
		FamilyName:  u.FamilyName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedDate: u.CreatedDate,
		UpdatedDate: u.UpdatedDate,
		CreatedBy:   u.CreatedBy.String(),
		UpdatedBy:   u.UpdatedBy.String(),
	}
}

type UserCreateResponse struct {
	UserResponse
}

func (UserCreateResponse) StatusCode() int { return http.StatusCreated }

func (UserCreateResponse) Message() string { return "User created" }

type UserDeleteResponse struct {
	UserResponse
}

func (UserDeleteResponse) Message() string { return "User deleted" }

type UserListResponse []UserResponse

func (r UserListResponse) Meta() map[string]any {
	return map[string]any{"total": len(r)}
}
