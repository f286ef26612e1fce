package inbound

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

type AuditResponse struct {
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

func toAuditResponse(a record.Audit) AuditResponse {
	return AuditResponse{
		CreatedDate: a.CreatedDate,
		UpdatedDate: a.UpdatedDate,
		CreatedBy:   a.CreatedBy.String(),
		UpdatedBy:   a.UpdatedBy.String(),
	}
}

type StudentRequest struct {
	IdentityNumber string `json:"identity_number"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	BirthDate      string `json:"birth_date" example:"2012-12-10"`
	Gender         string `json:"gender" enums:"male,female,other"`
}

// toEntity leaves BirthDate zero when it is empty so the usecase reports it
// as a missing field.
func (req StudentRequest) toEntity() (entity.Student, error) {
	st := entity.Student{
		IdentityNumber: req.IdentityNumber,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Gender:         entity.ParseGender(strings.ToLower(strings.TrimSpace(req.Gender))),
	}

	if s := strings.TrimSpace(req.BirthDate); s != "" {
		date, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return entity.Student{}, goerror.NewInvalidInput(nil, "birth_date", "must be a date formatted as YYYY-MM-DD")
		}
		st.BirthDate = date
	}

	return st, nil
}

type StudentResponse struct {
	ID             string `json:"id"`
	IdentityNumber string `json:"identity_number"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name"`
	BirthDate      string `json:"birth_date"`
	Gender         string `json:"gender"`
	AuditResponse
}

func toStudentResponse(st entity.Student) StudentResponse {
	return StudentResponse{
		ID:             st.ID.String(),
		IdentityNumber: st.IdentityNumber,
		FirstName:      st.FirstName,
		MiddleName:     st.MiddleName,
		LastName:       st.LastName,
		BirthDate:      st.BirthDate.Format(time.DateOnly),
		Gender:         st.Gender.String(),
		AuditResponse:  toAuditResponse(st.Audit),
	}
}

type ContactRequest struct {
	Information string `json:"information"`
	Notes       string `json:"notes"`
	Type        string `json:"type" enums:"phone,email,address,other"`
}

func (req ContactRequest) toEntity() entity.Contact {
	return entity.Contact{
		Information: req.Information,
		Notes:       req.Notes,
		Type:        entity.ParseContactType(strings.ToLower(strings.TrimSpace(req.Type))),
	}
}

type ContactResponse struct {
	ID          string `json:"id"`
	Information string `json:"information"`
	Notes       string `json:"notes,omitempty"`
	Type        string `json:"type"`
	AuditResponse
}

func toContactResponse(c entity.Contact) ContactResponse {
	return ContactResponse{
		ID:            c.ID.String(),
		Information:   c.Information,
		Notes:         c.Notes,
		Type:          c.Type.String(),
		AuditResponse: toAuditResponse(c.Audit),
	}
}

// StudentContactRequest carries the ids as text so a malformed id reaches
// the usecase as uuid.Nil and is reported on its field.
type StudentContactRequest struct {
	StudentID string `json:"student_id"`
	ContactID string `json:"contact_id"`
}

func (req StudentContactRequest) toEntity() entity.StudentContact {
	return entity.StudentContact{
		StudentID: parseOrNil(req.StudentID),
		ContactID: parseOrNil(req.ContactID),
	}
}

func parseOrNil(s string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}

type StudentContactResponse struct {
	StudentID string `json:"student_id"`
	ContactID string `json:"contact_id"`
	AuditResponse
}

func toStudentContactResponse(sc entity.StudentContact) StudentContactResponse {
	return StudentContactResponse{
		StudentID:     sc.StudentID.String(),
		ContactID:     sc.ContactID.String(),
		AuditResponse: toAuditResponse(sc.Audit),
	}
}

type created[T any] struct {
	Data T
	msg  string
}

func (c created[T]) StatusCode() int { return http.StatusCreated }

func (c created[T]) Message() string { return c.msg }

func (c created[T]) MarshalJSON() ([]byte, error) { return json.Marshal(c.Data) }

type list[T any] []T

func (l list[T]) Meta() map[string]any {
	return map[string]any{"total": len(l)}
}
