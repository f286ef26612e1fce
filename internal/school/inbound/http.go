package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/router"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
	"github.com/shandysiswandi/campus/internal/school/entity"
)

type uc interface {
	AddStudent(ctx context.Context, student *entity.Student) (*entity.Student, error)
	ModifyStudent(ctx context.Context, student *entity.Student) (*entity.Student, error)
	RemoveStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	RetrieveStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	RetrieveAllStudents(ctx context.Context) ([]entity.Student, error)

	AddContact(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	ModifyContact(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	RemoveContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	RetrieveContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	RetrieveAllContacts(ctx context.Context) ([]entity.Contact, error)

	AddStudentContact(ctx context.Context, sc *entity.StudentContact) (*entity.StudentContact, error)
	RetrieveStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error)
	RetrieveAllStudentContacts(ctx context.Context) ([]entity.StudentContact, error)
	RemoveStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, ids uid.RecordID) {
	end := &HTTPEndpoint{uc: uc, ids: ids}

	r.GET("/api/v1/students", end.StudentList)
	r.POST("/api/v1/students", end.StudentCreate)
	r.GET("/api/v1/students/:id", end.StudentDetail)
	r.PUT("/api/v1/students/:id", end.StudentUpdate)
	r.DELETE("/api/v1/students/:id", end.StudentDelete)

	r.GET("/api/v1/contacts", end.ContactList)
	r.POST("/api/v1/contacts", end.ContactCreate)
	r.GET("/api/v1/contacts/:id", end.ContactDetail)
	r.PUT("/api/v1/contacts/:id", end.ContactUpdate)
	r.DELETE("/api/v1/contacts/:id", end.ContactDelete)

	r.GET("/api/v1/student-contacts", end.StudentContactList)
	r.POST("/api/v1/student-contacts", end.StudentContactCreate)
	r.GET("/api/v1/student-contacts/:student_id/:contact_id", end.StudentContactDetail)
	r.DELETE("/api/v1/student-contacts/:student_id/:contact_id", end.StudentContactDelete)
}
