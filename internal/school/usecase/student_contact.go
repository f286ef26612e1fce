package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// AddStudentContact links an existing student to an existing contact. The
// student is looked up before the contact; the first missing one is
// reported as a dependency error on the field that references it.
func (s *Usecase) AddStudentContact(ctx context.Context, sc *entity.StudentContact) (*entity.StudentContact, error) {
	ctx, span := s.startSpan(ctx, "AddStudentContact")
	defer span.End()

	if sc == nil {
		return nil, s.reject(ctx, entity.KindStudentContact, &goerror.NullEntityError{Entity: entity.KindStudentContact})
	}

	if cause := record.CheckAdd(s.validator, entity.KindStudentContact, sc, sc.Audit); cause != nil {
		return nil, s.reject(ctx, entity.KindStudentContact, cause)
	}

	student, err := s.repoDB.SelectStudentByID(ctx, sc.StudentID)
	if missing(student, err) {
		return nil, s.reject(ctx, entity.KindStudentContact,
			&goerror.DependencyError{Entity: entity.KindStudentContact, Field: "StudentID", ID: sc.StudentID})
	}
	if err != nil {
		return nil, err
	}

	contact, err := s.repoDB.SelectContactByID(ctx, sc.ContactID)
	if missing(contact, err) {
		return nil, s.reject(ctx, entity.KindStudentContact,
			&goerror.DependencyError{Entity: entity.KindStudentContact, Field: "ContactID", ID: sc.ContactID})
	}
	if err != nil {
		return nil, err
	}

	in := *sc
	in.Created(s.clock.Now())

	return s.repoDB.InsertStudentContact(ctx, in)
}

func (s *Usecase) RetrieveStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error) {
	ctx, span := s.startSpan(ctx, "RetrieveStudentContactByID")
	defer span.End()

	return s.retrieveStudentContact(ctx, studentID, contactID)
}

func (s *Usecase) RetrieveAllStudentContacts(ctx context.Context) ([]entity.StudentContact, error) {
	ctx, span := s.startSpan(ctx, "RetrieveAllStudentContacts")
	defer span.End()

	return s.repoDB.SelectAllStudentContacts(ctx)
}

// RemoveStudentContactByID unlinks a contact from a student. The student and
// contact themselves are kept.
func (s *Usecase) RemoveStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error) {
	ctx, span := s.startSpan(ctx, "RemoveStudentContactByID")
	defer span.End()

	if _, err := s.retrieveStudentContact(ctx, studentID, contactID); err != nil {
		return nil, err
	}

	return s.repoDB.DeleteStudentContact(ctx, studentID, contactID)
}

func (s *Usecase) retrieveStudentContact(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error) {
	if cause := record.CheckID(entity.KindStudentContact, "StudentID", studentID); cause != nil {
		return nil, s.reject(ctx, entity.KindStudentContact, cause)
	}
	if cause := record.CheckID(entity.KindStudentContact, "ContactID", contactID); cause != nil {
		return nil, s.reject(ctx, entity.KindStudentContact, cause)
	}

	sc, err := s.repoDB.SelectStudentContactByID(ctx, studentID, contactID)
	if missing(sc, err) {
		return nil, s.reject(ctx, entity.KindStudentContact, &goerror.NotFoundError{
			Entity: entity.KindStudentContact,
			ID:     entity.StudentContactKey(studentID, contactID),
		})
	}
	if err != nil {
		return nil, err
	}

	return sc, nil
}
