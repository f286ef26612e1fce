package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// AddStudent stamps the audit dates and inserts student.
func (s *Usecase) AddStudent(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "AddStudent")
	defer span.End()

	if student == nil {
		return nil, s.reject(ctx, entity.KindStudent, &goerror.NullEntityError{Entity: entity.KindStudent})
	}

	if cause := record.CheckAdd(s.validator, entity.KindStudent, student, student.Audit); cause != nil {
		return nil, s.reject(ctx, entity.KindStudent, cause)
	}

	in := *student
	in.Created(s.clock.Now())

	return s.repoDB.InsertStudent(ctx, in)
}

// ModifyStudent replaces a stored student, keeping its creation audit.
// CreatedBy and CreatedDate on student are ignored.
func (s *Usecase) ModifyStudent(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "ModifyStudent")
	defer span.End()

	if student == nil {
		return nil, s.reject(ctx, entity.KindStudent, &goerror.NullEntityError{Entity: entity.KindStudent})
	}

	if cause := record.CheckModify(s.validator, entity.KindStudent, student, student.Audit); cause != nil {
		return nil, s.reject(ctx, entity.KindStudent, cause)
	}

	stored, err := s.repoDB.SelectStudentByID(ctx, student.ID)
	if missing(stored, err) {
		return nil, s.reject(ctx, entity.KindStudent, &goerror.NotFoundError{Entity: entity.KindStudent, ID: student.ID})
	}
	if err != nil {
		return nil, err
	}

	in := *student
	in.Updated(s.clock.Now(), stored.Audit)

	return s.repoDB.UpdateStudent(ctx, in)
}

// RemoveStudentByID deletes the student and returns what was stored.
// Links to contacts are removed with it.
func (s *Usecase) RemoveStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "RemoveStudentByID")
	defer span.End()

	if _, err := s.retrieveStudent(ctx, id); err != nil {
		return nil, err
	}

	return s.repoDB.DeleteStudent(ctx, id)
}

func (s *Usecase) RetrieveStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	ctx, span := s.startSpan(ctx, "RetrieveStudentByID")
	defer span.End()

	return s.retrieveStudent(ctx, id)
}

func (s *Usecase) RetrieveAllStudents(ctx context.Context) ([]entity.Student, error) {
	ctx, span := s.startSpan(ctx, "RetrieveAllStudents")
	defer span.End()

	return s.repoDB.SelectAllStudents(ctx)
}

func (s *Usecase) retrieveStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	if cause := record.CheckID(entity.KindStudent, "ID", id); cause != nil {
		return nil, s.reject(ctx, entity.KindStudent, cause)
	}

	student, err := s.repoDB.SelectStudentByID(ctx, id)
	if missing(student, err) {
		return nil, s.reject(ctx, entity.KindStudent, &goerror.NotFoundError{Entity: entity.KindStudent, ID: id})
	}
	if err != nil {
		return nil, err
	}

	return student, nil
}
