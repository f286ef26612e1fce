package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/stretchr/testify/mock"
)

type MockRepoDB struct {
	mock.Mock
}

func one[T any](args mock.Arguments) (*T, error) {
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func all[T any](args mock.Arguments) ([]T, error) {
	v, _ := args.Get(0).([]T)
	return v, args.Error(1)
}

func (m *MockRepoDB) InsertStudent(ctx context.Context, student entity.Student) (*entity.Student, error) {
	return one[entity.Student](m.Called(ctx, student))
}

func (m *MockRepoDB) SelectAllStudents(ctx context.Context) ([]entity.Student, error) {
	return all[entity.Student](m.Called(ctx))
}

func (m *MockRepoDB) SelectStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return one[entity.Student](m.Called(ctx, id))
}

func (m *MockRepoDB) UpdateStudent(ctx context.Context, student entity.Student) (*entity.Student, error) {
	return one[entity.Student](m.Called(ctx, student))
}

func (m *MockRepoDB) DeleteStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return one[entity.Student](m.Called(ctx, id))
}

func (m *MockRepoDB) InsertContact(ctx context.Context, contact entity.Contact) (*entity.Contact, error) {
	return one[entity.Contact](m.Called(ctx, contact))
}

func (m *MockRepoDB) SelectAllContacts(ctx context.Context) ([]entity.Contact, error) {
	return all[entity.Contact](m.Called(ctx))
}

func (m *MockRepoDB) SelectContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	return one[entity.Contact](m.Called(ctx, id))
}

func (m *MockRepoDB) UpdateContact(ctx context.Context, contact entity.Contact) (*entity.Contact, error) {
	return one[entity.Contact](m.Called(ctx, contact))
}

func (m *MockRepoDB) DeleteContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	return one[entity.Contact](m.Called(ctx, id))
}

func (m *MockRepoDB) InsertStudentContact(ctx context.Context, sc entity.StudentContact) (*entity.StudentContact, error) {
	return one[entity.StudentContact](m.Called(ctx, sc))
}

func (m *MockRepoDB) SelectAllStudentContacts(ctx context.Context) ([]entity.StudentContact, error) {
	return all[entity.StudentContact](m.Called(ctx))
}

func (m *MockRepoDB) SelectStudentContactByID(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error) {
	return one[entity.StudentContact](m.Called(ctx, studentID, contactID))
}

func (m *MockRepoDB) DeleteStudentContact(ctx context.Context, studentID, contactID uuid.UUID) (*entity.StudentContact, error) {
	return one[entity.StudentContact](m.Called(ctx, studentID, contactID))
}

type MockClock struct {
	mock.Mock
}

func (m *MockClock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Error(ctx context.Context, err error) {
	m.Called(ctx, err)
}
