package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/identity/entity"
	"github.com/stretchr/testify/mock"
)

type MockRepoDB struct {
	mock.Mock
}

func (m *MockRepoDB) user(args mock.Arguments) (*entity.User, error) {
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockRepoDB) InsertUser(ctx context.Context, user entity.User) (*entity.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockRepoDB) SelectAllUsers(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockRepoDB) SelectUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockRepoDB) UpdateUser(ctx context.Context, user entity.User) (*entity.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockRepoDB) DeleteUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
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
