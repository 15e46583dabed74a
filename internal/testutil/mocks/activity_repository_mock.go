package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/lexiflash/internal/models"
)

// MockActivityRepository is a mock implementation of repository.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Upsert(ctx context.Context, a models.DailyActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) AddWordsStudied(ctx context.Context, date string, n int) error {
	args := m.Called(ctx, date, n)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, from, to string) ([]models.DailyActivity, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyActivity), args.Error(1)
}
