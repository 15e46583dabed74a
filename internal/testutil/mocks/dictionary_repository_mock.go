package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/lexiflash/internal/models"
)

// MockDictionaryRepository is a mock implementation of repository.DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) Insert(ctx context.Context, d models.Dictionary) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDictionaryRepository) Get(ctx context.Context, id int64) (*models.Dictionary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dictionary), args.Error(1)
}

func (m *MockDictionaryRepository) List(ctx context.Context) ([]models.Dictionary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dictionary), args.Error(1)
}

func (m *MockDictionaryRepository) InsertSet(ctx context.Context, set models.WordSet) (int64, error) {
	args := m.Called(ctx, set)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDictionaryRepository) GetSet(ctx context.Context, id int64) (*models.WordSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WordSet), args.Error(1)
}

func (m *MockDictionaryRepository) ListSets(ctx context.Context, dictionaryID int64) ([]models.WordSet, error) {
	args := m.Called(ctx, dictionaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WordSet), args.Error(1)
}
