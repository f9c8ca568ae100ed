package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

type MockAnimalRepository struct {
	mock.Mock
}

func (m *MockAnimalRepository) Create(ctx context.Context, rec model.Record) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnimalRepository) Read(ctx context.Context, filter model.Filter, opts repository.ReadOptions) ([]model.Record, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockAnimalRepository) ReadAll(ctx context.Context, projection model.Projection, limit int64) ([]model.Record, error) {
	args := m.Called(ctx, projection, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockAnimalRepository) Update(ctx context.Context, filter model.Filter, values model.Record) (int64, error) {
	args := m.Called(ctx, filter, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) Delete(ctx context.Context, filter model.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
