package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelterapi/internal/model"
	"shelterapi/internal/rescue"
	"shelterapi/internal/service"
)

type MockShelterService struct {
	mock.Mock
}

func (m *MockShelterService) Create(ctx context.Context, rec model.Record) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

func (m *MockShelterService) Find(ctx context.Context, filter model.Filter, projection model.Projection, limit int64) ([]model.Record, error) {
	args := m.Called(ctx, filter, projection, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockShelterService) List(ctx context.Context, projection model.Projection, limit int64) ([]model.Record, error) {
	args := m.Called(ctx, projection, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockShelterService) FindByRescueType(ctx context.Context, label string, projection model.Projection, limit int64) ([]model.Record, error) {
	args := m.Called(ctx, label, projection, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockShelterService) Update(ctx context.Context, filter model.Filter, values model.Record) (int64, error) {
	args := m.Called(ctx, filter, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShelterService) Delete(ctx context.Context, filter model.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShelterService) RescueProfiles() []rescue.Profile {
	args := m.Called()
	return args.Get(0).([]rescue.Profile)
}

func (m *MockShelterService) Export(ctx context.Context, label string) (*service.ExportResult, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockShelterService) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
