package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/validation"
)

// MockFormRecordRepo is a mock implementation of port.FormRecordRepository.
type MockFormRecordRepo struct {
	mock.Mock
}

func (m *MockFormRecordRepo) Create(ctx context.Context, record *domain.FormRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFormRecordRepo) GetByID(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error) {
	args := m.Called(ctx, module, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormRecord), args.Error(1)
}

func (m *MockFormRecordRepo) List(ctx context.Context, filter port.RecordFilter) ([]domain.FormRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FormRecord), args.Int(1), args.Error(2)
}

func (m *MockFormRecordRepo) ListAll(ctx context.Context, module validation.Module) ([]domain.FormRecord, error) {
	args := m.Called(ctx, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormRecord), args.Error(1)
}

func (m *MockFormRecordRepo) Update(ctx context.Context, record *domain.FormRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFormRecordRepo) Delete(ctx context.Context, module validation.Module, id uuid.UUID) error {
	args := m.Called(ctx, module, id)
	return args.Error(0)
}
