package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/service"
	"tms/internal/validation"
)

// MockFormService is a mock implementation of service.FormService.
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Validate(ctx context.Context, module validation.Module, data validation.FormData) (*service.FormValidation, error) {
	args := m.Called(ctx, module, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FormValidation), args.Error(1)
}

func (m *MockFormService) ValidateField(ctx context.Context, input service.ValidateFieldInput) *service.FieldCheck {
	args := m.Called(ctx, input)
	return args.Get(0).(*service.FieldCheck)
}

func (m *MockFormService) Create(ctx context.Context, input service.CreateRecordInput) (*domain.FormRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormRecord), args.Error(1)
}

func (m *MockFormService) Get(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error) {
	args := m.Called(ctx, module, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormRecord), args.Error(1)
}

func (m *MockFormService) List(ctx context.Context, filter port.RecordFilter) ([]domain.FormRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FormRecord), args.Int(1), args.Error(2)
}

func (m *MockFormService) Update(ctx context.Context, module validation.Module, id uuid.UUID, patch validation.FormData) (*domain.FormRecord, error) {
	args := m.Called(ctx, module, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormRecord), args.Error(1)
}

func (m *MockFormService) Delete(ctx context.Context, module validation.Module, id uuid.UUID) error {
	args := m.Called(ctx, module, id)
	return args.Error(0)
}

func (m *MockFormService) Export(ctx context.Context, module validation.Module, w io.Writer) error {
	args := m.Called(ctx, module, w)
	return args.Error(0)
}

func (m *MockFormService) Import(ctx context.Context, module validation.Module, r io.Reader, createdBy uuid.UUID, dryRun bool) (*service.ImportReport, error) {
	args := m.Called(ctx, module, r, createdBy, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportReport), args.Error(1)
}

func (m *MockFormService) NextCustomerCode(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
