package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tms/internal/domain"
)

// MockLookupService is a mock implementation of service.LookupService.
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Pincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PincodeDetails), args.Error(1)
}

func (m *MockLookupService) IFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error) {
	args := m.Called(ctx, ifsc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankBranch), args.Error(1)
}
