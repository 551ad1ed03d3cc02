package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tms/internal/domain"
)

// MockPincodeLookup is a mock implementation of port.PincodeLookup.
type MockPincodeLookup struct {
	mock.Mock
}

func (m *MockPincodeLookup) LookupPincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PincodeDetails), args.Error(1)
}

// MockIFSCLookup is a mock implementation of port.IFSCLookup.
type MockIFSCLookup struct {
	mock.Mock
}

func (m *MockIFSCLookup) LookupIFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error) {
	args := m.Called(ctx, ifsc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankBranch), args.Error(1)
}
