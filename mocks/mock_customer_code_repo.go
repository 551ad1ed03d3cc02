package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCustomerCodeRepo is a mock implementation of port.CustomerCodeRepository.
type MockCustomerCodeRepo struct {
	mock.Mock
}

func (m *MockCustomerCodeRepo) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
