package service

import (
	"context"
	"fmt"
	"time"

	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/validation"
)

// LookupService resolves address and bank details for form autofill.
type LookupService interface {
	Pincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error)
	IFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error)
}

type lookupService struct {
	engine  *validation.Engine
	pincode port.PincodeLookup
	ifsc    port.IFSCLookup
	timeout time.Duration
}

// NewLookupService creates a new LookupService. Each call is bounded by timeout.
func NewLookupService(engine *validation.Engine, pincode port.PincodeLookup, ifsc port.IFSCLookup, timeout time.Duration) LookupService {
	return &lookupService{engine: engine, pincode: pincode, ifsc: ifsc, timeout: timeout}
}

// checked validates value with rule before any network call and returns
// the normalized value.
func (s *lookupService) checked(value string, rule validation.RuleName) (string, error) {
	res := s.engine.ValidateField(value, rule, true)
	if !res.IsValid {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLookupInput, res.Error)
	}
	return s.engine.NormalizeValue(value, rule), nil
}

func (s *lookupService) Pincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error) {
	pin, err := s.checked(pincode, validation.RulePincode)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.pincode.LookupPincode(ctx, pin)
}

func (s *lookupService) IFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error) {
	code, err := s.checked(ifsc, validation.RuleIFSC)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.ifsc.LookupIFSC(ctx, code)
}
