package port

import (
	"context"

	"tms/internal/domain"
)

// PincodeLookup resolves a PIN code to its address details.
type PincodeLookup interface {
	LookupPincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error)
}

// IFSCLookup resolves an IFSC code to its bank branch.
type IFSCLookup interface {
	LookupIFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error)
}
