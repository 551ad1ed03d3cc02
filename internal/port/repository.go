package port

import (
	"context"

	"github.com/google/uuid"

	"tms/internal/domain"
	"tms/internal/validation"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordFilter narrows a record listing.
type RecordFilter struct {
	Module validation.Module
	// Search matches display name or code, case-insensitively.
	Search string
	Offset int
	Limit  int
}

// FormRecordRepository defines the contract for master-data record persistence.
// All query methods include the module so one module's records never leak
// into another's.
type FormRecordRepository interface {
	// Create returns domain.ErrDuplicateCode when (module, code) is taken.
	Create(ctx context.Context, record *domain.FormRecord) error
	GetByID(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]domain.FormRecord, int, error)
	ListAll(ctx context.Context, module validation.Module) ([]domain.FormRecord, error)
	Update(ctx context.Context, record *domain.FormRecord) error
	Delete(ctx context.Context, module validation.Module, id uuid.UUID) error
}

// CustomerCodeRepository reads the codes already issued to customers.
type CustomerCodeRepository interface {
	// ListCodesByPrefix returns every customer code that starts with prefix.
	ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// AttachmentRepository defines the contract for attachment metadata persistence.
type AttachmentRepository interface {
	Create(ctx context.Context, att *domain.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.Attachment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AttachmentStatus) error
}
