package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tms/internal/validation"
)

// User represents an authenticated back-office user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FormRecord is a validated master-data record of one module. Data holds the
// flat field map exactly as the form submitted it, after normalization.
type FormRecord struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	Module      validation.Module `db:"module" json:"module"`
	DisplayName string            `db:"display_name" json:"display_name"`
	Code        *string           `db:"code" json:"code,omitempty"`
	Data        json.RawMessage   `db:"data" json:"data"`
	CreatedBy   uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about a document uploaded for a record field.
type Attachment struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	RecordID     uuid.UUID         `db:"record_id" json:"record_id"`
	Module       validation.Module `db:"module" json:"module"`
	Field        string            `db:"field" json:"field"`
	OriginalName string            `db:"original_name" json:"original_name"`
	FileType     FileType          `db:"file_type" json:"file_type"`
	FileSize     int64             `db:"file_size" json:"file_size"`
	S3Bucket     string            `db:"s3_bucket" json:"-"`
	S3Key        string            `db:"s3_key" json:"-"`
	ContentType  string            `db:"content_type" json:"content_type"`
	Status       AttachmentStatus  `db:"status" json:"status"`
	UploadedBy   uuid.UUID         `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// PincodeDetails is the address information behind an Indian PIN code.
type PincodeDetails struct {
	Pincode     string   `json:"pincode"`
	District    string   `json:"district"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	PostOffices []string `json:"post_offices"`
}

// BankBranch is the branch information behind an IFSC code.
type BankBranch struct {
	IFSC     string `json:"ifsc"`
	Bank     string `json:"bank"`
	Branch   string `json:"branch"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	MICR     string `json:"micr,omitempty"`
}
