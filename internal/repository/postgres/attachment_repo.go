package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tms/internal/domain"
	"tms/internal/port"
)

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	query := `INSERT INTO attachments
		(id, record_id, module, field, original_name, file_type, file_size,
		 s3_bucket, s3_key, content_type, status, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.RecordID, att.Module, att.Field, att.OriginalName, att.FileType,
		att.FileSize, att.S3Bucket, att.S3Key, att.ContentType, att.Status,
		att.UploadedBy, att.CreatedAt, att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	var att domain.Attachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM attachments WHERE id = $1 AND status != $2", id, domain.AttachmentStatusDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.Attachment, error) {
	var atts []domain.Attachment
	err := r.db.SelectContext(ctx, &atts,
		`SELECT * FROM attachments
		 WHERE record_id = $1 AND status = $2
		 ORDER BY created_at DESC`,
		recordID, domain.AttachmentStatusUploaded)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByRecord: %w", err)
	}
	return atts, nil
}

func (r *attachmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AttachmentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE attachments SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("attachmentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
