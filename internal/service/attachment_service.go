package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"tms/internal/config"
	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/validation"
)

// AttachmentUploadInput is the DTO for attaching a document to a record field.
type AttachmentUploadInput struct {
	Module     validation.Module
	RecordID   uuid.UUID
	Field      string
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the record attachment contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attachmentService struct {
	engine      *validation.Engine
	attachments port.AttachmentRepository
	records     port.FormRecordRepository
	storage     port.ObjectStorage
	cfg         *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	engine *validation.Engine,
	attachments port.AttachmentRepository,
	records port.FormRecordRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		engine:      engine,
		attachments: attachments,
		records:     records,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	spec := s.engine.Spec(input.Module)
	if spec == nil {
		return nil, fmt.Errorf("%w: %q", validation.ErrUnknownModule, input.Module)
	}
	if !slices.Contains(spec.Fields(), input.Field) {
		return nil, domain.ErrUnknownField
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic bytes decide, not the extension.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	record, err := s.records.GetByID(ctx, input.Module, input.RecordID)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	att := &domain.Attachment{
		ID:           id,
		RecordID:     record.ID,
		Module:       input.Module,
		Field:        input.Field,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        fmt.Sprintf("%s/%s/%s/%s.%s", input.Module, record.ID, input.Field, id, ext),
		ContentType:  domain.AllowedFileTypes[fileType],
		Status:       domain.AttachmentStatusPending,
		UploadedBy:   input.UploadedBy,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) to %s record %s field %s",
		att.OriginalName, att.ContentType, att.FileSize, att.Module, att.RecordID, att.Field)

	if err := s.attachments.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      att.S3Bucket,
		Key:         att.S3Key,
		Body:        input.File,
		ContentType: att.ContentType,
		Size:        att.FileSize,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: S3 upload failed for %s: %v", att.ID, err)
		_ = s.attachments.UpdateStatus(ctx, att.ID, domain.AttachmentStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.attachments.UpdateStatus(ctx, att.ID, domain.AttachmentStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating attachment status: %w", err)
	}
	att.Status = domain.AttachmentStatusUploaded

	ref := &validation.FileRef{
		AttachmentID: att.ID.String(),
		FileName:     att.OriginalName,
		ContentType:  att.ContentType,
		Size:         att.FileSize,
	}
	if err := s.setField(ctx, record, input.Field, ref); err != nil {
		return nil, err
	}
	return att, nil
}

// setField writes value (or removes the field when nil) in the stored data
// without re-running validation: attachments only change file fields.
func (s *attachmentService) setField(ctx context.Context, record *domain.FormRecord, field string, value *validation.FileRef) error {
	data := map[string]any{}
	if len(record.Data) > 0 {
		if err := json.Unmarshal(record.Data, &data); err != nil {
			return fmt.Errorf("attachmentService.setField: stored data: %w", err)
		}
	}
	if value == nil {
		delete(data, field)
	} else {
		data[field] = value
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("attachmentService.setField: %w", err)
	}
	record.Data = raw
	return s.records.Update(ctx, record)
}

func (s *attachmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	return s.attachments.GetByID(ctx, id)
}

func (s *attachmentService) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.Attachment, error) {
	return s.attachments.ListByRecord(ctx, recordID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, att.S3Bucket, att.S3Key, s.cfg.PresignExpiry)
}

// Delete removes the stored object, marks the attachment deleted and clears
// the record field if it still points at this attachment.
func (s *attachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("attachmentService.Delete: deleting attachment %s", id)

	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, att.S3Bucket, att.S3Key); err != nil {
		log.Printf("attachmentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	if err := s.attachments.UpdateStatus(ctx, att.ID, domain.AttachmentStatusDeleted); err != nil {
		return err
	}

	record, err := s.records.GetByID(ctx, att.Module, att.RecordID)
	if err != nil {
		return err
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(record.Data, &data); err != nil {
		return fmt.Errorf("attachmentService.Delete: stored data: %w", err)
	}
	var current validation.FileRef
	if raw, ok := data[att.Field]; !ok || json.Unmarshal(raw, &current) != nil || current.AttachmentID != att.ID.String() {
		return nil
	}
	return s.setField(ctx, record, att.Field, nil)
}
