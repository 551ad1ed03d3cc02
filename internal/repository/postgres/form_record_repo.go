package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/validation"
)

type formRecordRepo struct {
	db *sqlx.DB
}

// NewFormRecordRepo creates a new PostgreSQL-backed FormRecordRepository.
func NewFormRecordRepo(db *sqlx.DB) port.FormRecordRepository {
	return &formRecordRepo{db: db}
}

func (r *formRecordRepo) Create(ctx context.Context, record *domain.FormRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `INSERT INTO form_records (id, module, display_name, code, data, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Module, record.DisplayName, record.Code, record.Data,
		record.CreatedBy, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("formRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *formRecordRepo) GetByID(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error) {
	var record domain.FormRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM form_records WHERE id = $1 AND module = $2", id, module)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("formRecordRepo.GetByID: %w", err)
	}
	return &record, nil
}

func (r *formRecordRepo) List(ctx context.Context, filter port.RecordFilter) ([]domain.FormRecord, int, error) {
	where := "module = $1"
	args := []interface{}{filter.Module}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		where += fmt.Sprintf(" AND (display_name ILIKE $%d OR code ILIKE $%d)", len(args), len(args))
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM form_records WHERE "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("formRecordRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		"SELECT * FROM form_records WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args))

	var records []domain.FormRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("formRecordRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *formRecordRepo) ListAll(ctx context.Context, module validation.Module) ([]domain.FormRecord, error) {
	var records []domain.FormRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM form_records WHERE module = $1 ORDER BY created_at ASC", module)
	if err != nil {
		return nil, fmt.Errorf("formRecordRepo.ListAll: %w", err)
	}
	return records, nil
}

func (r *formRecordRepo) Update(ctx context.Context, record *domain.FormRecord) error {
	record.UpdatedAt = time.Now().UTC()
	query := `UPDATE form_records SET display_name = $1, code = $2, data = $3, updated_at = $4
		WHERE id = $5 AND module = $6`
	result, err := r.db.ExecContext(ctx, query,
		record.DisplayName, record.Code, record.Data, record.UpdatedAt, record.ID, record.Module)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("formRecordRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *formRecordRepo) Delete(ctx context.Context, module validation.Module, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM form_records WHERE id = $1 AND module = $2", id, module)
	if err != nil {
		return fmt.Errorf("formRecordRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
