package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tms/internal/port"
	"tms/internal/validation"
)

type customerCodeRepo struct {
	db *sqlx.DB
}

// NewCustomerCodeRepo creates a CustomerCodeRepository over form_records.
func NewCustomerCodeRepo(db *sqlx.DB) port.CustomerCodeRepository {
	return &customerCodeRepo{db: db}
}

func (r *customerCodeRepo) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.SelectContext(ctx, &codes,
		`SELECT code FROM form_records
		 WHERE module = $1 AND code LIKE $2 AND length(code) > $3
		   AND substring(code FROM $3 + 1) ~ '^[0-9]+$'`,
		validation.ModuleCustomer, escapeLike(prefix)+"%", len([]rune(prefix)))
	if err != nil {
		return nil, fmt.Errorf("customerCodeRepo.ListCodesByPrefix: %w", err)
	}
	return codes, nil
}
