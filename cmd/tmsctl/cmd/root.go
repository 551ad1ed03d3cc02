package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"tms/internal/config"
	"tms/internal/customercode"
	"tms/internal/port"
	"tms/internal/repository/postgres"
	"tms/internal/service"
	"tms/internal/validation"
)

var rootCmd = &cobra.Command{
	Use:   "tmsctl",
	Short: "TMS master data tooling",
	Long: `tmsctl validates and loads TMS master data from the command line.

Offline commands (validate, abbrev) need no database. Commands that read
or write records (import, next-code, create-admin, migrate) use the same
TMS_* environment as the server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// backend is the database-backed part of the service layer.
type backend struct {
	db       *sqlx.DB
	forms    service.FormService
	users    service.UserService
	// userRepo resolves users by email, which the service layer does not expose.
	userRepo port.UserRepository
}

func openBackend() (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return nil, err
	}
	engine := validation.NewDefaultEngine()
	userRepo := postgres.NewUserRepo(db)
	gen := customercode.NewGenerator(postgres.NewCustomerCodeRepo(db), cfg.Codes.MaxLength)
	return &backend{
		db:       db,
		forms:    service.NewFormService(engine, postgres.NewFormRecordRepo(db), gen, cfg.Codes),
		users:    service.NewUserService(userRepo),
		userRepo: userRepo,
	}, nil
}

func (b *backend) Close() error { return b.db.Close() }
