package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "tms/docs"
	"tms/internal/config"
	"tms/internal/customercode"
	"tms/internal/handler"
	"tms/internal/lookup"
	"tms/internal/repository/postgres"
	"tms/internal/router"
	"tms/internal/service"
	s3storage "tms/internal/storage/s3"
	"tms/internal/validation"
)

// @title TMS Master Data API
// @version 1.0
// @description Validation and storage of vendor, customer, driver, employee and vehicle master data.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	recordRepo := postgres.NewFormRecordRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	codeRepo := postgres.NewCustomerCodeRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Validation engine and its binding tags
	engine := validation.NewDefaultEngine()
	if err := handler.RegisterBindingValidators(engine); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	formSvc := service.NewFormService(engine, recordRepo, customercode.NewGenerator(codeRepo, cfg.Codes.MaxLength), cfg.Codes)
	attachmentSvc := service.NewAttachmentService(engine, attachmentRepo, recordRepo, s3Client, &cfg.S3)
	lookupSvc := service.NewLookupService(
		engine,
		lookup.NewPincodeClient(cfg.Lookup.PincodeBaseURL, cfg.Lookup.Timeout),
		lookup.NewIFSCClient(cfg.Lookup.IFSCBaseURL, cfg.Lookup.Timeout),
		cfg.Lookup.Timeout,
	)

	// Setup router
	r := router.Setup(cfg, authSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		User:       handler.NewUserHandler(userSvc),
		Health:     handler.NewHealthHandler(db),
		Validation: handler.NewValidationHandler(engine, formSvc),
		Record:     handler.NewRecordHandler(formSvc),
		Attachment: handler.NewAttachmentHandler(attachmentSvc),
		Lookup:     handler.NewLookupHandler(engine, lookupSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
