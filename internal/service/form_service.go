package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"tms/internal/config"
	"tms/internal/customercode"
	"tms/internal/domain"
	"tms/internal/port"
	"tms/internal/validation"
	"tms/internal/xlsxexport"
)

// FormValidation is a form result together with its presentation summary.
type FormValidation struct {
	Result  *validation.FormResult  `json:"result"`
	Summary validation.ErrorSummary `json:"summary"`
}

// InvalidFormError is returned by writes whose data fails validation.
type InvalidFormError struct {
	Validation *FormValidation
}

func (e *InvalidFormError) Error() string {
	return fmt.Sprintf("form has %d validation errors", e.Validation.Result.Summary.TotalErrors)
}

// ValidateFieldInput is the DTO for single-field checks.
type ValidateFieldInput struct {
	Rule     validation.RuleName `json:"rule" binding:"required"`
	Value    string              `json:"value"`
	Required bool                `json:"required"`
	RealTime bool                `json:"realtime"`
}

// FieldCheck is the outcome of a single-field check.
type FieldCheck struct {
	IsValid    bool   `json:"is_valid"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Normalized string `json:"normalized"`
}

// CreateRecordInput is the DTO for creating a master record.
type CreateRecordInput struct {
	Module    validation.Module
	Data      validation.FormData
	CreatedBy uuid.UUID
}

// ImportRowError lists the failures of one spreadsheet row.
type ImportRowError struct {
	Line   int                     `json:"line"`
	Errors []validation.FieldError `json:"errors"`
	Reason string                  `json:"reason,omitempty"`
}

// ImportReport summarises a bulk import.
type ImportReport struct {
	Module   validation.Module `json:"module"`
	Total    int               `json:"total"`
	Valid    int               `json:"valid"`
	Created  int               `json:"created"`
	DryRun   bool              `json:"dry_run"`
	Unknown  []string          `json:"unknown_columns,omitempty"`
	Failures []ImportRowError  `json:"failures"`
}

// FormService defines the master-data record contract.
type FormService interface {
	Validate(ctx context.Context, module validation.Module, data validation.FormData) (*FormValidation, error)
	ValidateField(ctx context.Context, input ValidateFieldInput) *FieldCheck
	Create(ctx context.Context, input CreateRecordInput) (*domain.FormRecord, error)
	Get(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error)
	List(ctx context.Context, filter port.RecordFilter) ([]domain.FormRecord, int, error)
	Update(ctx context.Context, module validation.Module, id uuid.UUID, patch validation.FormData) (*domain.FormRecord, error)
	Delete(ctx context.Context, module validation.Module, id uuid.UUID) error
	Export(ctx context.Context, module validation.Module, w io.Writer) error
	Import(ctx context.Context, module validation.Module, r io.Reader, createdBy uuid.UUID, dryRun bool) (*ImportReport, error)
	NextCustomerCode(ctx context.Context, name string) (string, error)
}

type formService struct {
	engine *validation.Engine
	repo   port.FormRecordRepository
	codes  *customercode.Generator
	cfg    config.CodesConfig
}

// NewFormService creates a new FormService implementation.
func NewFormService(
	engine *validation.Engine,
	repo port.FormRecordRepository,
	codes *customercode.Generator,
	cfg config.CodesConfig,
) FormService {
	return &formService{engine: engine, repo: repo, codes: codes, cfg: cfg}
}

func (s *formService) spec(module validation.Module) (*validation.ModuleSpec, error) {
	spec := s.engine.Spec(module)
	if spec == nil {
		return nil, fmt.Errorf("%w: %q", validation.ErrUnknownModule, module)
	}
	return spec, nil
}

func (s *formService) Validate(_ context.Context, module validation.Module, data validation.FormData) (*FormValidation, error) {
	spec, err := s.spec(module)
	if err != nil {
		return nil, err
	}
	return s.evaluate(spec, s.normalize(spec, data))
}

func (s *formService) ValidateField(_ context.Context, input ValidateFieldInput) *FieldCheck {
	out := &FieldCheck{Normalized: s.engine.NormalizeValue(input.Value, input.Rule)}
	if input.RealTime {
		res := s.engine.ValidateRealTime(input.Value, input.Rule, input.Required)
		out.IsValid, out.Error, out.Suggestion = res.IsValid, res.Error, res.Suggestion
		return out
	}
	res := s.engine.ValidateField(input.Value, input.Rule, input.Required)
	out.IsValid, out.Error = res.IsValid, res.Error
	return out
}

func (s *formService) evaluate(spec *validation.ModuleSpec, data validation.FormData) (*FormValidation, error) {
	res, err := s.engine.ValidateCompleteForm(data, spec.Module)
	if err != nil {
		log.Printf("formService.evaluate: module %s: %v", spec.Module, err)
		return nil, fmt.Errorf("formService.evaluate: %w", err)
	}
	return &FormValidation{Result: res, Summary: validation.GenerateErrorSummary(res.ErrorList)}, nil
}

// check returns an *InvalidFormError when data fails validation.
func (s *formService) check(spec *validation.ModuleSpec, data validation.FormData) error {
	v, err := s.evaluate(spec, data)
	if err != nil {
		return err
	}
	if !v.Result.IsValid {
		return &InvalidFormError{Validation: v}
	}
	return nil
}

// normalize returns a copy of data with strings trimmed and rule-mapped
// identifiers upper-cased where the rule accepts lowercase input.
func (s *formService) normalize(spec *validation.ModuleSpec, data validation.FormData) validation.FormData {
	out := make(validation.FormData, len(data))
	for k, v := range data {
		if str, ok := v.(string); ok {
			v = strings.TrimSpace(str)
		}
		out[k] = v
	}
	for _, fr := range spec.FieldRules {
		if str, ok := out[fr.Field].(string); ok {
			out[fr.Field] = s.engine.NormalizeValue(str, fr.Rule)
		}
	}
	return out
}

func (s *formService) Create(ctx context.Context, input CreateRecordInput) (*domain.FormRecord, error) {
	spec, err := s.spec(input.Module)
	if err != nil {
		return nil, err
	}
	data := s.normalize(spec, input.Data)
	if err := s.check(spec, data); err != nil {
		return nil, err
	}

	generated := false
	if s.generatesCode(spec, data) {
		if err := s.assignCode(ctx, spec, data); err != nil {
			return nil, err
		}
		generated = true
	}

	rec := &domain.FormRecord{Module: spec.Module, CreatedBy: input.CreatedBy}
	for attempt := 1; ; attempt++ {
		if err := fill(rec, spec, data); err != nil {
			return nil, fmt.Errorf("formService.Create: %w", err)
		}
		err := s.repo.Create(ctx, rec)
		if err == nil {
			break
		}
		if !generated || !errors.Is(err, domain.ErrDuplicateCode) {
			return nil, err
		}
		if attempt >= s.cfg.MaxRetries {
			log.Printf("formService.Create: code %v still taken after %d attempts", data[spec.CodeField], attempt)
			return nil, domain.ErrCodeExhausted
		}
		if err := s.assignCode(ctx, spec, data); err != nil {
			return nil, err
		}
	}

	log.Printf("formService.Create: created %s record %s", rec.Module, rec.ID)
	return rec, nil
}

// generatesCode reports whether the code field must be filled in by the
// customer code generator.
func (s *formService) generatesCode(spec *validation.ModuleSpec, data validation.FormData) bool {
	return spec.Module == validation.ModuleCustomer && spec.CodeField != "" && validation.IsEmpty(data[spec.CodeField])
}

func (s *formService) assignCode(ctx context.Context, spec *validation.ModuleSpec, data validation.FormData) error {
	code, err := s.codes.Next(ctx, validation.StringValue(data[spec.DisplayField]))
	if err != nil {
		return fmt.Errorf("formService.assignCode: %w", err)
	}
	data[spec.CodeField] = code
	return nil
}

// fill copies the derived columns and the JSON payload onto rec.
func fill(rec *domain.FormRecord, spec *validation.ModuleSpec, data validation.FormData) error {
	rec.DisplayName = validation.StringValue(data[spec.DisplayField])
	rec.Code = nil
	if spec.CodeField != "" && !validation.IsEmpty(data[spec.CodeField]) {
		code := validation.StringValue(data[spec.CodeField])
		rec.Code = &code
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	rec.Data = raw
	return nil
}

func (s *formService) Get(ctx context.Context, module validation.Module, id uuid.UUID) (*domain.FormRecord, error) {
	if _, err := s.spec(module); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, module, id)
}

func (s *formService) List(ctx context.Context, filter port.RecordFilter) ([]domain.FormRecord, int, error) {
	if _, err := s.spec(filter.Module); err != nil {
		return nil, 0, err
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

// Update merges patch into the stored data and re-validates the whole
// record. A nil value in patch removes the field. A customer keeps its
// existing code when the patch clears it.
func (s *formService) Update(ctx context.Context, module validation.Module, id uuid.UUID, patch validation.FormData) (*domain.FormRecord, error) {
	spec, err := s.spec(module)
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.GetByID(ctx, module, id)
	if err != nil {
		return nil, err
	}

	merged := validation.FormData{}
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &merged); err != nil {
			return nil, fmt.Errorf("formService.Update: stored data: %w", err)
		}
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	data := s.normalize(spec, merged)
	if s.generatesCode(spec, data) && rec.Code != nil {
		data[spec.CodeField] = *rec.Code
	}
	if err := s.check(spec, data); err != nil {
		return nil, err
	}
	if err := fill(rec, spec, data); err != nil {
		return nil, fmt.Errorf("formService.Update: %w", err)
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *formService) Delete(ctx context.Context, module validation.Module, id uuid.UUID) error {
	if _, err := s.spec(module); err != nil {
		return err
	}
	return s.repo.Delete(ctx, module, id)
}

func (s *formService) Export(ctx context.Context, module validation.Module, w io.Writer) error {
	spec, err := s.spec(module)
	if err != nil {
		return err
	}
	records, err := s.repo.ListAll(ctx, module)
	if err != nil {
		return err
	}
	return xlsxexport.Write(w, spec, records)
}

// Import validates every row of a workbook and creates the valid ones
// unless dryRun is set. Row failures are collected, not returned.
func (s *formService) Import(ctx context.Context, module validation.Module, r io.Reader, createdBy uuid.UUID, dryRun bool) (*ImportReport, error) {
	spec, err := s.spec(module)
	if err != nil {
		return nil, err
	}
	sheet, err := xlsxexport.Read(r, spec)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{
		Module:   module,
		Total:    len(sheet.Rows),
		DryRun:   dryRun,
		Unknown:  sheet.Unknown,
		Failures: []ImportRowError{},
	}
	for _, row := range sheet.Rows {
		data := s.normalize(spec, row.Data)
		v, err := s.evaluate(spec, data)
		if err != nil {
			return nil, err
		}
		if !v.Result.IsValid {
			report.Failures = append(report.Failures, ImportRowError{Line: row.Line, Errors: v.Result.ErrorList})
			continue
		}
		report.Valid++
		if dryRun {
			continue
		}

		if _, err := s.Create(ctx, CreateRecordInput{Module: module, Data: data, CreatedBy: createdBy}); err != nil {
			report.Failures = append(report.Failures, ImportRowError{Line: row.Line, Reason: err.Error()})
			continue
		}
		report.Created++
	}

	log.Printf("formService.Import: %s rows=%d valid=%d created=%d dry_run=%t",
		module, report.Total, report.Valid, report.Created, dryRun)
	return report, nil
}

func (s *formService) NextCustomerCode(ctx context.Context, name string) (string, error) {
	return s.codes.Next(ctx, name)
}
