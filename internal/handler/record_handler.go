package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tms/internal/middleware"
	"tms/internal/port"
	"tms/internal/service"
	"tms/internal/validation"
	"tms/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RecordHandler handles master-data record endpoints.
type RecordHandler struct {
	formService service.FormService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(formService service.FormService) *RecordHandler {
	return &RecordHandler{formService: formService}
}

// Create handles POST /api/v1/modules/:module/records
// @Summary Create a record
// @Description Validates and saves a master record. Customers without a code get one generated from the name.
// @Tags records
// @Accept json
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param request body VendorForm true "Form data"
// @Success 201 {object} Response{data=domain.FormRecord} "Record created"
// @Failure 400 {object} ErrorResponseBody "Unknown module or malformed body"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Code already in use"
// @Failure 422 {object} Response{data=service.FormValidation} "Form data failed validation"
// @Security BearerAuth
// @Router /modules/{module}/records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	module, ok := parseModule(c)
	if !ok {
		return
	}
	var data validation.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.formService.Create(c.Request.Context(), service.CreateRecordInput{
		Module:    module,
		Data:      data,
		CreatedBy: userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/modules/:module/records
// @Summary List records
// @Tags records
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param search query string false "Match on display name or code"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.FormRecord,meta=PagMeta} "List of records"
// @Failure 400 {object} ErrorResponseBody "Unknown module"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /modules/{module}/records [get]
func (h *RecordHandler) List(c *gin.Context) {
	module, ok := parseModule(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	records, total, err := h.formService.List(c.Request.Context(), port.RecordFilter{
		Module: module,
		Search: c.Query("search"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/modules/:module/records/:id
// @Summary Get a record
// @Tags records
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.FormRecord} "Record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /modules/{module}/records/{id} [get]
func (h *RecordHandler) GetByID(c *gin.Context) {
	module, id, ok := parseRecordPath(c)
	if !ok {
		return
	}

	record, err := h.formService.Get(c.Request.Context(), module, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Update handles PATCH /api/v1/modules/:module/records/:id
// @Summary Update a record
// @Description Merges the given fields into the record and re-validates it. A null value clears the field.
// @Tags records
// @Accept json
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param id path string true "Record ID (UUID)"
// @Param request body map[string]interface{} true "Changed fields"
// @Success 200 {object} Response{data=domain.FormRecord} "Record updated"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or body"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Failure 409 {object} ErrorResponseBody "Code already in use"
// @Failure 422 {object} Response{data=service.FormValidation} "Merged record failed validation"
// @Security BearerAuth
// @Router /modules/{module}/records/{id} [patch]
func (h *RecordHandler) Update(c *gin.Context) {
	module, id, ok := parseRecordPath(c)
	if !ok {
		return
	}
	var patch validation.FormData
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.formService.Update(c.Request.Context(), module, id, patch)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/modules/:module/records/:id
// @Summary Delete a record
// @Description Delete a record and its attachment rows (admin only)
// @Tags records
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Record deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /modules/{module}/records/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	module, id, ok := parseRecordPath(c)
	if !ok {
		return
	}

	if err := h.formService.Delete(c.Request.Context(), module, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "record deleted"})
}

// Export handles GET /api/v1/modules/:module/export
// @Summary Export records to Excel
// @Tags records
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} ErrorResponseBody "Unknown module"
// @Security BearerAuth
// @Router /modules/{module}/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	module, ok := parseModule(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.formService.Export(c.Request.Context(), module, &buf); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, xlsxexport.BuildFilename(module)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Import handles POST /api/v1/modules/:module/import
// @Summary Import records from Excel
// @Description Validates every row of the first sheet and creates the valid ones. With dry_run nothing is saved.
// @Tags records
// @Accept multipart/form-data
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param file formData file true "Workbook (.xlsx)"
// @Param dry_run query bool false "Validate only" default(false)
// @Success 200 {object} Response{data=service.ImportReport} "Import report"
// @Failure 400 {object} ErrorResponseBody "Missing or unreadable workbook"
// @Security BearerAuth
// @Router /modules/{module}/import [post]
func (h *RecordHandler) Import(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	module, ok := parseModule(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only .xlsx workbooks can be imported")
		return
	}
	dryRun, _ := strconv.ParseBool(c.DefaultQuery("dry_run", "false"))

	report, err := h.formService.Import(c.Request.Context(), module, file, userID, dryRun)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// NextCustomerCode handles GET /api/v1/customers/next-code
// @Summary Preview the next customer code
// @Description Returns the code a new customer with this name would get. Nothing is reserved.
// @Tags records
// @Produce json
// @Param name query string true "Customer name"
// @Success 200 {object} Response{data=NextCodeResponse} "Code preview"
// @Failure 400 {object} ErrorResponseBody "Missing name"
// @Security BearerAuth
// @Router /customers/next-code [get]
func (h *RecordHandler) NextCustomerCode(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	code, err := h.formService.NextCustomerCode(c.Request.Context(), name)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, NextCodeResponse{Name: name, Code: code})
}

// parseRecordPath reads :module and :id, writing a 400 on failure.
func parseRecordPath(c *gin.Context) (validation.Module, uuid.UUID, bool) {
	module, ok := parseModule(c)
	if !ok {
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return "", uuid.Nil, false
	}
	return module, id, true
}
