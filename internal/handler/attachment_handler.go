package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tms/internal/middleware"
	"tms/internal/service"
)

// AttachmentHandler handles record document upload and management endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/modules/:module/records/:id/attachments
// @Summary Attach a document to a record field
// @Description Upload a PDF, JPG or PNG and store a reference to it in the given field of the record
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param id path string true "Record ID (UUID)"
// @Param field formData string true "Field the document belongs to, e.g. pan_card_copy"
// @Param file formData file true "Document (PDF, JPG, or PNG)"
// @Success 201 {object} Response{data=domain.Attachment} "Attachment uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file, unknown field or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /modules/{module}/records/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	module, recordID, ok := parseRecordPath(c)
	if !ok {
		return
	}

	field := strings.TrimSpace(c.PostForm("field"))
	if field == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "field is required")
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	att, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		Module:     module,
		RecordID:   recordID,
		Field:      field,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, att)
}

// ListByRecord handles GET /api/v1/modules/:module/records/:id/attachments
// @Summary List a record's attachments
// @Tags attachments
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=[]domain.Attachment} "Attachments"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Security BearerAuth
// @Router /modules/{module}/records/{id}/attachments [get]
func (h *AttachmentHandler) ListByRecord(c *gin.Context) {
	_, recordID, ok := parseRecordPath(c)
	if !ok {
		return
	}

	atts, err := h.attachmentService.ListByRecord(c.Request.Context(), recordID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, atts)
}

// GetByID handles GET /api/v1/attachments/:id
// @Summary Get attachment by ID
// @Description Get attachment metadata and a presigned download URL
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=AttachmentWithDownloadURL} "Attachment with download URL"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	att, err := h.attachmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	downloadURL, err := h.attachmentService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, AttachmentWithDownloadURL{Attachment: *att, DownloadURL: downloadURL})
}

// Delete handles DELETE /api/v1/attachments/:id
// @Summary Delete an attachment
// @Description Delete the stored document and clear the record field that points at it
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Attachment deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
