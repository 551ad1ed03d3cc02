package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tms/internal/domain"
	"tms/internal/handler"
	"tms/internal/service"
	"tms/internal/validation"
	"tms/mocks"
)

func sampleAttachment(recordID uuid.UUID) *domain.Attachment {
	return &domain.Attachment{
		ID:           uuid.New(),
		RecordID:     recordID,
		Module:       validation.ModuleVendor,
		Field:        "pan_card_copy",
		OriginalName: "pan.pdf",
		FileType:     domain.FileTypePDF,
		FileSize:     1024,
		ContentType:  "application/pdf",
		Status:       domain.AttachmentStatusUploaded,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestAttachmentHandler_Upload_Success(t *testing.T) {
	mockAtt := new(mocks.MockAttachmentService)
	h := handler.NewAttachmentHandler(mockAtt)
	userID, recordID := uuid.New(), uuid.New()

	mockAtt.On("Upload", mock.Anything, mock.MatchedBy(func(in service.AttachmentUploadInput) bool {
		return in.Module == validation.ModuleVendor && in.RecordID == recordID &&
			in.Field == "pan_card_copy" && in.UploadedBy == userID && in.Header.Filename == "pan.pdf"
	})).Return(sampleAttachment(recordID), nil)

	body, contentType := multipartBody(t, "pan.pdf", []byte("%PDF-1.4"), map[string]string{"field": " pan_card_copy "})
	c, w := newTestContext(http.MethodPost, "/", body, moduleParam("vendor"), idParam(recordID))
	c.Request.Header.Set("Content-Type", contentType)
	withUser(c, userID, "operator")

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockAtt.AssertExpectations(t)
}

func TestAttachmentHandler_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		fields   map[string]string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{"missing_field", "pan.pdf", nil, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing_file", "", map[string]string{"field": "pan_card_copy"}, nil, http.StatusBadRequest, "MISSING_FILE"},
		{"unknown_field", "pan.pdf", map[string]string{"field": "nope"}, domain.ErrUnknownField, http.StatusBadRequest, "UNKNOWN_FIELD"},
		{"too_large", "pan.pdf", map[string]string{"field": "pan_card_copy"}, domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"record_missing", "pan.pdf", map[string]string{"field": "pan_card_copy"}, domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAtt := new(mocks.MockAttachmentService)
			h := handler.NewAttachmentHandler(mockAtt)
			if tt.svcErr != nil {
				mockAtt.On("Upload", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			body, contentType := multipartBody(t, tt.filename, []byte("%PDF-1.4"), tt.fields)
			c, w := newTestContext(http.MethodPost, "/", body, moduleParam("vendor"), idParam(uuid.New()))
			c.Request.Header.Set("Content-Type", contentType)
			withUser(c, uuid.New(), "operator")

			h.Upload(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, decode(t, w).Error.Code)
		})
	}
}

func TestAttachmentHandler_ListByRecord(t *testing.T) {
	mockAtt := new(mocks.MockAttachmentService)
	h := handler.NewAttachmentHandler(mockAtt)
	recordID := uuid.New()
	mockAtt.On("ListByRecord", mock.Anything, recordID).Return([]domain.Attachment{*sampleAttachment(recordID)}, nil)

	c, w := newTestContext(http.MethodGet, "/", nil, moduleParam("vendor"), idParam(recordID))

	h.ListByRecord(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"pan_card_copy"`)
}

func TestAttachmentHandler_GetByID(t *testing.T) {
	mockAtt := new(mocks.MockAttachmentService)
	h := handler.NewAttachmentHandler(mockAtt)
	att := sampleAttachment(uuid.New())
	mockAtt.On("GetByID", mock.Anything, att.ID).Return(att, nil)
	mockAtt.On("GetDownloadURL", mock.Anything, att.ID).Return("https://s3.local/signed", nil)

	c, w := newTestContext(http.MethodGet, "/", nil, gin.Param{Key: "id", Value: att.ID.String()})

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"download_url":"https://s3.local/signed"`)
	assert.NotContains(t, w.Body.String(), "s3_key")
}

func TestAttachmentHandler_Delete(t *testing.T) {
	mockAtt := new(mocks.MockAttachmentService)
	h := handler.NewAttachmentHandler(mockAtt)
	id := uuid.New()
	mockAtt.On("Delete", mock.Anything, id).Return(nil)

	c, w := newTestContext(http.MethodDelete, "/", nil, gin.Param{Key: "id", Value: id.String()})
	h.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodDelete, "/", nil, gin.Param{Key: "id", Value: "bad"})
	h.Delete(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAtt.AssertNumberOfCalls(t, "Delete", 1)
}
