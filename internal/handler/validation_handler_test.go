package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/handler"
	"tms/internal/service"
	"tms/internal/validation"
	"tms/mocks"
)

func TestValidationHandler_Rules(t *testing.T) {
	h := handler.NewValidationHandler(testEngine, new(mocks.MockFormService))
	c, w := newTestContext(http.MethodGet, "/api/v1/rules", nil)

	h.Rules(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			Key     string `json:"key"`
			Pattern string `json:"pattern"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, len(testEngine.Catalog().Rules()))

	patterns := map[string]string{}
	for _, r := range resp.Data {
		patterns[r.Key] = r.Pattern
	}
	assert.Equal(t, `^[1-9][0-9]{5}$`, patterns["PINCODE"])
}

func TestValidationHandler_Modules(t *testing.T) {
	h := handler.NewValidationHandler(testEngine, new(mocks.MockFormService))
	c, w := newTestContext(http.MethodGet, "/api/v1/modules", nil)

	h.Modules(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []validation.ModuleSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, len(validation.Modules))
	assert.Equal(t, validation.ModuleVendor, resp.Data[0].Module)
	assert.NotEmpty(t, resp.Data[0].RequiredFields)
}

func TestValidationHandler_ValidateForm(t *testing.T) {
	t.Run("invalid_form_is_still_200", func(t *testing.T) {
		mockForm := new(mocks.MockFormService)
		h := handler.NewValidationHandler(testEngine, mockForm)

		errs := []validation.FieldError{{Field: "DriverName", Error: "Driver Name is required", Type: validation.ErrorTypeRequired}}
		v := &service.FormValidation{
			Result:  &validation.FormResult{IsValid: false, ErrorList: errs, FirstInvalidField: "DriverName"},
			Summary: validation.GenerateErrorSummary(errs),
		}
		mockForm.On("Validate", mock.Anything, validation.ModuleDriver, validation.FormData{"DriverMobileNo": "9876543210"}).
			Return(v, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/modules/driver/validate",
			jsonBody(t, map[string]string{"DriverMobileNo": "9876543210"}), moduleParam("driver"))

		h.ValidateForm(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_valid":false`)
		assert.Contains(t, w.Body.String(), `"first_invalid_field":"DriverName"`)
		mockForm.AssertExpectations(t)
	})

	t.Run("unknown_module", func(t *testing.T) {
		h := handler.NewValidationHandler(testEngine, new(mocks.MockFormService))
		c, w := newTestContext(http.MethodPost, "/", jsonBody(t, map[string]string{}), moduleParam("warehouse"))

		h.ValidateForm(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "UNKNOWN_MODULE", decode(t, w).Error.Code)
	})

	t.Run("engine_error", func(t *testing.T) {
		mockForm := new(mocks.MockFormService)
		h := handler.NewValidationHandler(testEngine, mockForm)
		mockForm.On("Validate", mock.Anything, validation.ModuleVendor, mock.Anything).
			Return(nil, fmt.Errorf("formService.Validate: %w", validation.ErrCustomRuleFailed))

		c, w := newTestContext(http.MethodPost, "/", jsonBody(t, map[string]string{}), moduleParam("vendor"))

		h.ValidateForm(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "VALIDATION_ENGINE_ERROR", resp.Error.Code)
		assert.Equal(t, "validation error, please retry", resp.Error.Message)
	})
}

func TestValidationHandler_ValidateField(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mockForm := new(mocks.MockFormService)
		h := handler.NewValidationHandler(testEngine, mockForm)
		input := service.ValidateFieldInput{Rule: validation.RulePAN, Value: "abcde1234f", Required: true}
		mockForm.On("ValidateField", mock.Anything, input).
			Return(&service.FieldCheck{IsValid: true, Normalized: "ABCDE1234F"})

		c, w := newTestContext(http.MethodPost, "/api/v1/validate/field",
			jsonBody(t, map[string]interface{}{"rule": "PAN", "value": "abcde1234f", "required": true}))

		h.ValidateField(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"normalized":"ABCDE1234F"`)
	})

	t.Run("missing_rule", func(t *testing.T) {
		h := handler.NewValidationHandler(testEngine, new(mocks.MockFormService))
		c, w := newTestContext(http.MethodPost, "/api/v1/validate/field", jsonBody(t, map[string]string{"value": "x"}))

		h.ValidateField(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
