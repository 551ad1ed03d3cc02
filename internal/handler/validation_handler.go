package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tms/internal/service"
	"tms/internal/validation"
)

// ValidationHandler exposes the rule catalog and stateless validation.
type ValidationHandler struct {
	engine      *validation.Engine
	formService service.FormService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(engine *validation.Engine, formService service.FormService) *ValidationHandler {
	return &ValidationHandler{engine: engine, formService: formService}
}

// RuleView is a catalog rule with its pattern source.
type RuleView struct {
	validation.Rule
	Pattern string `json:"pattern"`
}

// Rules handles GET /api/v1/rules
// @Summary List validation rules
// @Description The rule catalog used by every form, for client-side hints
// @Tags validation
// @Produce json
// @Success 200 {object} Response{data=[]RuleView}
// @Security BearerAuth
// @Router /rules [get]
func (h *ValidationHandler) Rules(c *gin.Context) {
	rules := h.engine.Catalog().Rules()
	out := make([]RuleView, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleView{Rule: r, Pattern: r.PatternString()})
	}
	RespondOK(c, out)
}

// Modules handles GET /api/v1/modules
// @Summary List module field tables
// @Description Required fields, rule mappings, priority order and display names per module
// @Tags validation
// @Produce json
// @Success 200 {object} Response{data=[]validation.ModuleSpec}
// @Security BearerAuth
// @Router /modules [get]
func (h *ValidationHandler) Modules(c *gin.Context) {
	out := make([]*validation.ModuleSpec, 0, len(validation.Modules))
	for _, m := range validation.Modules {
		out = append(out, h.engine.Spec(m))
	}
	RespondOK(c, out)
}

// ValidateField handles POST /api/v1/validate/field
// @Summary Validate one value
// @Description Checks a value against a catalog rule; realtime adds progress and format hints
// @Tags validation
// @Accept json
// @Produce json
// @Param request body service.ValidateFieldInput true "Rule and value"
// @Success 200 {object} Response{data=service.FieldCheck}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /validate/field [post]
func (h *ValidationHandler) ValidateField(c *gin.Context) {
	var input service.ValidateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	RespondOK(c, h.formService.ValidateField(c.Request.Context(), input))
}

// ValidateForm handles POST /api/v1/modules/:module/validate
// @Summary Validate a whole form
// @Description Runs required, format and cross-field checks without saving. Always 200; see is_valid.
// @Tags validation
// @Accept json
// @Produce json
// @Param module path string true "Module" Enums(vendor, customer, driver, employee, vehicle)
// @Param request body map[string]interface{} true "Form data"
// @Success 200 {object} Response{data=service.FormValidation}
// @Failure 400 {object} ErrorResponseBody "Unknown module or malformed body"
// @Failure 500 {object} ErrorResponseBody "Validation engine error"
// @Security BearerAuth
// @Router /modules/{module}/validate [post]
func (h *ValidationHandler) ValidateForm(c *gin.Context) {
	module, ok := parseModule(c)
	if !ok {
		return
	}
	var data validation.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.formService.Validate(c.Request.Context(), module, data)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, v)
}
