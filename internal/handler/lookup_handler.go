package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tms/internal/service"
	"tms/internal/validation"
)

// LookupHandler handles address and bank autofill endpoints.
type LookupHandler struct {
	engine        *validation.Engine
	lookupService service.LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(engine *validation.Engine, lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{engine: engine, lookupService: lookupService}
}

type pincodeURI struct {
	Pincode string `uri:"pincode" binding:"required,pincode"`
}

type ifscURI struct {
	IFSC string `uri:"ifsc" binding:"required,ifsc"`
}

// Pincode handles GET /api/v1/lookups/pincode/:pincode
// @Summary Look up a PIN code
// @Description Resolves district and state for address autofill
// @Tags lookups
// @Produce json
// @Param pincode path string true "6-digit PIN code"
// @Success 200 {object} Response{data=domain.PincodeDetails} "PIN code details"
// @Failure 400 {object} ErrorResponseBody "Invalid PIN code"
// @Failure 404 {object} ErrorResponseBody "PIN code not found"
// @Failure 502 {object} ErrorResponseBody "Lookup service unavailable"
// @Security BearerAuth
// @Router /lookups/pincode/{pincode} [get]
func (h *LookupHandler) Pincode(c *gin.Context) {
	var uri pincodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", bindingMessage(h.engine, err))
		return
	}

	details, err := h.lookupService.Pincode(c.Request.Context(), uri.Pincode)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, details)
}

// IFSC handles GET /api/v1/lookups/ifsc/:ifsc
// @Summary Look up an IFSC code
// @Description Resolves bank and branch for bank detail autofill
// @Tags lookups
// @Produce json
// @Param ifsc path string true "IFSC code"
// @Success 200 {object} Response{data=domain.BankBranch} "Branch details"
// @Failure 400 {object} ErrorResponseBody "Invalid IFSC code"
// @Failure 404 {object} ErrorResponseBody "IFSC code not found"
// @Failure 502 {object} ErrorResponseBody "Lookup service unavailable"
// @Security BearerAuth
// @Router /lookups/ifsc/{ifsc} [get]
func (h *LookupHandler) IFSC(c *gin.Context) {
	var uri ifscURI
	if err := c.ShouldBindUri(&uri); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", bindingMessage(h.engine, err))
		return
	}

	branch, err := h.lookupService.IFSC(c.Request.Context(), uri.IFSC)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, branch)
}
