package handler

import (
	"net/http"

	"fence_estimate_backend/internal/leads/service"
	"fence_estimate_backend/internal/leads/transport"
	"fence_estimate_backend/platform/httpkit"
	"fence_estimate_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler serves the public estimate endpoints used by the intake form and
// the scheduling widget.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers estimate routes under /estimate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.Score)
	rg.POST("/options", h.Options)
	rg.GET("/slots", h.Slots)
	rg.GET("/time-slots", h.TimeSlots)
	rg.POST("/selection", h.ConfirmSelection)
}

func (h *Handler) Score(c *gin.Context) {
	var req transport.IntakeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Score(c.Request.Context(), req.Normalized()))
}

func (h *Handler) Options(c *gin.Context) {
	var req transport.IntakeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Options(c.Request.Context(), req.Normalized()))
}

func (h *Handler) Slots(c *gin.Context) {
	var query transport.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	query = query.Normalized()
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	resp, err := h.svc.Slots(c.Request.Context(), query.Window)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) TimeSlots(c *gin.Context) {
	httpkit.OK(c, h.svc.TimeSlots())
}

func (h *Handler) ConfirmSelection(c *gin.Context) {
	var req transport.SelectionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.IntakeRequest = req.IntakeRequest.Normalized()

	resp, err := h.svc.ConfirmSelection(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return false
	}
	return true
}
