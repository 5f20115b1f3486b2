package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/service"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
	"github.com/noah-isme/maven-leads-api/pkg/response"
)

type leadService interface {
	Submit(ctx context.Context, req dto.SubmitLeadRequest) (*service.SubmitResult, error)
	Delete(ctx context.Context, id int64) error
}

// LeadHandler exposes the public submission endpoint and the admin
// delete action.
type LeadHandler struct {
	service leadService
	// surfaceNotifyErrors decorates the success message when the admin
	// notification failed. Never changes the HTTP outcome.
	surfaceNotifyErrors bool
}

// NewLeadHandler builds a new handler.
func NewLeadHandler(service leadService, surfaceNotifyErrors bool) *LeadHandler {
	return &LeadHandler{service: service, surfaceNotifyErrors: surfaceNotifyErrors}
}

// Submit godoc
// @Summary Submit a lead from the public widget
// @Tags Leads
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param dropdown_selection formData string true "Inquiry category"
// @Param message formData string true "Message"
// @Param language formData string false "Language code"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Router /submit_lead [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var req dto.SubmitLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, appErrors.ErrValidation.Message)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrValidation.Code {
			response.Fail(c, http.StatusBadRequest, appErrors.ErrValidation.Message)
			return
		}
		response.Fail(c, http.StatusInternalServerError, appErrors.ErrInternal.Message)
		return
	}

	message := "Lead submitted successfully"
	if h.surfaceNotifyErrors && result.AdminNotifyFailed {
		message = "Lead submitted successfully (admin notification failed)"
	}
	response.Success(c, message)
}

// Delete godoc
// @Summary Delete a lead
// @Tags Leads
// @Param id path int true "Lead ID"
// @Success 302 {string} string "redirect to /admin"
// @Router /delete_lead/{id} [post]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setFlash(c, "Error deleting lead!", "error")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		setFlash(c, "Error deleting lead!", "error")
	} else {
		setFlash(c, "Lead deleted successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/admin")
}
