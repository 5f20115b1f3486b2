package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/maven-leads-api/internal/dto"
	"github.com/noah-isme/maven-leads-api/internal/models"
	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
	"github.com/noah-isme/maven-leads-api/pkg/response"
)

type settingsService interface {
	Save(ctx context.Context, form dto.SettingsForm) (*models.Settings, error)
	SaveEmailRecipients(ctx context.Context, raw string) error
	Projection(ctx context.Context) (*dto.SettingsProjection, error)
}

// SettingsHandler exposes the admin save endpoints and the public
// settings projection.
type SettingsHandler struct {
	service settingsService
	// saveDelay optionally slows the settings save, off by default.
	saveDelay time.Duration
}

// NewSettingsHandler builds a new handler.
func NewSettingsHandler(service settingsService, saveDelay time.Duration) *SettingsHandler {
	return &SettingsHandler{service: service, saveDelay: saveDelay}
}

// Save godoc
// @Summary Save branding settings
// @Tags Settings
// @Accept x-www-form-urlencoded
// @Success 302 {string} string "redirect to /admin"
// @Router /admin/save [post]
func (h *SettingsHandler) Save(c *gin.Context) {
	if h.saveDelay > 0 {
		time.Sleep(h.saveDelay)
	}

	form := dto.SettingsForm{
		CounselorTitle:  postField(c, "counselor_title"),
		PhoneNumber:     postField(c, "phone_number"),
		EmailRecipients: postField(c, "email_recipients"),
		DropdownOptions: postField(c, "dropdown_options"),
		LogoPosition:    postField(c, "logo_position"),
		LogoURL1:        postField(c, "logo_url_1"),
		LogoURL2:        postField(c, "logo_url_2"),
		LogoURL3:        postField(c, "logo_url_3"),
		Logo1Enabled:    postFieldPresent(c, "logo_1_enabled"),
		Logo2Enabled:    postFieldPresent(c, "logo_2_enabled"),
		Logo3Enabled:    postFieldPresent(c, "logo_3_enabled"),
		PrimaryColor:    postField(c, "primary_color"),
		ChatbotColor:    postField(c, "chatbot_color"),
		UserColor:       postField(c, "user_color"),
		ButtonColor:     postField(c, "button_color"),
	}

	if _, err := h.service.Save(c.Request.Context(), form); err != nil {
		setFlash(c, "Failed to save settings. Please try again.", "error")
	} else {
		setFlash(c, "Settings saved successfully!", "success")
	}
	c.Redirect(http.StatusFound, "/admin")
}

// SaveEmailSettings godoc
// @Summary Save notification recipient list
// @Tags Settings
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email_recipients formData string true "Comma-separated addresses"
// @Success 200 {object} response.Result
// @Failure 400 {object} response.Result
// @Router /admin/save_email_settings [post]
func (h *SettingsHandler) SaveEmailSettings(c *gin.Context) {
	recipients := c.PostForm("email_recipients")

	if err := h.service.SaveEmailRecipients(c.Request.Context(), recipients); err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrValidation.Code {
			response.Fail(c, http.StatusBadRequest, appErr.Message)
			return
		}
		response.Fail(c, http.StatusInternalServerError, appErrors.ErrInternal.Message)
		return
	}
	response.Success(c, "Email settings saved successfully")
}

// GetSettings godoc
// @Summary Public settings projection
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsProjection
// @Router /get_settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	projection, err := h.service.Projection(c.Request.Context())
	if err != nil {
		response.JSON(c, http.StatusInternalServerError, gin.H{"error": "Settings unavailable"})
		return
	}
	if projection == nil {
		response.JSON(c, http.StatusOK, gin.H{})
		return
	}
	response.JSON(c, http.StatusOK, projection)
}

func postField(c *gin.Context, name string) *string {
	if value, ok := c.GetPostForm(name); ok {
		return &value
	}
	return nil
}

// postFieldPresent reads checkbox semantics: any submitted value counts
// as checked, absence means unchecked.
func postFieldPresent(c *gin.Context, name string) bool {
	_, ok := c.GetPostForm(name)
	return ok
}
