package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// ProfileHandler handles the user's account and display profile.
type ProfileHandler struct {
	userService    services.UserServicer
	profileService services.ProfileServicer
	auditService   services.AuditServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService services.UserServicer, profileService services.ProfileServicer, auditService services.AuditServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService, profileService: profileService, auditService: auditService}
}

// UpdateProfileRequest represents the request payload for updating the
// display profile.
type UpdateProfileRequest struct {
	UserName        string `json:"user_name" binding:"max=100"`
	MobileNumber    string `json:"mobile_number" binding:"max=32"`
	EmailAddress    string `json:"email_address" binding:"omitempty,email,max=255"`
	ProfileImageURL string `json:"profile_image_url" binding:"omitempty,url,max=2048"`
}

// ProfileResponse is the account together with its display profile.
type ProfileResponse struct {
	User    UserResponse   `json:"user"`
	Profile models.Profile `json:"profile"`
}

// GetProfile returns the user's account and display profile
// @Summary     Get user profile
// @Description Get the authenticated user's account and display profile
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if profile.EmailAddress == "" {
		profile.EmailAddress = user.Email
	}

	c.JSON(http.StatusOK, ProfileResponse{User: newUserResponse(user), Profile: *profile})
}

// UpdateProfile overwrites the user's display profile and records
// UPDATE_PROFILE in the audit log.
// @Summary     Update user profile
// @Description Overwrite the authenticated user's display profile
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile details"
// @Success     200 {object} models.Profile "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, models.Profile{
		UserName:        req.UserName,
		MobileNumber:    req.MobileNumber,
		EmailAddress:    req.EmailAddress,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROFILE", "profile", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
