package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary Register an account
// @Description Create an account together with its profile. Requires API key.
// @Tags Accounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param account body CreateAccountRequest true "Account registration request"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /accounts [post]
func (h *Handler) createAccount(c *gin.Context) {
	log := h.log(c, "createAccount")

	var input CreateAccountRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	account, profile, err := h.services.Accounts.CreateAccount(c.Request.Context(), input.Username, input.Email)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAccountResponse(account, profile))
}

// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.log(c, "getProfile")

	profile, err := h.services.Accounts.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Update own profile
// @Description Update bio and location sharing. Disabling sharing clears the stored location.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param profile body UpdateProfileRequest true "Profile update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or location"
// @Failure 403 {object} ErrorResponse "Location sharing is disabled"
// @Router /profile [patch]
func (h *Handler) updateProfile(c *gin.Context) {
	log := h.log(c, "updateProfile")

	var input UpdateProfileRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	profile, err := h.services.Accounts.UpdateProfile(c.Request.Context(), currentUser(c), DTOToProfileUpdate(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Update own location
// @Description Store the caller's current coordinates. Fails with 403 while sharing is disabled.
// @Tags Profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param location body UpdateLocationRequest true "Coordinates"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 403 {object} ErrorResponse "Location sharing is disabled"
// @Router /profile/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	log := h.log(c, "updateLocation")

	var input UpdateLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	loc := models.Location{Latitude: *input.Latitude, Longitude: *input.Longitude}
	profile, err := h.services.Accounts.UpdateLocation(c.Request.Context(), currentUser(c), loc)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}
