package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary Check in at a venue
// @Description Record a vibe rating at a venue. Friends nearby are notified.
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param checkin body CreateCheckInRequest true "Check-in"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /checkins [post]
func (h *Handler) createCheckIn(c *gin.Context) {
	log := h.log(c, "createCheckIn")

	var input CreateCheckInRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	checkIn := &models.CheckIn{
		UserID:     currentUser(c),
		VenueID:    input.VenueID,
		VibeRating: models.VibeRating(input.VibeRating),
		Visibility: models.Visibility(input.Visibility),
	}
	if err := h.services.CheckIns.CreateCheckIn(c.Request.Context(), checkIn); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCheckInResponse(checkIn))
}

// @Summary Check-in feed
// @Description The caller's own check-ins and friends' non-private check-ins, newest first.
// @Tags CheckIns
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param limit query int false "Maximum number of items" default(50)
// @Success 200 {array} CheckInResponse
// @Router /checkins [get]
func (h *Handler) listFeed(c *gin.Context) {
	log := h.log(c, "listFeed")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	feed, err := h.services.CheckIns.ListFeed(c.Request.Context(), currentUser(c), limit)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCheckInResponses(feed))
}

// @Summary Get a check-in
// @Description Check-ins the caller may not see are reported as not found.
// @Tags CheckIns
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Check-in ID"
// @Success 200 {object} CheckInResponse
// @Failure 404 {object} ErrorResponse "Check-in not found"
// @Router /checkins/{id} [get]
func (h *Handler) getCheckIn(c *gin.Context) {
	log := h.log(c, "getCheckIn")
	id, ok := pathID(c, log, "id", "check-in")
	if !ok {
		return
	}

	checkIn, err := h.services.CheckIns.GetCheckIn(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCheckInResponse(checkIn))
}

// @Summary Delete own check-in
// @Tags CheckIns
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Check-in ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Check-in not found"
// @Router /checkins/{id} [delete]
func (h *Handler) deleteCheckIn(c *gin.Context) {
	log := h.log(c, "deleteCheckIn")
	id, ok := pathID(c, log, "id", "check-in")
	if !ok {
		return
	}

	if err := h.services.CheckIns.DeleteCheckIn(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
