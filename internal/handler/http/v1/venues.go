package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary Create a venue
// @Tags Venues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param venue body CreateVenueRequest true "Venue"
// @Success 201 {object} VenueResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or location"
// @Router /venues [post]
func (h *Handler) createVenue(c *gin.Context) {
	log := h.log(c, "createVenue")

	var input CreateVenueRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	venue := DTOToVenueModel(input)
	if err := h.services.Venues.CreateVenue(c.Request.Context(), venue); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToVenueResponse(venue))
}

// @Summary List venues
// @Description Paginated venues. With latitude and longitude only venues within radius are returned, nearest first.
// @Tags Venues
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param category query string false "Category" Enums(bar, club, lounge, pub)
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param radius query number false "Radius in meters, 0 matches only the exact point" default(5000)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} VenueResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /venues [get]
func (h *Handler) listVenues(c *gin.Context) {
	log := h.log(c, "listVenues")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	filter := models.VenueFilter{
		Category: models.VenueCategory(c.Query("category")),
		Page:     page,
		PageSize: pageSize,
	}

	lat, hasLat, errLat := queryFloat(c, "latitude")
	lng, hasLng, errLng := queryFloat(c, "longitude")
	radius, hasRadius, errRadius := queryFloat(c, "radius")
	if errLat != nil || errLng != nil || errRadius != nil {
		respondError(c, log, fmt.Errorf("%w: latitude, longitude and radius must be numbers", models.ErrInvalidInput))
		return
	}
	if hasLat != hasLng {
		respondError(c, log, fmt.Errorf("%w: both latitude and longitude are required", models.ErrInvalidLocation))
		return
	}
	if hasLat {
		filter.Center = &models.Location{Latitude: lat, Longitude: lng}
		if hasRadius {
			filter.RadiusMeters = &radius
		}
	}

	items, err := h.services.Venues.ListVenues(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToVenueResponses(items, filter.Center != nil))
}

// @Summary Get a venue
// @Tags Venues
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Success 200 {object} VenueResponse
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *Handler) getVenue(c *gin.Context) {
	log := h.log(c, "getVenue")
	id, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	venue, err := h.services.Venues.GetVenue(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVenueResponse(venue))
}

// @Summary Update a venue
// @Description Descriptive fields are always editable. Location and category can change only while the venue has no check-ins.
// @Tags Venues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Param venue body UpdateVenueRequest true "Venue update"
// @Success 200 {object} VenueResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or location"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Failure 409 {object} ErrorResponse "Venue already has check-ins"
// @Router /venues/{id} [patch]
func (h *Handler) updateVenue(c *gin.Context) {
	log := h.log(c, "updateVenue")
	id, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	var input UpdateVenueRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	venue, err := h.services.Venues.UpdateVenue(c.Request.Context(), id, DTOToVenueUpdate(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVenueResponse(venue))
}

// @Summary Current vibe of a venue
// @Description Most frequent vibe rating among check-ins of the recent window, or Unknown.
// @Tags Venues
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Success 200 {object} VibeResponse
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id}/current-vibe [get]
func (h *Handler) currentVibe(c *gin.Context) {
	log := h.log(c, "currentVibe")
	id, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	vibe, err := h.services.Vibe.GetCurrentVibe(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, VibeResponse{Vibe: string(vibe.Rating), CheckInsCount: vibe.CheckInsCount})
}

// @Summary Popularity score of a venue
// @Tags Venues
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Success 200 {object} PopularityResponse
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id}/popularity [get]
func (h *Handler) venuePopularity(c *gin.Context) {
	log := h.log(c, "venuePopularity")
	id, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	score, err := h.services.Venues.PopularityScore(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PopularityResponse{VenueID: id, Score: score})
}

// @Summary List ratings of a venue
// @Tags Ratings
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Success 200 {array} RatingResponse
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id}/ratings [get]
func (h *Handler) listRatings(c *gin.Context) {
	log := h.log(c, "listRatings")
	id, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	items, err := h.services.Venues.ListRatings(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRatingResponses(items))
}

// @Summary Rate a venue
// @Description One rating per user and venue; a second POST fails with 409.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Param rating body RatingRequest true "Rating"
// @Success 201 {object} RatingResponse
// @Failure 400 {object} ErrorResponse "Rating out of range"
// @Failure 409 {object} ErrorResponse "Already rated"
// @Router /venues/{id}/ratings [post]
func (h *Handler) createRating(c *gin.Context) {
	h.saveRating(c, "createRating", http.StatusCreated, h.services.Venues.CreateRating)
}

// @Summary Create or update own rating of a venue
// @Tags Ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Venue ID"
// @Param rating body RatingRequest true "Rating"
// @Success 200 {object} RatingResponse
// @Failure 400 {object} ErrorResponse "Rating out of range"
// @Router /venues/{id}/ratings [put]
func (h *Handler) upsertRating(c *gin.Context) {
	h.saveRating(c, "upsertRating", http.StatusOK, h.services.Venues.UpsertRating)
}

func (h *Handler) saveRating(c *gin.Context, method string, status int, save func(context.Context, *models.VenueRating) error) {
	log := h.log(c, method)
	venueID, ok := pathID(c, log, "id", "venue")
	if !ok {
		return
	}

	var input RatingRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	rating := &models.VenueRating{
		UserID:  currentUser(c),
		VenueID: venueID,
		Rating:  input.Rating,
		Review:  input.Review,
	}
	if err := save(c.Request.Context(), rating); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(status, ModelToRatingResponse(rating))
}
