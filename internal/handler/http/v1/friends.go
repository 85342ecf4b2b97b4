package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary List friends
// @Description List the caller's friends with their shared locations and the friend count.
// @Tags Friends
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Success 200 {object} FriendsResponse
// @Router /friends [get]
func (h *Handler) listFriends(c *gin.Context) {
	log := h.log(c, "listFriends")
	ctx := c.Request.Context()
	userID := currentUser(c)

	friends, err := h.services.Social.ListFriends(ctx, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	count, err := h.services.Social.FriendCount(ctx, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	resp := FriendsResponse{Count: count, Friends: make([]FriendResponse, len(friends))}
	for i, f := range friends {
		resp.Friends[i] = ModelToFriendResponse(f)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Remove a friend
// @Description Remove the friendship in both directions. Idempotent.
// @Tags Friends
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Friend user ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Router /friends/{id} [delete]
func (h *Handler) removeFriend(c *gin.Context) {
	log := h.log(c, "removeFriend")
	friendID, ok := pathID(c, log, "id", "user")
	if !ok {
		return
	}

	if err := h.services.Social.RemoveFriendship(c.Request.Context(), currentUser(c), friendID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Find nearby friends
// @Description Friends sharing their location within radius meters of the point, nearest first.
// @Description Without coordinates the caller's own shared location is used.
// @Tags Friends
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param radius query number false "Radius in meters" default(1000)
// @Success 200 {array} NearbyFriendResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates or radius"
// @Router /friends/nearby [get]
func (h *Handler) nearbyFriends(c *gin.Context) {
	log := h.log(c, "nearbyFriends")
	ctx := c.Request.Context()
	userID := currentUser(c)

	center, err := h.resolveCenter(c, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	radius := h.cfg.DefaultNearbyRadiusMeters
	if v, ok, err := queryFloat(c, "radius"); err != nil {
		badRequest(c, log, err, "invalid radius")
		return
	} else if ok {
		radius = v
	}

	nearby, err := h.services.Proximity.NearbyFriends(ctx, userID, center, radius)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyFriendResponses(nearby))
}

// resolveCenter берёт точку из запроса, иначе - общую геопозицию вызывающего
func (h *Handler) resolveCenter(c *gin.Context, userID uuid.UUID) (models.Location, error) {
	lat, hasLat, errLat := queryFloat(c, "latitude")
	lng, hasLng, errLng := queryFloat(c, "longitude")
	if errLat != nil || errLng != nil {
		return models.Location{}, fmt.Errorf("%w: coordinates must be numbers", models.ErrInvalidLocation)
	}
	if hasLat && hasLng {
		return models.Location{Latitude: lat, Longitude: lng}, nil
	}
	if hasLat != hasLng {
		return models.Location{}, fmt.Errorf("%w: both latitude and longitude are required", models.ErrInvalidLocation)
	}

	profile, err := h.services.Accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return models.Location{}, err
	}
	loc, ok := profile.SharedLocation()
	if !ok {
		return models.Location{}, fmt.Errorf("%w: no coordinates given and user %s shares no location", models.ErrInvalidLocation, userID)
	}
	return loc, nil
}
