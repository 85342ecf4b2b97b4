package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger), RequestTimeoutMiddleware(h.cfg.RequestTimeout))

	// Регистрация не требует идентификатора пользователя
	protected.POST("/accounts", h.createAccount)

	user := protected.Group("")
	user.Use(UserIdentityMiddleware(h.logger))

	profile := user.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PATCH("", h.updateProfile)
		profile.PUT("/location", h.updateLocation)
	}

	friends := user.Group("/friends")
	{
		friends.GET("", h.listFriends)
		friends.GET("/nearby", h.nearbyFriends)
		friends.DELETE("/:id", h.removeFriend)
	}

	// Создание делит сегмент с :id: POST /invitations/friend-request
	invitations := user.Group("/invitations")
	{
		invitations.GET("", h.listInvitations)
		invitations.POST("/:id", h.createInvitation)
		invitations.GET("/:id", h.getInvitation)
		invitations.POST("/:id/accept", h.acceptInvitation)
		invitations.POST("/:id/reject", h.rejectInvitation)
		invitations.POST("/:id/cancel", h.cancelInvitation)
	}

	venues := user.Group("/venues")
	{
		venues.POST("", h.createVenue)
		venues.GET("", h.listVenues)
		venues.GET("/:id", h.getVenue)
		venues.PATCH("/:id", h.updateVenue)
		venues.GET("/:id/current-vibe", h.currentVibe)
		venues.GET("/:id/popularity", h.venuePopularity)
		venues.GET("/:id/ratings", h.listRatings)
		venues.POST("/:id/ratings", h.createRating)
		venues.PUT("/:id/ratings", h.upsertRating)
	}

	checkins := user.Group("/checkins")
	{
		checkins.POST("", h.createCheckIn)
		checkins.GET("", h.listFeed)
		checkins.GET("/:id", h.getCheckIn)
		checkins.DELETE("/:id", h.deleteCheckIn)
	}

	user.GET("/notifications", h.listNotifications)
	user.POST("/notifications/:id/read", h.markNotificationRead)
	user.POST("/device-tokens", h.registerDeviceToken)
}
