package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - зависимости HTTP-слоя
type Services struct {
	Accounts      service.AccountService
	Social        service.SocialGraph
	Vibe          service.VibeService
	Invitations   service.InvitationService
	Proximity     service.ProximityService
	CheckIns      service.CheckInService
	Venues        service.VenueService
	Notifications service.NotificationService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	fields := logrus.Fields{"method": method}
	if id := currentUser(c); id != uuid.Nil {
		fields["user_id"] = id
	}
	return h.logger.WithFields(fields)
}

// bindJSON разбирает и валидирует тело запроса; при ошибке ответ уже записан
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, log, err, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// pathID разбирает uuid из параметра пути; при ошибке ответ уже записан
func pathID(c *gin.Context, log *logrus.Entry, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, log, err, "invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryFloat возвращает значение параметра и признак его наличия
func queryFloat(c *gin.Context, name string) (float64, bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
