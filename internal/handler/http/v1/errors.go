package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrorResponse - тело ответа с ошибкой
// @Description Тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	target error
	status int
}

// Порядок важен: первый совпавший sentinel определяет статус
var errorMappings = []errorMapping{
	{models.ErrInvalidLocation, http.StatusBadRequest},
	{models.ErrInvalidInvitation, http.StatusBadRequest},
	{models.ErrInvalidInput, http.StatusBadRequest},
	{models.ErrExpired, http.StatusGone},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrConflict, http.StatusConflict},
	{models.ErrAlreadyProcessed, http.StatusConflict},
	{models.ErrTimeout, http.StatusGatewayTimeout},
}

// statusFor переводит доменную ошибку в HTTP-статус
func statusFor(err error) int {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError пишет ответ об ошибке. Текст внутренних ошибок наружу не отдаётся.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, log *logrus.Entry, err error, message string) {
	log.WithError(err).Warn("Bad request")
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
