package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// @Summary Create an invitation
// @Description Send a friend request or a meetup ping. Kind is friend-request or meetup-ping.
// @Tags Invitations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param kind path string true "Invitation kind" Enums(friend-request, meetup-ping)
// @Param invitation body CreateInvitationRequest true "Invitation"
// @Success 201 {object} InvitationResponse
// @Failure 400 {object} ErrorResponse "Invalid invitation"
// @Failure 404 {object} ErrorResponse "Receiver or venue not found"
// @Failure 409 {object} ErrorResponse "Already friends or request pending"
// @Router /invitations/{kind} [post]
func (h *Handler) createInvitation(c *gin.Context) {
	log := h.log(c, "createInvitation")
	// Маршрут делит сегмент с :id, поэтому вид приглашения лежит в параметре id
	kind := models.InvitationKind(c.Param("id"))
	if !kind.Valid() {
		respondError(c, log, fmt.Errorf("%w: unknown invitation kind %q", models.ErrInvalidInput, kind))
		return
	}

	var input CreateInvitationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	senderID := currentUser(c)

	var (
		inv *models.Invitation
		err error
	)
	switch kind {
	case models.InvitationFriendRequest:
		inv, err = h.services.Invitations.CreateFriendRequest(ctx, senderID, input.ReceiverID)
	case models.InvitationMeetupPing:
		if input.VenueID == nil {
			respondError(c, log, fmt.Errorf("%w: venue_id is required for a meetup ping", models.ErrInvalidInvitation))
			return
		}
		inv, err = h.services.Invitations.CreateMeetupPing(ctx, senderID, models.MeetupPingRequest{
			ReceiverID: input.ReceiverID,
			VenueID:    *input.VenueID,
			Message:    input.Message,
			ExpiresAt:  input.ExpiresAt,
		})
	}
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToInvitationResponse(inv))
}

// @Summary List invitations
// @Description Invitations the caller sent or received, newest first. Overdue ones are reported as expired.
// @Tags Invitations
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param kind query string false "Invitation kind" Enums(friend-request, meetup-ping)
// @Param status query string false "Invitation status"
// @Success 200 {array} InvitationResponse
// @Router /invitations [get]
func (h *Handler) listInvitations(c *gin.Context) {
	log := h.log(c, "listInvitations")

	filter := models.InvitationFilter{
		UserID: currentUser(c),
		Kind:   models.InvitationKind(c.Query("kind")),
		Status: models.InvitationStatus(c.Query("status")),
	}
	items, err := h.services.Invitations.ListInvitations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToInvitationResponses(items))
}

// @Summary Get an invitation
// @Tags Invitations
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Invitation ID"
// @Success 200 {object} InvitationResponse
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Router /invitations/{id} [get]
func (h *Handler) getInvitation(c *gin.Context) {
	log := h.log(c, "getInvitation")
	id, ok := pathID(c, log, "id", "invitation")
	if !ok {
		return
	}

	inv, err := h.services.Invitations.GetInvitation(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToInvitationResponse(inv))
}

// @Summary Accept an invitation
// @Description Only the receiver may accept. Accepting a friend request creates the friendship.
// @Tags Invitations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Invitation ID"
// @Param response body InvitationActionRequest false "Optional response message"
// @Success 200 {object} InvitationResponse
// @Failure 403 {object} ErrorResponse "Caller is not the receiver"
// @Failure 409 {object} ErrorResponse "Already processed"
// @Failure 410 {object} ErrorResponse "Expired"
// @Router /invitations/{id}/accept [post]
func (h *Handler) acceptInvitation(c *gin.Context) {
	h.respondToInvitation(c, "acceptInvitation", h.services.Invitations.Accept)
}

// @Summary Reject an invitation
// @Description Only the receiver may reject. A meetup ping becomes declined, a friend request rejected.
// @Tags Invitations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Invitation ID"
// @Param response body InvitationActionRequest false "Optional response message"
// @Success 200 {object} InvitationResponse
// @Failure 403 {object} ErrorResponse "Caller is not the receiver"
// @Failure 409 {object} ErrorResponse "Already processed"
// @Failure 410 {object} ErrorResponse "Expired"
// @Router /invitations/{id}/reject [post]
func (h *Handler) rejectInvitation(c *gin.Context) {
	h.respondToInvitation(c, "rejectInvitation", h.services.Invitations.Reject)
}

// @Summary Cancel a friend request
// @Description Only the sender may cancel a pending friend request.
// @Tags Invitations
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Caller user ID"
// @Param id path string true "Invitation ID"
// @Success 200 {object} InvitationResponse
// @Failure 400 {object} ErrorResponse "Not a friend request"
// @Failure 403 {object} ErrorResponse "Caller is not the sender"
// @Failure 409 {object} ErrorResponse "Already processed"
// @Router /invitations/{id}/cancel [post]
func (h *Handler) cancelInvitation(c *gin.Context) {
	log := h.log(c, "cancelInvitation")
	id, ok := pathID(c, log, "id", "invitation")
	if !ok {
		return
	}

	inv, err := h.services.Invitations.Cancel(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToInvitationResponse(inv))
}

type invitationAction func(ctx context.Context, actorID, id uuid.UUID, responseMessage string) (*models.Invitation, error)

// respondToInvitation обрабатывает accept и reject; тело с сообщением необязательно
func (h *Handler) respondToInvitation(c *gin.Context, method string, action invitationAction) {
	log := h.log(c, method)
	id, ok := pathID(c, log, "id", "invitation")
	if !ok {
		return
	}

	var input InvitationActionRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, log, &input) {
		return
	}

	inv, err := action(c.Request.Context(), currentUser(c), id, input.Message)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToInvitationResponse(inv))
}
