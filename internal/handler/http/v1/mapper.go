package v1

import (
	"github.com/shenikar/nightlife_presence/internal/models"
)

func locationToDTO(loc *models.Location) *LocationDTO {
	if loc == nil {
		return nil
	}
	return &LocationDTO{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

func dtoToLocation(dto *LocationDTO) *models.Location {
	if dto == nil {
		return nil
	}
	return &models.Location{Latitude: dto.Latitude, Longitude: dto.Longitude}
}

// ModelToProfileResponse отдаёт координаты только при включённом шеринге
func ModelToProfileResponse(p *models.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		UserID:          p.UserID,
		Username:        p.Username,
		Bio:             p.Bio,
		LocationSharing: p.LocationSharing,
		UpdatedAt:       p.UpdatedAt,
	}
	if loc, ok := p.SharedLocation(); ok {
		resp.Location = locationToDTO(&loc)
	}
	return resp
}

func ModelToAccountResponse(a *models.Account, p *models.UserProfile) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		Profile:   ModelToProfileResponse(p),
	}
}

func DTOToProfileUpdate(dto UpdateProfileRequest) models.ProfileUpdate {
	return models.ProfileUpdate{
		Bio:             dto.Bio,
		LocationSharing: dto.LocationSharing,
		Location:        dtoToLocation(dto.Location),
	}
}

func ModelToFriendResponse(p *models.UserProfile) FriendResponse {
	resp := FriendResponse{UserID: p.UserID, Username: p.Username, Bio: p.Bio}
	if loc, ok := p.SharedLocation(); ok {
		resp.Location = locationToDTO(&loc)
	}
	return resp
}

func ModelsToNearbyFriendResponses(items []models.NearbyFriend) []NearbyFriendResponse {
	responses := make([]NearbyFriendResponse, len(items))
	for i, n := range items {
		responses[i] = NearbyFriendResponse{
			FriendResponse: ModelToFriendResponse(n.Profile),
			DistanceMeters: n.DistanceMeters,
		}
	}
	return responses
}

func ModelToInvitationResponse(inv *models.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:              inv.ID,
		Kind:            string(inv.Kind),
		SenderID:        inv.SenderID,
		ReceiverID:      inv.ReceiverID,
		VenueID:         inv.VenueID,
		Message:         inv.Message,
		ResponseMessage: inv.ResponseMessage,
		Status:          string(inv.Status),
		ExpiresAt:       inv.ExpiresAt,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func ModelsToInvitationResponses(items []*models.Invitation) []*InvitationResponse {
	responses := make([]*InvitationResponse, len(items))
	for i, inv := range items {
		responses[i] = ModelToInvitationResponse(inv)
	}
	return responses
}

func DTOToVenueModel(dto CreateVenueRequest) *models.Venue {
	v := &models.Venue{
		Name:        dto.Name,
		Address:     dto.Address,
		City:        dto.City,
		Description: dto.Description,
		Category:    models.VenueCategory(dto.Category),
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		v.Location = models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return v
}

func DTOToVenueUpdate(dto UpdateVenueRequest) models.VenueUpdate {
	update := models.VenueUpdate{
		Name:        dto.Name,
		Address:     dto.Address,
		City:        dto.City,
		Description: dto.Description,
	}
	if dto.Category != nil {
		category := models.VenueCategory(*dto.Category)
		update.Category = &category
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		update.Location = &models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return update
}

func ModelToVenueResponse(v *models.Venue) *VenueResponse {
	return &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Address:     v.Address,
		City:        v.City,
		Description: v.Description,
		Category:    string(v.Category),
		Location:    LocationDTO{Latitude: v.Location.Latitude, Longitude: v.Location.Longitude},
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// ModelsToVenueResponses добавляет расстояние, только если выборка шла от точки
func ModelsToVenueResponses(items []*models.VenueDistance, withDistance bool) []*VenueResponse {
	responses := make([]*VenueResponse, len(items))
	for i, item := range items {
		resp := ModelToVenueResponse(item.Venue)
		if withDistance {
			d := item.DistanceMeters
			resp.DistanceMeters = &d
		}
		responses[i] = resp
	}
	return responses
}

func ModelToRatingResponse(r *models.VenueRating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		VenueID:   r.VenueID,
		Rating:    r.Rating,
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ModelsToRatingResponses(items []*models.VenueRating) []*RatingResponse {
	responses := make([]*RatingResponse, len(items))
	for i, r := range items {
		responses[i] = ModelToRatingResponse(r)
	}
	return responses
}

func ModelToCheckInResponse(c *models.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		VenueID:    c.VenueID,
		VibeRating: string(c.VibeRating),
		Visibility: string(c.Visibility),
		Timestamp:  c.Timestamp,
	}
}

func ModelsToCheckInResponses(items []*models.CheckIn) []*CheckInResponse {
	responses := make([]*CheckInResponse, len(items))
	for i, c := range items {
		responses[i] = ModelToCheckInResponse(c)
	}
	return responses
}

func ModelsToNotificationResponses(items []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(items))
	for i, n := range items {
		responses[i] = &NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}
