package mapper

import (
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) FromCreate(req *dto.CreateEventRequest) *model.Event {
	status := req.Status
	if status == "" {
		status = model.EventStatusUpcoming
	}
	return &model.Event{
		Title:           strings.TrimSpace(req.Title),
		Slug:            req.Slug,
		Description:     req.Description,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		Gallery:         stringList(req.Gallery),
		Location:        req.Location,
		EventDate:       req.EventDate,
		EndDate:         req.EndDate,
		Category:        strings.TrimSpace(req.Category),
		Status:          status,
		RegistrationUrl: req.RegistrationUrl,
		MaxParticipants: req.MaxParticipants,
		IsFeatured:      req.IsFeatured,
	}
}

func (m *EventMapper) ToUpdates(req *dto.UpdateEventRequest) map[string]interface{} {
	u := updates{}
	setTrimmed(u, "title", req.Title)
	set(u, "slug", req.Slug)
	set(u, "description", req.Description)
	set(u, "content", req.Content)
	set(u, "featured_image", req.FeaturedImage)
	setStrings(u, "gallery", req.Gallery)
	set(u, "location", req.Location)
	set(u, "event_date", req.EventDate)
	set(u, "end_date", req.EndDate)
	setTrimmed(u, "category", req.Category)
	set(u, "registration_url", req.RegistrationUrl)
	set(u, "max_participants", req.MaxParticipants)
	set(u, "is_featured", req.IsFeatured)
	return u
}
