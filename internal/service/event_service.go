package service

import (
	"github.com/google/uuid"

	"github.com/polishedevents/backend/internal/models"
)

type EventService struct {
	eventRepo EventRepository
}

func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) CreateEvent(userID uuid.UUID, req models.CreateEventRequest) (*models.Event, error) {
	eventType := req.EventType
	if eventType == "" {
		eventType = models.EventTypeOther
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventType:   eventType,
		Location:    req.Location,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		GuestCount:  req.GuestCount,
		Budget:      req.Budget,
		ImageURL:    req.ImageURL,
		Status:      models.EventStatusUpcoming,
		UserID:      userID,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) GetEvent(id uuid.UUID) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return eventResponse(event), nil
}

func (s *EventService) ListEvents(filter models.EventFilter) ([]models.EventResponse, error) {
	events, err := s.eventRepo.List(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *eventResponse(&events[i]))
	}
	return responses, nil
}

func (s *EventService) GetUserEvents(userID uuid.UUID) ([]models.Event, error) {
	return s.eventRepo.ListByUser(userID)
}

func (s *EventService) UpdateEvent(id, userID uuid.UUID, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if event.UserID != userID {
		return nil, models.ErrNotOwner
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.GuestCount != nil {
		event.GuestCount = req.GuestCount
	}
	if req.Budget != nil {
		event.Budget = req.Budget
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) DeleteEvent(id, userID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return err
	}

	if event.UserID != userID {
		return models.ErrNotOwner
	}

	return s.eventRepo.Delete(id)
}

func eventResponse(event *models.Event) *models.EventResponse {
	resp := &models.EventResponse{Event: *event}
	if event.User != nil {
		resp.Owner = event.User.Summary()
	}
	return resp
}
