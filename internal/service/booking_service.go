package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
)

type BookingService struct {
	bookingRepo BookingRepository
	eventRepo   EventRepository
	serviceRepo ServiceRepository
	logger      *zap.Logger
}

func NewBookingService(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	serviceRepo ServiceRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateBooking validates the discriminator, checks the referenced event or
// service exists, and stores only the reference matching the booking type.
func (s *BookingService) CreateBooking(userID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	switch req.BookingType {
	case models.BookingTypeEvent:
		if req.EventID == nil {
			return nil, fmt.Errorf("%w: event ID is required for event booking", models.ErrValidation)
		}
		if _, err := s.eventRepo.GetByID(*req.EventID); err != nil {
			return nil, err
		}
	case models.BookingTypeService:
		if req.ServiceID == nil {
			return nil, fmt.Errorf("%w: service ID is required for service booking", models.ErrValidation)
		}
		if _, err := s.serviceRepo.GetByID(*req.ServiceID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: booking type is required", models.ErrValidation)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	booking := &models.Booking{
		UserID:        userID,
		BookingType:   req.BookingType,
		Quantity:      quantity,
		TotalPrice:    req.TotalPrice,
		BookingDate:   time.Now(),
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
		Status:        models.BookingStatusPending,
	}

	// Only the discriminator-matching reference is stored, even when both
	// were supplied.
	if req.BookingType == models.BookingTypeEvent {
		booking.EventID = req.EventID
	} else {
		booking.ServiceID = req.ServiceID
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("booking_type", string(booking.BookingType)),
	)

	return booking, nil
}

func (s *BookingService) GetBooking(id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return bookingResponse(booking), nil
}

func (s *BookingService) ListBookings() ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return bookingResponses(bookings), nil
}

func (s *BookingService) GetUserBookings(userID uuid.UUID) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return bookingResponses(bookings), nil
}

// UpdateBooking applies a partial update on behalf of the owner. A booking
// that has been cancelled cannot transition to any other status.
func (s *BookingService) UpdateBooking(id, userID uuid.UUID, req models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		return nil, models.ErrNotOwner
	}

	if req.Status != nil && booking.Status == models.BookingStatusCancelled && *req.Status != models.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: a cancelled booking cannot change status", models.ErrValidation)
	}

	if req.Quantity != nil {
		booking.Quantity = *req.Quantity
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = req.TotalPrice
	}
	if req.PreferredDate != nil {
		booking.PreferredDate = req.PreferredDate
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// CancelBooking is a status write, not a row delete. Cancelling an already
// cancelled booking is a no-op success.
func (s *BookingService) CancelBooking(id, userID uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return models.ErrNotOwner
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.bookingRepo.Update(booking); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return nil
}

func bookingResponse(booking *models.Booking) *models.BookingResponse {
	resp := &models.BookingResponse{Booking: *booking}
	if booking.User != nil {
		resp.Owner = booking.User.Summary()
	}
	if booking.Event != nil {
		resp.BookedEvent = booking.Event.Summary()
	}
	if booking.Service != nil {
		resp.BookedService = booking.Service.Summary()
	}
	return resp
}

func bookingResponses(bookings []models.Booking) []models.BookingResponse {
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *bookingResponse(&bookings[i]))
	}
	return responses
}
