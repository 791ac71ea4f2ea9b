package service

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/bookings/validator"
	"hotelbooking/internal/events"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/roomlock"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"strconv"
)

// CreateBookingResult is one of BookingCreated, RoomNotFound,
// CapacityExceeded or RoomNoLongerAvailable.
type CreateBookingResult interface {
	isCreateBookingResult()
}

type BookingCreated struct {
	BookingID int64
}

type RoomNotFound struct{}

type CapacityExceeded struct {
	Capacity int
	Guests   int
}

type RoomNoLongerAvailable struct{}

func (BookingCreated) isCreateBookingResult()        {}
func (RoomNotFound) isCreateBookingResult()          {}
func (CapacityExceeded) isCreateBookingResult()      {}
func (RoomNoLongerAvailable) isCreateBookingResult() {}

type BookingService interface {
	// Create books a room for a date range. Business outcomes are returned
	// as a result; the error is reserved for invalid input and
	// infrastructure failures.
	Create(ctx context.Context, input model.CreateBookingInput) (CreateBookingResult, error)
	GetDetails(ctx context.Context, reference int64) (*model.BookingDetails, error)
}

type bookingService struct {
	hotels    repository.HotelRepository
	rooms     repository.RoomRepository
	bookings  repository.BookingRepository
	guard     roomlock.Guard
	publisher events.Publisher
	validator *validator.BookingValidator
	cfg       *config.Config
}

func NewBookingService(
	repos *repository.Repositories,
	guard roomlock.Guard,
	publisher events.Publisher,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &bookingService{
		hotels:    repos.Hotels,
		rooms:     repos.Rooms,
		bookings:  repos.Bookings,
		guard:     guard,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, input model.CreateBookingInput) (CreateBookingResult, error) {
	input = input.Normalize()
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	stay := input.Stay()

	room, err := s.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			s.cfg.Log.Info("Booking rejected, room not found", "room_id", input.RoomID)
			return RoomNotFound{}, nil
		}
		return nil, s.failure("Failed to load room", err)
	}

	if input.Guests > room.Capacity {
		s.cfg.Log.Info("Booking rejected, capacity exceeded",
			"room_id", room.ID,
			"capacity", room.Capacity,
			"guests", input.Guests,
		)
		return CapacityExceeded{Capacity: room.Capacity, Guests: input.Guests}, nil
	}

	lock, err := s.guard.Acquire(ctx, room.ID)
	if err != nil {
		return nil, s.failure("Failed to acquire room lock", err)
	}
	defer lock.Release()

	var (
		result  CreateBookingResult
		booking *model.Booking
	)
	err = s.bookings.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.bookings.FindOverlapping(txCtx, room.ID, stay)
		if err != nil {
			return fmt.Errorf("find overlapping bookings: %w", err)
		}
		for _, b := range existing {
			if stay.Overlaps(b.Stay()) {
				s.cfg.Log.Info("Booking rejected, room no longer available",
					"room_id", room.ID,
					"stay", stay.String(),
					"conflicting_booking", b.ID,
				)
				result = RoomNoLongerAvailable{}
				return nil
			}
		}

		booking = &model.Booking{
			RoomID:        room.ID,
			ArrivalDate:   stay.Arrival,
			DepartureDate: stay.Departure,
			Guests:        input.Guests,
		}
		if err := s.bookings.Create(txCtx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		result = BookingCreated{BookingID: booking.ID}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "room_id", room.ID, "error", err)
		return nil, s.failure("Failed to create booking", err)
	}

	// other requests for the room may proceed while the event is sent
	lock.Release()

	if created, ok := result.(BookingCreated); ok {
		s.cfg.Log.Info("Booking created successfully",
			"booking_id", created.BookingID,
			"room_id", room.ID,
			"stay", stay.String(),
			"guests", input.Guests,
		)
		s.publishCreated(ctx, booking)
	}
	return result, nil
}

func (s *bookingService) GetDetails(ctx context.Context, reference int64) (*model.BookingDetails, error) {
	if reference < 1 {
		return nil, apperrors.InvalidInput("Booking reference must be a positive integer")
	}

	booking, err := s.bookings.FindByID(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", strconv.FormatInt(reference, 10))
		}
		return nil, s.failure("Failed to retrieve booking", err)
	}

	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, s.failure("Failed to retrieve booked room", err)
	}

	hotel, err := s.hotels.FindByID(ctx, room.HotelID)
	if err != nil {
		return nil, s.failure("Failed to retrieve booked hotel", err)
	}

	return model.NewBookingDetails(booking, room, hotel), nil
}

// --- Helpers ---

func (s *bookingService) validate(input *model.CreateBookingInput) error {
	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation("Booking validation failed", verrs.Details())
		}
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// failure keeps context errors recognisable so they map to a timeout
// instead of an internal error.
func (s *bookingService) failure(message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return apperrors.Internal(message, err)
}

func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	ctx = context.WithoutCancel(ctx)
	if err := s.publisher.PublishBookingCreated(ctx, events.NewBookingCreated(booking)); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
