package service

import (
	"context"
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/rooms/validator"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

// SearchAvailableResult is either RoomsAvailable or HotelNotFound.
type SearchAvailableResult interface {
	isSearchAvailableResult()
}

// RoomsAvailable lists free rooms ordered by room number. It is empty when
// the free rooms together cannot sleep the requested guests.
type RoomsAvailable struct {
	Rooms []*model.Room
}

type HotelNotFound struct{}

func (RoomsAvailable) isSearchAvailableResult() {}
func (HotelNotFound) isSearchAvailableResult()  {}

type RoomService interface {
	SearchAvailable(ctx context.Context, criteria model.AvailabilityCriteria) (SearchAvailableResult, error)
}

type roomService struct {
	hotels    repository.HotelRepository
	rooms     repository.RoomRepository
	bookings  repository.BookingRepository
	validator *validator.AvailabilityValidator
	cfg       *config.Config
}

func NewRoomService(repos *repository.Repositories, validator *validator.AvailabilityValidator, cfg *config.Config) RoomService {
	return &roomService{
		hotels:    repos.Hotels,
		rooms:     repos.Rooms,
		bookings:  repos.Bookings,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *roomService) SearchAvailable(ctx context.Context, criteria model.AvailabilityCriteria) (SearchAvailableResult, error) {
	criteria.ArrivalDate = model.DateOf(criteria.ArrivalDate)
	criteria.DepartureDate = model.DateOf(criteria.DepartureDate)
	if err := s.validator.Validate(&criteria); err != nil {
		s.cfg.Log.Warn("Availability search validation failed", "error", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Availability search validation failed", verrs.Details())
		}
		return nil, apperrors.Validation("Availability search validation failed", map[string]any{"error": err.Error()})
	}
	stay := criteria.Stay()

	if _, err := s.hotels.FindByID(ctx, criteria.HotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return HotelNotFound{}, nil
		}
		return nil, s.failure("Failed to load hotel", err)
	}

	rooms, err := s.rooms.FindByHotel(ctx, criteria.HotelID)
	if err != nil {
		return nil, s.failure("Failed to load rooms", err)
	}
	if len(rooms) == 0 {
		return RoomsAvailable{Rooms: []*model.Room{}}, nil
	}

	roomIDs := make([]int64, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.ID
	}

	overlapping, err := s.bookings.FindOverlappingForRooms(ctx, roomIDs, stay)
	if err != nil {
		return nil, s.failure("Failed to load bookings", err)
	}

	taken := make(map[int64]bool, len(overlapping))
	for _, b := range overlapping {
		if stay.Overlaps(b.Stay()) {
			taken[b.RoomID] = true
		}
	}

	free := make([]*model.Room, 0, len(rooms))
	for _, r := range rooms {
		if !taken[r.ID] {
			free = append(free, r)
		}
	}

	// Guests may be spread over several rooms, so only the combined
	// capacity of the free rooms has to fit them.
	if model.TotalCapacity(free) < criteria.Guests {
		s.cfg.Log.Debug("Not enough free capacity",
			"hotel_id", criteria.HotelID,
			"stay", stay.String(),
			"guests", criteria.Guests,
			"free_rooms", len(free),
		)
		return RoomsAvailable{Rooms: []*model.Room{}}, nil
	}

	s.cfg.Log.Debug("Availability search completed",
		"hotel_id", criteria.HotelID,
		"stay", stay.String(),
		"free_rooms", len(free),
	)
	return RoomsAvailable{Rooms: free}, nil
}

func (s *roomService) failure(message string, err error) error {
	s.cfg.Log.Error(message, "error", err)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return apperrors.Internal(message, err)
}
