package handler

import (
	"fmt"
	"hotelbooking/internal/rooms/service"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

// SearchAvailable answers GET /api/v1/hotels/:hotelId/rooms?check_in_date=&check_out_date=&number_of_guests=
func (h *RoomHandler) SearchAvailable(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotelID, err := httputil.PathID(ps, "hotelId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	problems := map[string]any{}
	criteria := model.AvailabilityCriteria{
		HotelID:       hotelID,
		ArrivalDate:   httputil.QueryDate(r, "check_in_date", problems),
		DepartureDate: httputil.QueryDate(r, "check_out_date", problems),
		Guests:        httputil.QueryInt(r, "number_of_guests", problems),
	}
	if len(problems) > 0 {
		httputil.WriteError(w, apperrors.Validation("Invalid availability query", problems))
		return
	}

	result, err := h.service.SearchAvailable(r.Context(), criteria)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	switch res := result.(type) {
	case service.RoomsAvailable:
		rooms := make([]model.AvailableRoom, 0, len(res.Rooms))
		for _, room := range res.Rooms {
			rooms = append(rooms, room.Available())
		}
		if err := httputil.WriteSuccess(w, rooms); err != nil {
			h.log.Error("failed to write success response", "handler", "SearchAvailable", "operation", "WriteSuccess", "error", err)
		}
	case service.HotelNotFound:
		httputil.WriteError(w, apperrors.NotFoundWithID("Hotel", strconv.FormatInt(hotelID, 10)))
	default:
		httputil.WriteError(w, apperrors.Internal("Unexpected search result", fmt.Errorf("unhandled result %T", result)))
	}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/hotels/:hotelId/rooms", h.SearchAvailable)
}
