package handler

import (
	"fmt"
	"hotelbooking/internal/bookings/service"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type createBookingRequest struct {
	RoomID         int64  `json:"room_id"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
}

type createBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createBookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Create(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	switch res := result.(type) {
	case service.BookingCreated:
		location := fmt.Sprintf("/api/v1/bookings/%d", res.BookingID)
		if err := httputil.WriteCreated(w, location, createBookingResponse{BookingID: res.BookingID}); err != nil {
			h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
		}
	case service.RoomNotFound:
		httputil.WriteError(w, apperrors.NotFoundWithID("Room", strconv.FormatInt(input.RoomID, 10)))
	case service.CapacityExceeded:
		httputil.WriteError(w, apperrors.Unprocessable(
			fmt.Sprintf("Room sleeps %d guests, %d requested", res.Capacity, res.Guests),
		))
	case service.RoomNoLongerAvailable:
		httputil.WriteError(w, apperrors.Conflict("Room is no longer available for the requested dates"))
	default:
		httputil.WriteError(w, apperrors.Internal("Unexpected booking result", fmt.Errorf("unhandled result %T", result)))
	}
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reference, err := httputil.PathID(ps, "reference")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.service.GetDetails(r.Context(), reference)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, details); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByReference", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/:reference", h.GetByReference)
}

// toInput parses the dates. Missing values are left zero for the
// validator to report.
func (req createBookingRequest) toInput() (model.CreateBookingInput, error) {
	problems := map[string]any{}
	arrival := httputil.ParseDate("check_in_date", req.CheckInDate, problems)
	departure := httputil.ParseDate("check_out_date", req.CheckOutDate, problems)
	if len(problems) > 0 {
		return model.CreateBookingInput{}, apperrors.Validation("Invalid booking request", problems)
	}

	return model.CreateBookingInput{
		RoomID:        req.RoomID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        req.NumberOfGuests,
	}, nil
}
