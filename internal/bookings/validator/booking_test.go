package validator

import (
	"errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"testing"
	"time"
)

func newTestValidator() *BookingValidator {
	v := NewBookingValidator(logger.Discard(), 25)
	v.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	return v
}

func date(s string) time.Time {
	t, _ := model.ParseDate(s)
	return t
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name       string
		input      model.CreateBookingInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-10"), DepartureDate: date("2026-03-11"), Guests: 1},
		},
		{
			name:       "zero room",
			input:      model.CreateBookingInput{RoomID: 0, ArrivalDate: date("2026-03-12"), DepartureDate: date("2026-03-13"), Guests: 1},
			wantFields: []string{"room_id"},
		},
		{
			name:       "arrival in the past",
			input:      model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-09"), DepartureDate: date("2026-03-11"), Guests: 1},
			wantFields: []string{"check_in_date"},
		},
		{
			name:       "departure equals arrival",
			input:      model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-12"), DepartureDate: date("2026-03-12"), Guests: 1},
			wantFields: []string{"check_out_date"},
		},
		{
			name:       "too many guests",
			input:      model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-12"), DepartureDate: date("2026-03-13"), Guests: 26},
			wantFields: []string{"number_of_guests"},
		},
		{
			name:       "no guests and missing dates",
			input:      model.CreateBookingInput{RoomID: 1},
			wantFields: []string{"check_in_date", "check_out_date", "number_of_guests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			details := verrs.Details()
			for _, field := range tt.wantFields {
				if _, ok := details[field]; !ok {
					t.Errorf("expected error for %s, got %v", field, details)
				}
			}
			if len(details) != len(tt.wantFields) {
				t.Errorf("expected %d fields, got %v", len(tt.wantFields), details)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "room_id", Message: "room_id must be at least 1"}}
	want := "validation failed: 1 error(s): [room_id: room_id must be at least 1]"
	if errs.Error() != want {
		t.Errorf("got %q", errs.Error())
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty errors should render empty")
	}
}

func TestValidate_TodayIsUTCDay(t *testing.T) {
	v := NewBookingValidator(logger.Discard(), 25)
	// 23:30 on the 10th at UTC-5 is already the 11th in UTC
	v.now = func() time.Time { return time.Date(2026, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)) }

	err := v.Validate(&model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-10"), DepartureDate: date("2026-03-12"), Guests: 1})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if _, ok := verrs.Details()["check_in_date"]; !ok {
		t.Errorf("expected check_in_date error, got %v", verrs.Details())
	}

	if err := v.Validate(&model.CreateBookingInput{RoomID: 1, ArrivalDate: date("2026-03-11"), DepartureDate: date("2026-03-12"), Guests: 1}); err != nil {
		t.Errorf("arrival on the UTC day should pass, got %v", err)
	}
}
