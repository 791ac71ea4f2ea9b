package http

import (
	"errors"
	apperrors "hotelbooking/pkg/errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"valid", "17", 17, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathID(httprouter.Params{{Key: "id", Value: tt.value}}, "id")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				if apperrors.AsAppError(err).StatusCode() != http.StatusBadRequest {
					t.Errorf("expected 400 for %q", tt.value)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("PathID(%q) = %d, %v", tt.value, got, err)
			}
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/rooms?check_in_date=2026-05-01&check_out_date=bad&number_of_guests=x", nil)
	problems := map[string]any{}

	in := QueryDate(req, "check_in_date", problems)
	QueryDate(req, "check_out_date", problems)
	QueryInt(req, "number_of_guests", problems)
	missing := QueryInt(req, "absent", problems)

	if in.Format("2006-01-02") != "2026-05-01" {
		t.Errorf("unexpected check-in %s", in)
	}
	if missing != 0 {
		t.Errorf("missing int should be 0, got %d", missing)
	}
	if _, ok := problems["check_out_date"]; !ok {
		t.Error("expected problem for malformed date")
	}
	if _, ok := problems["number_of_guests"]; !ok {
		t.Error("expected problem for malformed integer")
	}
	if len(problems) != 2 {
		t.Errorf("expected 2 problems, got %v", problems)
	}
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		RoomID int64 `json:"room_id"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"room_id": 3}`))
	if err := DecodeJSON(req, &body); err != nil || body.RoomID != 3 {
		t.Fatalf("unexpected decode result %v %+v", err, body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"room": 3}`))
	if err := DecodeJSON(req, &body); err == nil {
		t.Error("expected unknown field to be rejected")
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	if err := DecodeJSON(req, &body); err == nil {
		t.Error("expected empty body to be rejected")
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperrors.Conflict("Room is no longer available"))

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"CONFLICT"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	WriteError(rec, errors.New("driver exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain error, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "driver exploded") {
		t.Error("internal error detail leaked to client")
	}
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteCreated(rec, "/api/v1/bookings/9", map[string]int64{"booking_id": 9}); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "/api/v1/bookings/9" {
		t.Errorf("unexpected Location %q", rec.Header().Get("Location"))
	}
	if !strings.Contains(rec.Body.String(), `"booking_id":9`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
