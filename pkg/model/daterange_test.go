package model

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name        string
		a1, d1      string
		a2, d2      string
		expectation bool
	}{
		{"identical", "2026-05-01", "2026-05-05", "2026-05-01", "2026-05-05", true},
		{"partial at start", "2026-05-01", "2026-05-05", "2026-04-28", "2026-05-02", true},
		{"partial at end", "2026-05-01", "2026-05-05", "2026-05-04", "2026-05-08", true},
		{"subset", "2026-05-01", "2026-05-10", "2026-05-03", "2026-05-04", true},
		{"superset", "2026-05-03", "2026-05-04", "2026-05-01", "2026-05-10", true},
		{"back to back after", "2026-05-01", "2026-05-05", "2026-05-05", "2026-05-07", false},
		{"back to back before", "2026-05-05", "2026-05-07", "2026-05-01", "2026-05-05", false},
		{"disjoint", "2026-05-01", "2026-05-03", "2026-06-01", "2026-06-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.a1), date(tt.d1), date(tt.a2), date(tt.d2))
			if got != tt.expectation {
				t.Errorf("Overlaps(%s, %s, %s, %s) = %v, want %v", tt.a1, tt.d1, tt.a2, tt.d2, got, tt.expectation)
			}

			reverse := Overlaps(date(tt.a2), date(tt.d2), date(tt.a1), date(tt.d1))
			if reverse != got {
				t.Errorf("overlap is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	local := time.FixedZone("UTC+3", 3*60*60)
	r := NewDateRange(
		time.Date(2026, 5, 1, 23, 30, 0, 0, local),
		time.Date(2026, 5, 4, 8, 0, 0, 0, local),
	)

	if !r.Arrival.Equal(date("2026-05-01")) {
		t.Errorf("expected arrival truncated to 2026-05-01, got %s", r.Arrival)
	}
	if r.Nights() != 3 {
		t.Errorf("expected 3 nights, got %d", r.Nights())
	}
	if r.String() != "[2026-05-01, 2026-05-04)" {
		t.Errorf("unexpected string form %q", r.String())
	}

	next := NewDateRange(date("2026-05-04"), date("2026-05-06"))
	if r.Overlaps(next) {
		t.Error("checkout day must be free for the next arrival")
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2026-13-01", "01/05/2026", "2026-05-01T10:00:00Z"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestRoomTypeCapacity(t *testing.T) {
	tests := []struct {
		roomType RoomType
		capacity int
	}{
		{RoomTypeSingle, 1},
		{RoomTypeDouble, 2},
		{RoomTypeDeluxe, 4},
		{RoomType("Suite"), 0},
	}

	for _, tt := range tests {
		if got := tt.roomType.Capacity(); got != tt.capacity {
			t.Errorf("%s capacity = %d, want %d", tt.roomType, got, tt.capacity)
		}
	}

	if _, err := ParseRoomType("Penthouse"); err == nil {
		t.Error("expected error for unknown room type")
	}
}

func TestTotalCapacity(t *testing.T) {
	single := NewRoom(101, RoomTypeSingle)
	deluxe := NewRoom(102, RoomTypeDeluxe)

	if got := TotalCapacity([]*Room{&single, &deluxe}); got != 5 {
		t.Errorf("expected total capacity 5, got %d", got)
	}
	if got := TotalCapacity(nil); got != 0 {
		t.Errorf("expected 0 for no rooms, got %d", got)
	}
}
