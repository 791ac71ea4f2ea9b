package mongo

import (
	"hotelbooking/internal/repository/mongodb"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCollections_CoverRepositoryCollections(t *testing.T) {
	want := []string{
		mongodb.HotelsCollection,
		mongodb.RoomsCollection,
		mongodb.BookingsCollection,
		mongodb.CountersCollection,
	}
	defs := Collections()
	if len(defs) != len(want) {
		t.Fatalf("expected %d collections, got %d", len(want), len(defs))
	}
	for i, def := range defs {
		if def.Name != want[i] {
			t.Errorf("collection %d: expected %s, got %s", i, want[i], def.Name)
		}
		if def.Validator == nil {
			t.Errorf("collection %s has no validator", def.Name)
		}
	}
}

func TestRoomsIndexes_UniqueRoomNumberPerHotel(t *testing.T) {
	if len(RoomsIndexes) != 1 {
		t.Fatalf("expected one rooms index, got %d", len(RoomsIndexes))
	}
	idx := RoomsIndexes[0]
	keys, ok := idx.Keys.(bson.D)
	if !ok {
		t.Fatalf("unexpected key type %T", idx.Keys)
	}
	if len(keys) != 2 || keys[0].Key != "hotel_id" || keys[1].Key != "room_number" {
		t.Errorf("unexpected keys: %v", keys)
	}
	if idx.Options == nil || idx.Options.Unique == nil || !*idx.Options.Unique {
		t.Error("rooms index must be unique")
	}
}

func TestBookingsIndexes_LeadWithRoom(t *testing.T) {
	keys := BookingsIndexes[0].Keys.(bson.D)
	if keys[0].Key != "room_id" {
		t.Errorf("bookings index should lead with room_id, got %s", keys[0].Key)
	}
}
