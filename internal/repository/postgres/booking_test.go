package postgres

import (
	"hotelbooking/pkg/model"
	"strings"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapSelect_HalfOpenPredicate(t *testing.T) {
	stay := model.NewDateRange(
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
	)

	query, args, err := overlapSelect(goqu.C("room_id").Eq(int64(7)), stay).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, query, `"arrival_date" < $2`)
	assert.Contains(t, query, `"departure_date" > $3`)
	assert.True(t, strings.HasPrefix(query, `SELECT "id", "room_id", "arrival_date", "departure_date", "guests", "created_at" FROM "bookings"`))
	require.Len(t, args, 3)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, stay.Departure, args[1])
	assert.Equal(t, stay.Arrival, args[2])
}

func TestOverlapSelect_ManyRooms(t *testing.T) {
	stay := model.NewDateRange(time.Now(), time.Now().AddDate(0, 0, 2))

	query, args, err := overlapSelect(goqu.C("room_id").In([]int64{1, 2, 3}), stay).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, query, `"room_id" IN ($1, $2, $3)`)
	assert.Len(t, args, 5)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale`, escapeLike("50% off_sale"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
	assert.Equal(t, "Grand", escapeLike("Grand"))
}
