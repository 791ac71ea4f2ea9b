package mysql

import (
	"errors"
	"fmt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/model"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	notFound := errors.New("thing not found")

	assert.Equal(t, notFound, translateError(gorm.ErrRecordNotFound, notFound))
	assert.Equal(t, notFound, translateError(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), notFound))

	dup := &mysql.MySQLError{Number: errDuplicateEntry, Message: "Duplicate entry '1-101' for key 'idx_rooms_hotel_number'"}
	assert.ErrorIs(t, translateError(dup, notFound), repository.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other, notFound))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
}

func TestModels_ParentsFirst(t *testing.T) {
	models := Models()
	assert.Len(t, models, 3)
	assert.IsType(t, &model.Hotel{}, models[0])
	assert.IsType(t, &model.Room{}, models[1])
	assert.IsType(t, &model.Booking{}, models[2])
}
