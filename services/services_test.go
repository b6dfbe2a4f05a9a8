package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelops/config"
	"hotelops/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func mustAddRoom(t *testing.T, db *gorm.DB, number, rate string) models.Room {
	t.Helper()
	room, err := NewRoomService(db).AddRoom(number, models.RoomTypeDouble, rate, "")
	require.NoError(t, err)
	return room
}

func mustCreateBooking(t *testing.T, db *gorm.DB, roomNumber, customer string, inDays, outDays int) models.Booking {
	t.Helper()
	booking, err := NewBookingService(db).CreateBooking(
		roomNumber, customer, "555-0100",
		futureDate(inDays), futureDate(outDays),
	)
	require.NoError(t, err)
	return booking
}

func futureDate(days int) string {
	return today().AddDate(0, 0, days).Format(dateLayout)
}

func insertBooking(t *testing.T, db *gorm.DB, b models.Booking) models.Booking {
	t.Helper()
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now().UTC()
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
