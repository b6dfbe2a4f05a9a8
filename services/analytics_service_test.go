package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func TestWeeklyMetricsWindow(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")
	mustAddRoom(t, db, "102", "100")

	// a Wednesday; its ISO week runs Mon 2026-08-10 through Sun 2026-08-16
	reference := time.Date(2026, 8, 12, 15, 30, 0, 0, time.UTC)
	weekStart := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "In Week", TotalAmount: dec("200"),
		CheckInDate: weekStart, CheckOutDate: weekStart.AddDate(0, 0, 2),
		BookingDate: weekStart,
	})
	insertBooking(t, db, models.Booking{
		RoomNumber: "102", CustomerName: "Sunday Edge", TotalAmount: dec("400"),
		CheckInDate: weekStart, CheckOutDate: weekStart.AddDate(0, 0, 7),
		BookingDate: weekStart.AddDate(0, 0, 6).Add(23 * time.Hour),
	})
	insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "Next Week", TotalAmount: dec("999"),
		CheckInDate: weekStart.AddDate(0, 0, 7), CheckOutDate: weekStart.AddDate(0, 0, 9),
		BookingDate: weekStart.AddDate(0, 0, 7),
	})

	metrics, err := NewAnalyticsService(db).WeeklyMetrics(reference)
	require.NoError(t, err)

	assert.Equal(t, weekStart, metrics.PeriodStart)
	assert.Equal(t, weekStart.AddDate(0, 0, 6), metrics.PeriodEnd)
	assert.Equal(t, 2, metrics.BookingCount)
	assert.True(t, metrics.TotalRevenue.Equal(dec("600")))
	assert.True(t, metrics.AvgBookingValue.Equal(dec("300")))
	assert.InDelta(t, 100.0, metrics.OccupancyRate, 0.001)
}

func TestMonthlyMetricsDecemberRollover(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")

	december := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "New Years Eve", TotalAmount: dec("150"),
		CheckInDate: december, CheckOutDate: december.AddDate(0, 0, 1),
		BookingDate: time.Date(2025, 12, 31, 22, 0, 0, 0, time.UTC),
	})
	insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "January", TotalAmount: dec("150"),
		CheckInDate: december, CheckOutDate: december.AddDate(0, 0, 1),
		BookingDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	metrics, err := NewAnalyticsService(db).MonthlyMetrics(december)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), metrics.PeriodStart)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), metrics.PeriodEnd)
	assert.Equal(t, 1, metrics.BookingCount)
}

func TestMetricsWithNoRoomsOrBookings(t *testing.T) {
	db := newTestDB(t)

	metrics, err := NewAnalyticsService(db).MonthlyMetrics(time.Now().UTC())
	require.NoError(t, err)

	assert.Zero(t, metrics.BookingCount)
	assert.True(t, metrics.TotalRevenue.IsZero())
	assert.True(t, metrics.AvgBookingValue.IsZero())
	assert.Zero(t, metrics.OccupancyRate)
}

func TestBookingTrendsAndGrowth(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")

	thisMonth := startOfMonth(time.Now().UTC())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	// last month: 10 bookings worth 1000; this month: 15 worth 1500
	for i := 0; i < 10; i++ {
		insertBooking(t, db, models.Booking{
			RoomNumber: "101", CustomerName: "Past Guest", TotalAmount: dec("100"),
			CheckInDate: lastMonth, CheckOutDate: lastMonth.AddDate(0, 0, 1),
			BookingDate: lastMonth.Add(time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 15; i++ {
		insertBooking(t, db, models.Booking{
			RoomNumber: "101", CustomerName: "Recent Guest", TotalAmount: dec("100"),
			CheckInDate: thisMonth, CheckOutDate: thisMonth.AddDate(0, 0, 1),
			BookingDate: thisMonth.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := NewAnalyticsService(db)

	trends, err := svc.BookingTrends(6)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, lastMonth.Format(monthLayout), trends[0].Month)
	assert.Equal(t, 10, trends[0].BookingCount)
	assert.Equal(t, thisMonth.Format(monthLayout), trends[1].Month)
	assert.Equal(t, 15, trends[1].BookingCount)
	assert.True(t, trends[1].TotalRevenue.Equal(dec("1500")))

	growth, err := svc.ComputeGrowthRates(6)
	require.NoError(t, err)
	require.NotNil(t, growth.BookingGrowth)
	require.NotNil(t, growth.RevenueGrowth)
	assert.InDelta(t, 50.0, *growth.BookingGrowth, 0.001)
	assert.InDelta(t, 50.0, *growth.RevenueGrowth, 0.001)
}

func TestGrowthRatesUndefinedWithSingleMonth(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")

	thisMonth := startOfMonth(time.Now().UTC())
	insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "Only Guest", TotalAmount: dec("100"),
		CheckInDate: thisMonth, CheckOutDate: thisMonth.AddDate(0, 0, 1),
		BookingDate: thisMonth,
	})

	growth, err := NewAnalyticsService(db).ComputeGrowthRates(6)
	require.NoError(t, err)
	assert.Nil(t, growth.BookingGrowth)
	assert.Nil(t, growth.RevenueGrowth)
}

func TestGrowthRatesFollowTrendWindow(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")

	thisMonth := startOfMonth(time.Now().UTC())
	threeMonthsAgo := thisMonth.AddDate(0, -3, 0)

	for i := 0; i < 10; i++ {
		insertBooking(t, db, models.Booking{
			RoomNumber: "101", CustomerName: "Past Guest", TotalAmount: dec("100"),
			CheckInDate: threeMonthsAgo, CheckOutDate: threeMonthsAgo.AddDate(0, 0, 1),
			BookingDate: threeMonthsAgo.Add(time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 15; i++ {
		insertBooking(t, db, models.Booking{
			RoomNumber: "101", CustomerName: "Recent Guest", TotalAmount: dec("100"),
			CheckInDate: thisMonth, CheckOutDate: thisMonth.AddDate(0, 0, 1),
			BookingDate: thisMonth.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := NewAnalyticsService(db)

	// a 2-month window only sees the current month, so growth is undefined
	growth, err := svc.ComputeGrowthRates(2)
	require.NoError(t, err)
	assert.Nil(t, growth.BookingGrowth)
	assert.Nil(t, growth.RevenueGrowth)

	// widening the window brings the older month back into the comparison
	growth, err = svc.ComputeGrowthRates(6)
	require.NoError(t, err)
	require.NotNil(t, growth.BookingGrowth)
	require.NotNil(t, growth.RevenueGrowth)
	assert.InDelta(t, 50.0, *growth.BookingGrowth, 0.001)
	assert.InDelta(t, 50.0, *growth.RevenueGrowth, 0.001)
}

func TestRevenueAnalysis(t *testing.T) {
	db := newTestDB(t)
	mustAddRoom(t, db, "101", "100")

	thisMonth := startOfMonth(time.Now().UTC())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	makeBill := func(date time.Time, total, tax, discount string) {
		booking := insertBooking(t, db, models.Booking{
			RoomNumber: "101", CustomerName: "Billed Guest", TotalAmount: dec(total),
			CheckInDate: date, CheckOutDate: date.AddDate(0, 0, 1),
			BookingDate: date,
		})
		require.NoError(t, db.Create(&models.Bill{
			BookingID:      booking.ID,
			Subtotal:       dec(total),
			TaxAmount:      dec(tax),
			DiscountAmount: dec(discount),
			TotalAmount:    dec(total),
			PaymentStatus:  models.BillStatusPaid,
			PaymentMethod:  "Cash",
			BillDate:       date,
		}).Error)
	}

	makeBill(lastMonth, "110", "10", "0")
	makeBill(thisMonth, "220", "20", "5")
	makeBill(thisMonth, "330", "30", "0")

	report, err := NewAnalyticsService(db).RevenueAnalysis(12)
	require.NoError(t, err)
	require.Len(t, report.Months, 2)

	assert.Equal(t, lastMonth.Format(monthLayout), report.Months[0].Month)
	assert.True(t, report.Months[0].NetRevenue.Equal(dec("100")))

	assert.Equal(t, thisMonth.Format(monthLayout), report.Months[1].Month)
	assert.True(t, report.Months[1].TotalRevenue.Equal(dec("550")))
	assert.True(t, report.Months[1].TotalTax.Equal(dec("50")))
	assert.True(t, report.Months[1].TotalDiscounts.Equal(dec("5")))
	assert.True(t, report.Months[1].NetRevenue.Equal(dec("495")))

	assert.True(t, report.Summary.TotalRevenue.Equal(dec("660")))
	assert.True(t, report.Summary.NetRevenue.Equal(dec("595")))
}

func TestCaptureSnapshot(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomService(db)
	_, err := rooms.AddRoom("101", models.RoomTypeDouble, "100", "")
	require.NoError(t, err)
	_, err = rooms.AddRoom("201", models.RoomTypeDeluxe, "250", "")
	require.NoError(t, err)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	b1 := insertBooking(t, db, models.Booking{
		RoomNumber: "101", CustomerName: "Alice", TotalAmount: dec("100"),
		CheckInDate: day, CheckOutDate: day.AddDate(0, 0, 1), BookingDate: day,
	})
	insertBooking(t, db, models.Booking{
		RoomNumber: "201", CustomerName: "Bob", TotalAmount: dec("250"),
		CheckInDate: day, CheckOutDate: day.AddDate(0, 0, 1),
		BookingDate: day.Add(5 * time.Hour),
	})
	require.NoError(t, db.Create(&models.Bill{
		BookingID: b1.ID, Subtotal: dec("100"), TaxAmount: dec("10"),
		TotalAmount: dec("110"), PaymentStatus: models.BillStatusPaid,
		PaymentMethod: "Credit Card", BillDate: day.Add(8 * time.Hour),
	}).Error)

	svc := NewAnalyticsService(db)
	snapshot, err := svc.CaptureSnapshot(day.Add(14 * time.Hour))
	require.NoError(t, err)

	assert.Equal(t, day, snapshot.Date)
	assert.Equal(t, 2, snapshot.TotalBookings)
	assert.True(t, snapshot.TotalRevenue.Equal(dec("350")))

	var roomTypes map[string]int
	require.NoError(t, json.Unmarshal(snapshot.RoomTypeDistribution, &roomTypes))
	assert.Equal(t, map[string]int{
		models.RoomTypeDouble: 1,
		models.RoomTypeDeluxe: 1,
	}, roomTypes)

	var methods map[string]int
	require.NoError(t, json.Unmarshal(snapshot.PaymentMethodDistribution, &methods))
	assert.Equal(t, map[string]int{"Credit Card": 1}, methods)

	snapshots, err := svc.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, snapshot.ID, snapshots[0].ID)
}
