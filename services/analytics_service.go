package services

import (
	"encoding/json"
	"sort"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/utils"
)

const monthLayout = "2006-01"

// AnalyticsService is read-only aggregation over bookings and bills, plus the
// persisted daily snapshots. Aggregation runs in Go over typed rows so the
// queries stay portable across the MySQL runtime and the sqlite test store.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type PeriodMetrics struct {
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`

	BookingCount    int             `json:"bookingCount"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	AvgBookingValue decimal.Decimal `json:"avgBookingValue"`
	OccupancyRate   float64         `json:"occupancyRate"`
}

type TrendPoint struct {
	Month        string          `json:"month"`
	BookingCount int             `json:"bookingCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// GrowthRates compares the last two trend points. A nil rate means the
// previous value was zero and the growth is undefined, not zero.
type GrowthRates struct {
	BookingGrowth *float64 `json:"bookingGrowth"`
	RevenueGrowth *float64 `json:"revenueGrowth"`
}

type RevenueMonth struct {
	Month          string          `json:"month"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	TotalDiscounts decimal.Decimal `json:"totalDiscounts"`
	NetRevenue     decimal.Decimal `json:"netRevenue"`
}

type RevenueReport struct {
	Months  []RevenueMonth `json:"months"`
	Summary RevenueMonth   `json:"summary"`
}

// WeeklyMetrics aggregates over the ISO week (Monday through Sunday)
// containing the reference date.
func (s *AnalyticsService) WeeklyMetrics(reference time.Time) (PeriodMetrics, error) {
	start := startOfISOWeek(reference)
	return s.metricsBetween(start, start.AddDate(0, 0, 7))
}

// MonthlyMetrics aggregates over the calendar month containing the reference
// date. The exclusive end is the first day of the next month, which handles
// month lengths and the December rollover.
func (s *AnalyticsService) MonthlyMetrics(reference time.Time) (PeriodMetrics, error) {
	start := startOfMonth(reference)
	return s.metricsBetween(start, start.AddDate(0, 1, 0))
}

func (s *AnalyticsService) metricsBetween(start, end time.Time) (PeriodMetrics, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("booking_date >= ? AND booking_date < ?", start, end).
		Find(&bookings).Error
	if err != nil {
		return PeriodMetrics{}, utils.Internal(pkgerrors.Wrap(err, "load bookings for period"))
	}

	var roomCount int64
	if err := s.DB.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return PeriodMetrics{}, utils.Internal(pkgerrors.Wrap(err, "count rooms"))
	}

	metrics := PeriodMetrics{
		PeriodStart:  start,
		PeriodEnd:    end.AddDate(0, 0, -1),
		BookingCount: len(bookings),
	}
	for _, b := range bookings {
		metrics.TotalRevenue = metrics.TotalRevenue.Add(b.TotalAmount)
	}
	if len(bookings) > 0 {
		metrics.AvgBookingValue = metrics.TotalRevenue.
			Div(decimal.NewFromInt(int64(len(bookings)))).Round(2)
	}
	if roomCount > 0 {
		metrics.OccupancyRate = float64(len(bookings)) * 100 / float64(roomCount)
	}
	return metrics, nil
}

// BookingTrends groups bookings of the last monthsBack months by booking
// month, ascending.
func (s *AnalyticsService) BookingTrends(monthsBack int) ([]TrendPoint, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	since := time.Now().UTC().AddDate(0, -monthsBack, 0)

	var bookings []models.Booking
	if err := s.DB.Where("booking_date >= ?", since).Find(&bookings).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "load bookings for trends"))
	}

	byMonth := make(map[string]*TrendPoint)
	for _, b := range bookings {
		month := b.BookingDate.Format(monthLayout)
		point, ok := byMonth[month]
		if !ok {
			point = &TrendPoint{Month: month}
			byMonth[month] = point
		}
		point.BookingCount++
		point.TotalRevenue = point.TotalRevenue.Add(b.TotalAmount)
	}

	trends := make([]TrendPoint, 0, len(byMonth))
	for _, point := range byMonth {
		trends = append(trends, *point)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends, nil
}

// ComputeGrowthRates derives growth from the last two trend points of the
// same window the trends were computed over.
func (s *AnalyticsService) ComputeGrowthRates(monthsBack int) (GrowthRates, error) {
	trends, err := s.BookingTrends(monthsBack)
	if err != nil {
		return GrowthRates{}, err
	}
	if len(trends) < 2 {
		return GrowthRates{}, nil
	}

	previous := trends[len(trends)-2]
	current := trends[len(trends)-1]

	var rates GrowthRates
	if previous.BookingCount != 0 {
		g := float64(current.BookingCount-previous.BookingCount) / float64(previous.BookingCount) * 100
		rates.BookingGrowth = &g
	}
	if !previous.TotalRevenue.IsZero() {
		g := current.TotalRevenue.Sub(previous.TotalRevenue).
			Div(previous.TotalRevenue).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
		rates.RevenueGrowth = &g
	}
	return rates, nil
}

// RevenueAnalysis aggregates finalized bills of the last monthsBack months by
// bill month, with a trailing summary across all months.
func (s *AnalyticsService) RevenueAnalysis(monthsBack int) (RevenueReport, error) {
	if monthsBack <= 0 {
		monthsBack = 12
	}
	since := time.Now().UTC().AddDate(0, -monthsBack, 0)

	var bills []models.Bill
	if err := s.DB.Where("bill_date >= ?", since).Find(&bills).Error; err != nil {
		return RevenueReport{}, utils.Internal(pkgerrors.Wrap(err, "load bills for revenue analysis"))
	}

	byMonth := make(map[string]*RevenueMonth)
	for _, b := range bills {
		month := b.BillDate.Format(monthLayout)
		row, ok := byMonth[month]
		if !ok {
			row = &RevenueMonth{Month: month}
			byMonth[month] = row
		}
		row.TotalRevenue = row.TotalRevenue.Add(b.TotalAmount)
		row.TotalTax = row.TotalTax.Add(b.TaxAmount)
		row.TotalDiscounts = row.TotalDiscounts.Add(b.DiscountAmount)
	}

	report := RevenueReport{Months: make([]RevenueMonth, 0, len(byMonth))}
	for _, row := range byMonth {
		row.NetRevenue = row.TotalRevenue.Sub(row.TotalTax).Sub(row.TotalDiscounts)
		report.Months = append(report.Months, *row)

		report.Summary.TotalRevenue = report.Summary.TotalRevenue.Add(row.TotalRevenue)
		report.Summary.TotalTax = report.Summary.TotalTax.Add(row.TotalTax)
		report.Summary.TotalDiscounts = report.Summary.TotalDiscounts.Add(row.TotalDiscounts)
	}
	report.Summary.NetRevenue = report.Summary.TotalRevenue.
		Sub(report.Summary.TotalTax).
		Sub(report.Summary.TotalDiscounts)
	sort.Slice(report.Months, func(i, j int) bool { return report.Months[i].Month < report.Months[j].Month })
	return report, nil
}

// CaptureSnapshot persists a daily roll-up for the day containing the
// reference date: period metrics plus room-type and payment-method counts as
// JSON documents.
func (s *AnalyticsService) CaptureSnapshot(reference time.Time) (models.AnalyticsSnapshot, error) {
	y, m, d := reference.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	metrics, err := s.metricsBetween(day, day.AddDate(0, 0, 1))
	if err != nil {
		return models.AnalyticsSnapshot{}, err
	}

	var bookings []models.Booking
	err = s.DB.
		Where("booking_date >= ? AND booking_date < ?", day, day.AddDate(0, 0, 1)).
		Find(&bookings).Error
	if err != nil {
		return models.AnalyticsSnapshot{}, utils.Internal(pkgerrors.Wrap(err, "load bookings for snapshot"))
	}

	roomTypes := make(map[string]int)
	for _, b := range bookings {
		var room models.Room
		if err := s.DB.Where("room_number = ?", b.RoomNumber).First(&room).Error; err == nil {
			roomTypes[room.RoomType]++
		}
	}

	var bills []models.Bill
	err = s.DB.
		Where("bill_date >= ? AND bill_date < ?", day, day.AddDate(0, 0, 1)).
		Find(&bills).Error
	if err != nil {
		return models.AnalyticsSnapshot{}, utils.Internal(pkgerrors.Wrap(err, "load bills for snapshot"))
	}
	paymentMethods := make(map[string]int)
	for _, b := range bills {
		paymentMethods[b.PaymentMethod]++
	}

	roomTypesJSON, err := json.Marshal(roomTypes)
	if err != nil {
		return models.AnalyticsSnapshot{}, utils.Internal(pkgerrors.Wrap(err, "marshal room type distribution"))
	}
	paymentsJSON, err := json.Marshal(paymentMethods)
	if err != nil {
		return models.AnalyticsSnapshot{}, utils.Internal(pkgerrors.Wrap(err, "marshal payment method distribution"))
	}

	snapshot := models.AnalyticsSnapshot{
		Date:                      day,
		TotalBookings:             metrics.BookingCount,
		TotalRevenue:              metrics.TotalRevenue,
		AverageBookingValue:       metrics.AvgBookingValue,
		OccupancyRate:             metrics.OccupancyRate,
		RoomTypeDistribution:      datatypes.JSON(roomTypesJSON),
		PaymentMethodDistribution: datatypes.JSON(paymentsJSON),
	}
	if err := s.DB.Create(&snapshot).Error; err != nil {
		return models.AnalyticsSnapshot{}, utils.Internal(pkgerrors.Wrap(err, "create analytics snapshot"))
	}
	return snapshot, nil
}

func (s *AnalyticsService) ListSnapshots() ([]models.AnalyticsSnapshot, error) {
	var snapshots []models.AnalyticsSnapshot
	if err := s.DB.Order("date DESC").Find(&snapshots).Error; err != nil {
		return nil, utils.Internal(pkgerrors.Wrap(err, "list snapshots"))
	}
	return snapshots, nil
}

func startOfISOWeek(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
