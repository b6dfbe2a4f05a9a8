package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GetWeeklyMetrics handles GET /api/analytics/weekly?date=YYYY-MM-DD
func (ac *AnalyticsController) GetWeeklyMetrics(c *gin.Context) {
	reference, ok := referenceDate(c)
	if !ok {
		return
	}

	metrics, err := ac.Service.WeeklyMetrics(reference)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, metrics)
}

// GetMonthlyMetrics handles GET /api/analytics/monthly?date=YYYY-MM-DD
func (ac *AnalyticsController) GetMonthlyMetrics(c *gin.Context) {
	reference, ok := referenceDate(c)
	if !ok {
		return
	}

	metrics, err := ac.Service.MonthlyMetrics(reference)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, metrics)
}

// GetBookingTrends handles GET /api/analytics/trends?months=6
func (ac *AnalyticsController) GetBookingTrends(c *gin.Context) {
	months, ok := monthsBack(c, 6)
	if !ok {
		return
	}

	trends, err := ac.Service.BookingTrends(months)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	growth, err := ac.Service.ComputeGrowthRates(months)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"trends": trends, "growth": growth})
}

// GetRevenueAnalysis handles GET /api/analytics/revenue?months=12
func (ac *AnalyticsController) GetRevenueAnalysis(c *gin.Context) {
	months, ok := monthsBack(c, 12)
	if !ok {
		return
	}

	report, err := ac.Service.RevenueAnalysis(months)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// CaptureSnapshot handles POST /api/analytics/snapshots
func (ac *AnalyticsController) CaptureSnapshot(c *gin.Context) {
	reference, ok := referenceDate(c)
	if !ok {
		return
	}

	snapshot, err := ac.Service.CaptureSnapshot(reference)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, snapshot)
}

// GetSnapshots handles GET /api/analytics/snapshots
func (ac *AnalyticsController) GetSnapshots(c *gin.Context) {
	snapshots, err := ac.Service.ListSnapshots()
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snapshots)
}

func referenceDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func monthsBack(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("months")
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid months value")
		return 0, false
	}
	return n, true
}
