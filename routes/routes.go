package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelops/controllers"
	"hotelops/middleware"
)

// SetupRouter wires every controller into the HTTP surface. One route per
// user action; the handlers stay thin and delegate to the services.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	blc *controllers.BillingController,
	svc *controllers.ServiceController,
	stc *controllers.StaffController,
	anc *controllers.AnalyticsController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:number", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:number", rc.UpdateRoom)
			rooms.DELETE("/:number", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/active", bc.GetActiveBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("", bc.CreateBooking)
		}

		billing := api.Group("/billing")
		{
			billing.GET("/unbilled", blc.GetUnbilledBookings)
			billing.POST("/preview", blc.PreviewBill)
			billing.POST("/finalize", blc.FinalizeBill)
			billing.GET("/:bookingID/invoice", blc.GetInvoice)
			billing.GET("/:bookingID/payment-code", blc.GetPaymentCode)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", svc.GetAllServices)
			servicesGroup.GET("/active", svc.GetActiveServices)
			servicesGroup.POST("", svc.CreateService)
			servicesGroup.PUT("/:id", svc.UpdateService)
			servicesGroup.PATCH("/:id/toggle", svc.ToggleService)
		}

		requests := api.Group("/service-requests")
		{
			requests.GET("", svc.GetRequestHistory)
			requests.POST("", svc.SubmitRequest)
			requests.POST("/preview", svc.PreviewRequest)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", stc.GetStaff)
			staff.GET("/:employeeID", stc.GetStaffMember)
			staff.POST("", stc.CreateStaff)
		}

		payroll := api.Group("/payroll")
		{
			payroll.POST("/preview", stc.PreviewSalary)
			payroll.POST("/:employeeID", stc.ProcessSalary)
			payroll.GET("/:employeeID/history", stc.GetSalaryHistory)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/weekly", anc.GetWeeklyMetrics)
			analytics.GET("/monthly", anc.GetMonthlyMetrics)
			analytics.GET("/trends", anc.GetBookingTrends)
			analytics.GET("/revenue", anc.GetRevenueAnalysis)
			analytics.GET("/snapshots", anc.GetSnapshots)
			analytics.POST("/snapshots", anc.CaptureSnapshot)
		}
	}

	return r
}
