package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/booking"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes slot discovery, booking writes and the session
// lifecycle.
type BookingHandler struct {
	engine booking.SchedulingService
}

func NewBookingHandler(svc booking.SchedulingService) *BookingHandler {
	return &BookingHandler{engine: svc}
}

// AvailableSlots returns a mentor's open slots for the 7 days starting
// at ?from=2006-01-02 (default today), tiled at ?interval= minutes.
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	mentorID := c.Param("mentorId")
	from := c.DefaultQuery("from", time.Now().Format("2006-01-02"))

	interval := 0
	if raw := c.Query("interval"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interval", "details": err.Error()})
			return
		}
		interval = parsed
	}

	week, err := h.engine.GetWeeklyAvailableSlots(mentorID, from, interval)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func (h *BookingHandler) BookSlot(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var req models.SingleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, err := h.engine.BookSlot(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booked)
}

func (h *BookingHandler) BookProject(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var req models.ProjectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, err := h.engine.BookProject(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// List returns every booking where the caller is the booker or the
// mentor.
func (h *BookingHandler) List(c *gin.Context) {
	id, _ := middleware.Identity(c)

	bookings, err := h.engine.ListBookings(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, _ := middleware.Identity(c)

	if err := h.engine.CompleteBooking(id, c.Param("bookingId")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var input struct {
		StartTime time.Time `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	moved, err := h.engine.RescheduleBooking(c.Request.Context(), id, c.Param("bookingId"), input.StartTime)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, moved)
}
